package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse стандартный конверт ошибки API
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON пишет payload как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет конверт ошибки с указанным статусом
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

// RespondInternalError пишет 500; details попадает в ответ только если не nil
func RespondInternalError(w http.ResponseWriter, msg string, details interface{}) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Error:   msg,
		Details: details,
	})
}
