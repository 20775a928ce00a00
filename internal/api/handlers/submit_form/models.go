package submit_form

// SubmitResponse успешный ответ прокси
type SubmitResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}
