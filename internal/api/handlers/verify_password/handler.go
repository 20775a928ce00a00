package verify_password

import (
	"net/http"

	"github.com/m04kA/OPS-OnboardingService/internal/api/handlers"
)

const msgInvalidRequest = "Invalid request"

type Handler struct {
	service AccessService
	logger  Logger
}

func NewHandler(service AccessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/verify-password
// Некорректное тело - 400 {success:false, error:"Invalid request"}
// Иначе 200 {success:bool}; несовпадение пароля - не ошибка HTTP уровня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /verify-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	ok := h.service.Verify(req.Password)
	handlers.RespondJSON(w, http.StatusOK, VerifyResponse{Success: ok})
}
