package submit_form

import (
	"net/http"

	"github.com/m04kA/OPS-OnboardingService/internal/api/handlers"
)

type Handler struct {
	relay         WebhookRelay
	logger        Logger
	isDevelopment bool
}

// NewHandler создает handler; в режиме разработки ответы об ошибках
// дополняются полем details
func NewHandler(relay WebhookRelay, logger Logger, isDevelopment bool) *Handler {
	return &Handler{
		relay:         relay,
		logger:        logger,
		isDevelopment: isDevelopment,
	}
}

// Handle POST /api/submit-form
// Тело - произвольный JSON (плоский payload формы); схема на этом слое
// не навязывается, прокси - чистый relay
// Любой сбой (включая нечитаемое тело) отдаётся конвертом
// {success:false, error} со статусом 500 - выше ошибки не пробрасываются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload interface{}
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn("POST /submit-form - Failed to decode request body: %v", err)
		h.respondFailure(w, err)
		return
	}

	result, err := h.relay.Forward(r.Context(), payload)
	if err != nil {
		h.logger.Error("POST /submit-form - Forward failed: %v", err)
		h.respondFailure(w, err)
		return
	}

	h.logger.Info("POST /submit-form - Submission forwarded successfully")
	handlers.RespondJSON(w, http.StatusOK, SubmitResponse{
		Success: true,
		Data:    result.Data,
	})
}

func (h *Handler) respondFailure(w http.ResponseWriter, err error) {
	var details interface{}
	if h.isDevelopment {
		details = err.Error()
	}
	handlers.RespondInternalError(w, err.Error(), details)
}
