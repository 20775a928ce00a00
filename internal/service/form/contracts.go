package form

import (
	"context"

	"github.com/m04kA/OPS-OnboardingService/internal/integrations/n8n"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SubmissionClient пересылает собранный payload; реализуется n8n клиентом
// напрямую либо HTTP клиентом к /api/submit-form
type SubmissionClient interface {
	Forward(ctx context.Context, payload interface{}) (*n8n.Result, error)
}
