package submit_form

import (
	"context"

	"github.com/m04kA/OPS-OnboardingService/internal/integrations/n8n"
)

// WebhookRelay пересылает payload заявки во внешний workflow
type WebhookRelay interface {
	Forward(ctx context.Context, payload interface{}) (*n8n.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
