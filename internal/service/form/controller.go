package form

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/m04kA/OPS-OnboardingService/internal/integrations/n8n"
	"github.com/m04kA/OPS-OnboardingService/internal/service/access"
)

// SubmitResult итог успешной отправки формы
type SubmitResult struct {
	Data interface{}
}

// SubmitError ошибка отправки с наиболее конкретным доступным сообщением
// для пользователя. Введённые значения полей при этом не трогаются -
// пользователь правит и отправляет заново
type SubmitError struct {
	Message string
	cause   error
}

func (e *SubmitError) Error() string { return e.Message }
func (e *SubmitError) Unwrap() error { return e.cause }

// Controller управляет жизненным циклом отправки формы
// Повторный Submit во время выполняющегося отклоняется (ErrSubmitInFlight) -
// аналог заблокированной кнопки Submit в UI
type Controller struct {
	client     SubmissionClient
	gate       *access.Gate
	logger     Logger
	submitting atomic.Bool
}

// NewController создает контроллер; gate может быть nil, если гейтирование
// обеспечивается снаружи
func NewController(client SubmissionClient, gate *access.Gate, logger Logger) *Controller {
	return &Controller{
		client: client,
		gate:   gate,
		logger: logger,
	}
}

// Submitting возвращает true, пока отправка выполняется
func (c *Controller) Submitting() bool {
	return c.submitting.Load()
}

// Submit снимает срез формы и пересылает его
// Пока gate Locked, значения полей наружу не уходят вовсе
// Флаг Submitting сбрасывается ровно один раз при любом исходе
func (c *Controller) Submit(ctx context.Context, fields Fields) (*SubmitResult, error) {
	if c.gate != nil && !c.gate.Unlocked() {
		c.logger.Warn("Submit: rejected, access gate is locked")
		return nil, ErrFormLocked
	}

	if !c.submitting.CompareAndSwap(false, true) {
		c.logger.Warn("Submit: rejected, another submission is in flight")
		return nil, ErrSubmitInFlight
	}
	defer c.submitting.Store(false)

	snapshot := NewSnapshot(fields)

	result, err := c.client.Forward(ctx, snapshot.Payload())
	if err != nil {
		c.logger.Error("Submit: forward failed: %v", err)
		return nil, &SubmitError{Message: submitMessage(err), cause: err}
	}

	// Форма после успеха сознательно не очищается - так ведёт себя исходный UI
	c.logger.Info("Submit: submission forwarded successfully")
	return &SubmitResult{Data: result.Data}, nil
}

// submitMessage выбирает наиболее конкретное сообщение:
// текст ошибки webhook -> транспортное сообщение -> общее сообщение
func submitMessage(err error) string {
	switch {
	case errors.Is(err, n8n.ErrWebhook):
		return err.Error()
	case errors.Is(err, n8n.ErrUnavailable):
		return err.Error()
	default:
		return MsgSubmitFailed
	}
}
