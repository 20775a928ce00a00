package access

import "context"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Verifier проверяет пароль; реализуется сервисом напрямую
// либо HTTP клиентом к /api/verify-password
type Verifier interface {
	VerifyPassword(ctx context.Context, candidate string) (bool, error)
}
