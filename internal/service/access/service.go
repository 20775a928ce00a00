package access

import "context"

// Service серверная часть access gate: сверка кандидата с единственным
// настроенным секретом. Без хеширования, без учёта попыток - ограничение
// числа попыток сознательно не вводится (известная слабость исходного
// поведения, зафиксирована в DESIGN.md)
type Service struct {
	password string
	logger   Logger
}

// NewService создает сервис; password читается из конфигурации один раз при старте
func NewService(password string, logger Logger) *Service {
	return &Service{
		password: password,
		logger:   logger,
	}
}

// Verify возвращает true только при точном совпадении строк
func (s *Service) Verify(candidate string) bool {
	ok := candidate == s.password
	if ok {
		s.logger.Info("Verify: access granted")
	} else {
		s.logger.Warn("Verify: invalid password attempt")
	}
	return ok
}

// VerifyPassword реализует Verifier поверх локальной проверки
func (s *Service) VerifyPassword(_ context.Context, candidate string) (bool, error) {
	return s.Verify(candidate), nil
}
