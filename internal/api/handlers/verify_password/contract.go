package verify_password

// AccessService проверяет кандидата против настроенного секрета
type AccessService interface {
	Verify(candidate string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
