package form

import "errors"

var (
	// ErrFormLocked возвращается при попытке собрать или отправить форму,
	// пока access gate в состоянии Locked
	ErrFormLocked = errors.New("form is locked: access gate has not been unlocked")

	// ErrSubmitInFlight возвращается при повторном Submit, пока предыдущий
	// ещё выполняется
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// Общее сообщение об ошибке отправки, когда более конкретного нет
const MsgSubmitFailed = "Failed to submit form. Please try again."
