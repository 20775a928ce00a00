package schedule

import "errors"

var (
	// ErrUnknownDay возвращается при обращении к дню вне фиксированного набора
	ErrUnknownDay = errors.New("unknown weekday")

	// ErrInvalidField возвращается, если поле времени не start и не end
	ErrInvalidField = errors.New("invalid time field")

	// ErrInvalidDate возвращается при некорректной дате кастомного праздника
	ErrInvalidDate = errors.New("invalid custom holiday date, expected YYYY-MM-DD")
)
