package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/OPS-OnboardingService/internal/domain"
)

// Editor редактор composite-поля working hours формы онбординга
// Держит недельное расписание (все 7 дней всегда присутствуют) и упорядоченный
// список праздников в формате MM-DD; Serialize отдает единое строковое значение
// для плоского поля формы
type Editor struct {
	days     map[string]domain.DaySchedule
	holidays []string

	// Незавершённый ввод кастомного праздника (две строки ввода в UI)
	// Описание собирается, но в сериализацию не попадает - так ведёт себя
	// и действующий n8n workflow, менять формат без согласования нельзя
	pendingDate        string
	pendingDescription string
}

// NewEditor создает редактор с дефолтным расписанием (09:00-17:00, все дни открыты)
func NewEditor() *Editor {
	days := make(map[string]domain.DaySchedule, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		days[day] = domain.DefaultDaySchedule()
	}
	return &Editor{
		days:     days,
		holidays: []string{},
	}
}

// SetTime задает start или end для дня
// Валидации start < end нет: значения - непрозрачные строки локального времени
func (e *Editor) SetTime(day, field, value string) error {
	if !domain.IsWeekday(day) {
		return fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}

	slot := e.days[day]
	switch field {
	case domain.FieldStart:
		slot.Start = value
	case domain.FieldEnd:
		slot.End = value
	default:
		return fmt.Errorf("%w: %s", ErrInvalidField, field)
	}
	e.days[day] = slot
	return nil
}

// ToggleClosed переключает флаг closed; start/end при этом сохраняются
func (e *Editor) ToggleClosed(day string) error {
	if !domain.IsWeekday(day) {
		return fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}
	slot := e.days[day]
	slot.Closed = !slot.Closed
	e.days[day] = slot
	return nil
}

// ToggleHoliday убирает токен из выбранных (точное совпадение) либо добавляет в конец
// Порядок остальных элементов сохраняется
func (e *Editor) ToggleHoliday(token string) {
	for i, h := range e.holidays {
		if h == token {
			e.holidays = append(e.holidays[:i], e.holidays[i+1:]...)
			return
		}
	}
	e.holidays = append(e.holidays, token)
}

// SetPendingCustomDate задает незавершённый ввод кастомного праздника
func (e *Editor) SetPendingCustomDate(isoDate, description string) {
	e.pendingDate = isoDate
	e.pendingDescription = description
}

// PendingCustomDate возвращает текущий незавершённый ввод
func (e *Editor) PendingCustomDate() (isoDate, description string) {
	return e.pendingDate, e.pendingDescription
}

// AddCustomHoliday добавляет праздник из даты YYYY-MM-DD
// Год отбрасывается: в выбранные попадает токен MM-DD
// Пустая дата - no-op; после добавления поля незавершённого ввода очищаются
func (e *Editor) AddCustomHoliday(isoDate string) error {
	if isoDate == "" {
		return nil
	}

	date, err := time.Parse(domain.DateFormat, isoDate)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, isoDate)
	}

	e.holidays = append(e.holidays, date.Format(domain.HolidayTokenFormat))
	e.pendingDate = ""
	e.pendingDescription = ""
	return nil
}

// Days возвращает копию недельного расписания
func (e *Editor) Days() map[string]domain.DaySchedule {
	out := make(map[string]domain.DaySchedule, len(e.days))
	for day, slot := range e.days {
		out[day] = slot
	}
	return out
}

// Holidays возвращает копию выбранных праздников в порядке добавления
func (e *Editor) Holidays() []string {
	out := make([]string, len(e.holidays))
	copy(out, e.holidays)
	return out
}

// HolidayLabels возвращает отображаемые метки выбранных праздников
// Токен вне каталога получает синтетическую метку Custom Date (<token>)
func (e *Editor) HolidayLabels() []string {
	labels := make([]string, len(e.holidays))
	for i, token := range e.holidays {
		labels[i] = domain.HolidayLabel(token)
	}
	return labels
}

// Serialize отдает единое строковое значение composite-поля:
// {"working_hours":{...},"holidays":[...]}
// Порядок ключей дней фиксирован (monday..sunday), поэтому вывод
// детерминирован: при неизменном состоянии строки байт-в-байт совпадают
func (e *Editor) Serialize() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"working_hours":{`)

	for i, day := range domain.Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		slot, err := json.Marshal(e.days[day])
		if err != nil {
			return "", fmt.Errorf("failed to marshal day %s: %w", day, err)
		}
		buf.WriteByte('"')
		buf.WriteString(day)
		buf.WriteString(`":`)
		buf.Write(slot)
	}

	holidays, err := json.Marshal(e.holidays)
	if err != nil {
		return "", fmt.Errorf("failed to marshal holidays: %w", err)
	}
	buf.WriteString(`},"holidays":`)
	buf.Write(holidays)
	buf.WriteByte('}')

	return buf.String(), nil
}
