package domain

// DaySchedule рабочие часы одного дня недели
// Start/End хранятся как непрозрачные строки HH:MM локального времени;
// при Closed значения сохраняются, но не применяются
type DaySchedule struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Closed bool   `json:"closed"`
}

// DefaultDaySchedule возвращает расписание дня по умолчанию (09:00-17:00, открыто)
func DefaultDaySchedule() DaySchedule {
	return DaySchedule{
		Start:  DefaultOpenTime,
		End:    DefaultCloseTime,
		Closed: false,
	}
}

// IsWeekday проверяет, что day входит в фиксированный набор дней недели
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
