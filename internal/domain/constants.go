package domain

// Time format constants
const (
	TimeFormat         = "15:04"      // HH:MM
	DateFormat         = "2006-01-02" // YYYY-MM-DD
	HolidayTokenFormat = "01-02"      // MM-DD, без года
)

// Default working hours
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "17:00"
)

// Schedule field names
const (
	FieldStart = "start"
	FieldEnd   = "end"
)

// Weekdays фиксированный порядок дней недели
// Этот же порядок используется при сериализации composite-поля working hours
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}
