package form

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Fields редактируемые значения формы онбординга
// Имена полей payload совпадают с name атрибутами исходной формы
// WorkingHours несёт сериализованное composite-значение редактора расписания -
// единственное вложенное значение в остальном плоской форме
type Fields struct {
	// Agency & Location Details
	AgencyName   string `json:"agencyName" validate:"required"`
	AgencyID     string `json:"agencyId" validate:"required"`
	LocationName string `json:"locationName" validate:"required"`
	LocationID   string `json:"locationId" validate:"required"`

	// Contact & Calendar Setup
	FallbackNumber      string `json:"fallbackNumber" validate:"required,e164"`
	Timezone            string `json:"timezone" validate:"required"`
	CalendarID          string `json:"calendarId" validate:"required"`
	CalendarLink        string `json:"calendarLink" validate:"required,url"`
	CallLaterCalendarID string `json:"callLaterCalendarId" validate:"required"`

	// Business Details
	LocationAddress string `json:"locationAddress" validate:"required"`
	WorkingHours    string `json:"workingHours" validate:"required"`
	Services        string `json:"services" validate:"required"`
	BusinessContext string `json:"businessContext" validate:"required"`
	AdditionalNotes string `json:"additionalNotes"`

	// Technical Configuration
	TwilioSID        string `json:"twilioSid" validate:"required"`
	TwilioAuthToken  string `json:"twilioAuthToken" validate:"required"`
	OutboundCallerID string `json:"outboundCallerId" validate:"required,e164"`
	InboundCallerID  string `json:"inboundCallerId" validate:"required,e164"`
	VAPIBillingEmail string `json:"vapiBillingEmail" validate:"required,email"`
	VAPIPrivateKey   string `json:"vapiPrivateKey" validate:"required"`
	VAPIPublicKey    string `json:"vapiPublicKey" validate:"required"`
}

// Validate проверяет поля по контракту, зеркалящему required/type атрибуты
// исходной формы. Вызывается клиентской стороной до отправки; relay на сервере
// схему не навязывает
func (f *Fields) Validate() error {
	return validate.Struct(f)
}
