package form

import "time"

// Snapshot неизменяемый срез значений формы, снятый в момент отправки
// Отвязан от живого состояния формы: последующие правки полей на payload
// уже отправляемой заявки не влияют
type Snapshot struct {
	fields  map[string]string
	takenAt time.Time
}

// NewSnapshot снимает срез с текущих значений полей
func NewSnapshot(f Fields) Snapshot {
	return Snapshot{
		fields: map[string]string{
			"agencyName":          f.AgencyName,
			"agencyId":            f.AgencyID,
			"locationName":        f.LocationName,
			"locationId":          f.LocationID,
			"fallbackNumber":      f.FallbackNumber,
			"timezone":            f.Timezone,
			"calendarId":          f.CalendarID,
			"calendarLink":        f.CalendarLink,
			"callLaterCalendarId": f.CallLaterCalendarID,
			"locationAddress":     f.LocationAddress,
			"workingHours":        f.WorkingHours,
			"services":            f.Services,
			"businessContext":     f.BusinessContext,
			"additionalNotes":     f.AdditionalNotes,
			"twilioSid":           f.TwilioSID,
			"twilioAuthToken":     f.TwilioAuthToken,
			"outboundCallerId":    f.OutboundCallerID,
			"inboundCallerId":     f.InboundCallerID,
			"vapiBillingEmail":    f.VAPIBillingEmail,
			"vapiPrivateKey":      f.VAPIPrivateKey,
			"vapiPublicKey":       f.VAPIPublicKey,
		},
		takenAt: time.Now(),
	}
}

// Payload возвращает плоский payload отправки (копию)
func (s Snapshot) Payload() map[string]string {
	out := make(map[string]string, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

// TakenAt момент снятия среза
func (s Snapshot) TakenAt() time.Time {
	return s.takenAt
}
