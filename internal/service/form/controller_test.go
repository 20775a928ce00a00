package form

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OPS-OnboardingService/internal/integrations/n8n"
	"github.com/m04kA/OPS-OnboardingService/internal/service/access"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	result   *n8n.Result
	err      error
	calls    int
	payloads []interface{}
	block    chan struct{} // если не nil, Forward ждёт закрытия канала
}

func (f *fakeClient) Forward(_ context.Context, payload interface{}) (*n8n.Result, error) {
	f.calls++
	f.payloads = append(f.payloads, payload)
	if f.block != nil {
		<-f.block
	}
	return f.result, f.err
}

type staticVerifier struct{ ok bool }

func (v staticVerifier) VerifyPassword(context.Context, string) (bool, error) {
	return v.ok, nil
}

func unlockedGate(t *testing.T) *access.Gate {
	t.Helper()
	g := access.NewGate(staticVerifier{ok: true})
	require.True(t, g.Verify(context.Background(), "any"))
	return g
}

func sampleFields() Fields {
	return Fields{
		AgencyName:          "TechFlow Agency",
		AgencyID:            "TF789XYZ123",
		LocationName:        "Quantum Fitness Studio",
		LocationID:          "QFS456ABC789",
		FallbackNumber:      "+18148220152",
		Timezone:            "America/New_York",
		CalendarID:          "b5GEmdXK3ZoSaQHZRq5P",
		CalendarLink:        "https://api.leadconnectorhq.com/widget/booking/abc",
		CallLaterCalendarID: "FoVRh3TAhtS8uL4u2sGd",
		LocationAddress:     "742 Innovation Avenue, Silicon Valley, California, 94025",
		WorkingHours:        `{"working_hours":{},"holidays":[]}`,
		Services:            "- Personal Training Sessions",
		BusinessContext:     "Premier smart fitness facility",
		TwilioSID:           "ACxxxxxxxx",
		TwilioAuthToken:     "token",
		OutboundCallerID:    "+15874155128",
		InboundCallerID:     "+16892654681",
		VAPIBillingEmail:    "billing@example.com",
		VAPIPrivateKey:      "priv",
		VAPIPublicKey:       "0f9c822b-019b-49ee-bcd3-d0f108252104",
	}
}

func TestSubmit_LockedGateNeverExposesFields(t *testing.T) {
	gate := access.NewGate(staticVerifier{ok: false})
	client := &fakeClient{}
	c := NewController(client, gate, nopLogger{})

	_, err := c.Submit(context.Background(), sampleFields())

	assert.ErrorIs(t, err, ErrFormLocked)
	assert.Zero(t, client.calls, "no payload may leave the controller while locked")
}

func TestSubmit_Success(t *testing.T) {
	client := &fakeClient{result: &n8n.Result{Data: map[string]interface{}{"ok": true}}}
	c := NewController(client, unlockedGate(t), nopLogger{})

	result, err := c.Submit(context.Background(), sampleFields())

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"ok": true}, result.Data)
	assert.False(t, c.Submitting(), "submitting flag must be reset after completion")

	require.Len(t, client.payloads, 1)
	payload, ok := client.payloads[0].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "TechFlow Agency", payload["agencyName"])
	assert.Equal(t, `{"working_hours":{},"holidays":[]}`, payload["workingHours"])
	assert.Len(t, payload, 21)
}

func TestSubmit_FailurePrefersWebhookErrorText(t *testing.T) {
	webhookErr := fmt.Errorf("%w (404): {\"message\":\"not found\"}", n8n.ErrWebhook)
	client := &fakeClient{err: webhookErr}
	c := NewController(client, unlockedGate(t), nopLogger{})

	_, err := c.Submit(context.Background(), sampleFields())

	require.Error(t, err)
	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Contains(t, submitErr.Message, `webhook error (404)`)
	assert.Contains(t, submitErr.Message, `"message":"not found"`)
	assert.False(t, c.Submitting())
}

func TestSubmit_UnknownFaultFallsBackToGenericMessage(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	c := NewController(client, unlockedGate(t), nopLogger{})

	_, err := c.Submit(context.Background(), sampleFields())

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, MsgSubmitFailed, submitErr.Message)
}

func TestSubmit_SecondConcurrentSubmitRejected(t *testing.T) {
	block := make(chan struct{})
	client := &fakeClient{result: &n8n.Result{Data: "ok"}, block: block}
	c := NewController(client, unlockedGate(t), nopLogger{})

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), sampleFields())
		done <- err
	}()

	require.Eventually(t, c.Submitting, time.Second, time.Millisecond)

	_, err := c.Submit(context.Background(), sampleFields())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(block)
	require.NoError(t, <-done)
	assert.False(t, c.Submitting())
	assert.Equal(t, 1, client.calls)
}

func TestSnapshot_DecoupledFromLaterEdits(t *testing.T) {
	fields := sampleFields()
	snap := NewSnapshot(fields)

	fields.AgencyName = "Changed After Snapshot"

	assert.Equal(t, "TechFlow Agency", snap.Payload()["agencyName"])

	// Payload отдаёт копию: мутации снаружи срез не трогают
	p := snap.Payload()
	p["agencyName"] = "mutated"
	assert.Equal(t, "TechFlow Agency", snap.Payload()["agencyName"])
}

func TestFields_Validate(t *testing.T) {
	fields := sampleFields()
	require.NoError(t, fields.Validate())

	fields.VAPIBillingEmail = "not-an-email"
	assert.Error(t, fields.Validate())

	fields = sampleFields()
	fields.FallbackNumber = "814-822-0152"
	assert.Error(t, fields.Validate())

	// AdditionalNotes опционально
	fields = sampleFields()
	fields.AdditionalNotes = ""
	assert.NoError(t, fields.Validate())
}
