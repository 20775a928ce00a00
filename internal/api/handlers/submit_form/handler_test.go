package submit_form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OPS-OnboardingService/internal/integrations/n8n"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRelay struct {
	result  *n8n.Result
	err     error
	payload interface{}
}

func (f *fakeRelay) Forward(_ context.Context, payload interface{}) (*n8n.Result, error) {
	f.payload = payload
	return f.result, f.err
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	relay := &fakeRelay{result: &n8n.Result{Data: map[string]interface{}{"status": "queued"}}}
	h := NewHandler(relay, nopLogger{}, false)

	rec := doRequest(h, `{"agencyName":"TechFlow Agency","locationId":"QFS456ABC789"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "queued", resp.Data["status"])

	// Тело уходит в relay как есть, без схемы
	payload, ok := relay.payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "TechFlow Agency", payload["agencyName"])
}

func TestHandle_SuccessWithRawTextData(t *testing.T) {
	relay := &fakeRelay{result: &n8n.Result{Data: "not-json-text"}}
	h := NewHandler(relay, nopLogger{}, false)

	rec := doRequest(h, `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":"not-json-text"}`, rec.Body.String())
}

func TestHandle_WebhookFailureReturns500Envelope(t *testing.T) {
	relay := &fakeRelay{err: errors.New(`webhook error (404): {"message":"not found"}`)}
	h := NewHandler(relay, nopLogger{}, false)

	rec := doRequest(h, `{}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Error   string      `json:"error"`
		Details interface{} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "webhook error (404)")
	assert.Contains(t, resp.Error, `"message":"not found"`)
	assert.Nil(t, resp.Details, "details must be absent outside development mode")
}

func TestHandle_DevelopmentModeIncludesDetails(t *testing.T) {
	relay := &fakeRelay{err: errors.New("boom")}
	h := NewHandler(relay, nopLogger{}, true)

	rec := doRequest(h, `{}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"details"`)
}

func TestHandle_MalformedBodyReturns500Envelope(t *testing.T) {
	relay := &fakeRelay{}
	h := NewHandler(relay, nopLogger{}, false)

	rec := doRequest(h, `{"broken":`)

	// Нечитаемое тело идёт по общему пути сбоев: конверт ошибки, 500
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Nil(t, relay.payload)
}
