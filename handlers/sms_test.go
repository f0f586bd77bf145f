// File: handlers/sms_test.go
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"glospa/models"
	"glospa/services/sms"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEngine struct {
	settings *sms.Settings
	last     models.IncomingMessage
}

func (s *stubEngine) HandleIncomingMessage(ctx context.Context, msg models.IncomingMessage) models.Outcome {
	s.last = msg
	return models.Outcome{
		Success:      true,
		ResponseSent: true,
		Response:     "ok",
		Intent:       models.IntentGreeting,
		Confidence:   0.8,
	}
}

func (s *stubEngine) Settings() *sms.Settings { return s.settings }

func (s *stubEngine) Stats(ctx context.Context) sms.Stats { return sms.Stats{} }

func newWebhookRouter() (*gin.Engine, *stubEngine) {
	gin.SetMode(gin.TestMode)
	engine := &stubEngine{settings: sms.NewSettings()}
	h := NewSMSHandler(engine, zap.NewNop())
	r := gin.New()
	r.POST("/api/sms/webhook", h.Webhook)
	return r, engine
}

func TestWebhookAcceptsJSON(t *testing.T) {
	r, engine := newWebhookRouter()

	body := `{"from":"+19185551234","to":"9189325396","body":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/sms/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"responseSent":true`)
	assert.Equal(t, "+19185551234", engine.last.From)
	assert.Equal(t, "Hi", engine.last.Body)
}

func TestWebhookAcceptsTwilioForm(t *testing.T) {
	r, engine := newWebhookRouter()

	form := url.Values{}
	form.Set("From", "+19185551234")
	form.Set("To", "9189325396")
	form.Set("Body", "book")
	form.Set("MessageSid", "SM123")
	req := httptest.NewRequest(http.MethodPost, "/api/sms/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "book", engine.last.Body)
	assert.Equal(t, "SM123", engine.last.MessageID)
}

func TestWebhookRejectsMissingFields(t *testing.T) {
	r, _ := newWebhookRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/sms/webhook", strings.NewReader(`{"from":"+19185551234"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
