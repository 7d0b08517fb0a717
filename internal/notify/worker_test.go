package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/safety_incident_tracker/internal/config"
	"github.com/shenikar/safety_incident_tracker/internal/notify/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWorker(t *testing.T, mailer Mailer, cfg *config.Config) *Worker {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWorker(nil, mailer, logger, cfg)
}

func testPayload(t *testing.T, n Notification) string {
	t.Helper()
	payload, err := json.Marshal(n)
	require.NoError(t, err)
	return string(payload)
}

func TestWorker_Handle_SendsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	w := newTestWorker(t, mailer, &config.Config{WebhookMaxRetries: 3, WebhookBaseDelay: time.Millisecond})

	n := Notification{Kind: KindReportApproved, To: "jane@example.com", Subject: "Report #R0008 Approved", ReportID: "R0008"}
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got Notification) error {
		assert.Equal(t, "R0008", got.ReportID)
		assert.Equal(t, "jane@example.com", got.To)
		return nil
	})

	require.NoError(t, w.Handle(context.Background(), testPayload(t, n)))
}

func TestWorker_Handle_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	w := newTestWorker(t, mailer, &config.Config{WebhookMaxRetries: 3, WebhookBaseDelay: time.Millisecond})

	gomock.InOrder(
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("temporary")),
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("temporary")),
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
	)

	n := Notification{Kind: KindReportHold, To: "john@example.com"}
	require.NoError(t, w.Handle(context.Background(), testPayload(t, n)))
}

func TestWorker_Handle_GivesUpAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	w := newTestWorker(t, mailer, &config.Config{WebhookMaxRetries: 2, WebhookBaseDelay: time.Millisecond})

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("sendgrid down")).Times(2)

	err := w.Handle(context.Background(), testPayload(t, Notification{Kind: KindAlert, To: "a@example.com"}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "after 2 attempts")
}

func TestWorker_Handle_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	w := newTestWorker(t, mailer, &config.Config{WebhookMaxRetries: 1})

	err := w.Handle(context.Background(), "{not json")
	require.Error(t, err)
}

func TestWorker_Handle_SkipsEmptyRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	w := newTestWorker(t, mailer, &config.Config{WebhookMaxRetries: 1})

	// Send не должен вызываться
	require.NoError(t, w.Handle(context.Background(), testPayload(t, Notification{Kind: KindAlert})))
}

func TestWorker_Handle_SignedWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	received := make(chan *http.Request, 1)
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		received <- r
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "top-secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	w := newTestWorker(t, mailer, cfg)

	payload := testPayload(t, Notification{Kind: KindReportHold, To: "john@example.com"})
	require.NoError(t, w.Handle(context.Background(), payload))

	select {
	case r := <-received:
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, generateHMACSHA256(payload, "top-secret"), r.Header.Get("X-Webhook-Signature"))
		assert.JSONEq(t, payload, string(body))
	case <-time.After(time.Second):
		t.Fatal("webhook was not delivered")
	}
}

func TestGenerateHMACSHA256(t *testing.T) {
	sig := generateHMACSHA256("payload", "secret")
	assert.Len(t, sig, 64)
	assert.Equal(t, sig, generateHMACSHA256("payload", "secret"))
	assert.NotEqual(t, sig, generateHMACSHA256("payload", "other"))
}
