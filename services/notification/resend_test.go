package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records the last request the fake provider received.
type capture struct {
	auth string
	msg  resendMessage
}

func newTestService(t *testing.T, status int, body string) (*ResendEmailService, *capture) {
	t.Helper()

	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		cap.auth = r.Header.Get("Authorization")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &cap.msg))

		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	svc := &ResendEmailService{
		APIKey:  "test-key",
		Sender:  "BookIt <noreply@bookit.dev>",
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
	return svc, cap
}

func TestSendVerificationEmail(t *testing.T) {
	svc, cap := newTestService(t, http.StatusOK, `{"id":"msg_1"}`)

	err := svc.SendVerificationEmail(context.Background(), "jane@example.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", cap.auth)
	assert.Equal(t, "BookIt <noreply@bookit.dev>", cap.msg.From)
	assert.Equal(t, []string{"jane@example.com"}, cap.msg.To)
	assert.Equal(t, "Verify your email", cap.msg.Subject)
	assert.Contains(t, cap.msg.HTML, "123456")
	require.Len(t, cap.msg.Tags, 1)
	assert.Equal(t, resendTag{Name: "category", Value: "email_verification"}, cap.msg.Tags[0])
}

func TestSendWelcomeEmail(t *testing.T) {
	svc, cap := newTestService(t, http.StatusOK, `{"id":"msg_2"}`)

	err := svc.SendWelcomeEmail(context.Background(), "jane@example.com", "Jane")
	require.NoError(t, err)

	assert.Equal(t, "Welcome to BookIt!", cap.msg.Subject)
	assert.Contains(t, cap.msg.HTML, "Jane")
	require.Len(t, cap.msg.Tags, 1)
	assert.Equal(t, "welcome_email", cap.msg.Tags[0].Value)
}

func TestSendPasswordResetEmail(t *testing.T) {
	svc, cap := newTestService(t, http.StatusOK, `{"id":"msg_3"}`)

	err := svc.SendPasswordResetEmail(context.Background(), "jane@example.com", "http://localhost:5173/reset-password/abc")
	require.NoError(t, err)

	assert.Equal(t, "Reset your password", cap.msg.Subject)
	assert.Contains(t, cap.msg.HTML, "http://localhost:5173/reset-password/abc")
	require.Len(t, cap.msg.Tags, 1)
	assert.Equal(t, "password_reset", cap.msg.Tags[0].Value)
}

func TestSendResetSuccessEmail(t *testing.T) {
	svc, cap := newTestService(t, http.StatusOK, `{"id":"msg_4"}`)

	err := svc.SendResetSuccessEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Password Reset Successful", cap.msg.Subject)
	require.Len(t, cap.msg.Tags, 1)
	assert.Equal(t, "password_reset", cap.msg.Tags[0].Value)
}

func TestSend_ProviderError(t *testing.T) {
	svc, _ := newTestService(t, http.StatusUnprocessableEntity, `{"message":"invalid to address"}`)

	err := svc.SendVerificationEmail(context.Background(), "bad", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error sending verification email")
	assert.Contains(t, err.Error(), "invalid to address")
}

func TestSend_ProviderErrorWithoutBody(t *testing.T) {
	svc, _ := newTestService(t, http.StatusInternalServerError, "")

	err := svc.SendWelcomeEmail(context.Background(), "jane@example.com", "Jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error sending welcome email")
	assert.Contains(t, err.Error(), "provider returned 500")
}
