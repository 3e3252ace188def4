package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidolu/elector-registry/internal/common"
)

func TestResendMailerSend(t *testing.T) {
	var got resendPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewResendMailer("test-key", "Elector Registry <noreply@example.edu>", time.Second, slog.Default())
	m.url = srv.URL

	err := m.Send(context.Background(), []string{"chair@example.edu"}, "subject", "<p>hi</p>")
	require.NoError(t, err)
	require.Equal(t, "Bearer test-key", auth)
	require.Equal(t, []string{"chair@example.edu"}, got.To)
	require.Equal(t, "Elector Registry <noreply@example.edu>", got.From)
	require.Equal(t, "subject", got.Subject)
	require.Equal(t, "<p>hi</p>", got.HTML)
}

func TestResendMailerNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewResendMailer("bad-key", "noreply@example.edu", time.Second, slog.Default())
	m.url = srv.URL

	err := m.Send(context.Background(), []string{"chair@example.edu"}, "subject", "<p>hi</p>")
	require.ErrorIs(t, err, common.ErrNotificationFailure)
}

func TestResendMailerTransportError(t *testing.T) {
	m := NewResendMailer("key", "noreply@example.edu", 200*time.Millisecond, slog.Default())
	m.url = "http://127.0.0.1:1" // nothing listens here

	err := m.Send(context.Background(), []string{"chair@example.edu"}, "subject", "<p>hi</p>")
	require.ErrorIs(t, err, common.ErrNotificationFailure)
}

func TestRenderUploadProcessed(t *testing.T) {
	html := RenderUploadProcessed(UploadSummary{
		UploadID:     "upload_test1",
		Filename:     "electors.csv",
		TotalRecords: 50,
		ValidRecords: 47,
	})
	require.Contains(t, html, "upload_test1")
	require.Contains(t, html, "electors.csv")
	require.Contains(t, html, "<strong>Total Records:</strong> 50")
	require.Contains(t, html, "<strong>Valid Records Processed:</strong> 47")
	require.Contains(t, html, "<strong>Invalid Records:</strong> 3")
}
