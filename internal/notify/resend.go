package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/davidolu/elector-registry/internal/common"
)

const resendURL = "https://api.resend.com/emails"

// ResendMailer sends email through the Resend HTTP API.
type ResendMailer struct {
	apiKey string
	from   string
	client *http.Client
	url    string
	logger *slog.Logger
}

func NewResendMailer(apiKey, from string, timeout time.Duration, logger *slog.Logger) *ResendMailer {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: timeout},
		url:    resendURL,
		logger: logger,
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) Send(ctx context.Context, to []string, subject, html string) error {
	m.logger.Info("sending email", "to", to, "subject", subject)

	bs, err := json.Marshal(resendPayload{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: encode payload: %w", common.ErrNotificationFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", common.ErrNotificationFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	start := time.Now()
	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Error("email send failed", "to", to, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("%w: %w", common.ErrNotificationFailure, err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			m.logger.Warn("email response body close failed", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(resp.Body)
		m.logger.Error("email send rejected", "to", to, "status", resp.StatusCode, "body", string(raw))
		return fmt.Errorf("%w: non-2xx status: %d", common.ErrNotificationFailure, resp.StatusCode)
	}

	m.logger.Info("email sent", "to", to, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}
