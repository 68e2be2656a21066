package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"shirtshop_backend/internal/shared/ratelimiter"
)

// Mailer sends email through the SendGrid v3 mail/send endpoint.
type Mailer struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// NewMailer creates a new Mailer with the given configuration and HTTP
// client. The limiter, when non-nil, caps how fast sends go out; pass nil
// to send unthrottled.
func NewMailer(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Mailer {
	return &Mailer{cfg: cfg, client: client, limiter: limiter}
}

// sendRequest is the mail/send request body.
type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type emailAddress struct {
	Email string `json:"email"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send delivers one HTML email. Any non-2xx response is an error; the
// caller decides how to surface it.
func (m *Mailer) Send(ctx context.Context, to, from, subject, htmlBody string) error {
	if m.limiter != nil {
		m.limiter.WaitIfNeeded()
	}

	body := sendRequest{
		Personalizations: []personalization{{To: []emailAddress{{Email: to}}}},
		From:             emailAddress{Email: from},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: htmlBody}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	u := fmt.Sprintf("%s/v3/mail/send", m.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("sendgrid http %d", res.StatusCode)
	}
	return nil
}
