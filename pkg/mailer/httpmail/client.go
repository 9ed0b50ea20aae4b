// Package httpmail provides a mailer.Client backed by a Postmark-compatible
// transactional email REST API.
package httpmail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"newsletter/pkg/domain"
	"newsletter/pkg/mailer"
	"newsletter/pkg/serrors"
	"strings"
)

// TokenHeader carries the server API token on every request.
const TokenHeader = "X-Postmark-Server-Token"

// Client talks to the email API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sender     domain.SubscriberEmail
	token      string
}

type sendEmailRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// Send posts email to {baseURL}/email. Non-2xx responses are errors; a 429 is
// reported as serrors.ErrRateLimited.
func (c *Client) Send(ctx context.Context, email mailer.Email) error {
	body, err := json.Marshal(sendEmailRequest{
		From:     c.sender.String(),
		To:       email.To.String(),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	})
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "email api rate limited: %s", strings.TrimSpace(string(b)))
	}

	return fmt.Errorf("email api responded %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
}

var _ mailer.Client = (*Client)(nil)

// New constructs a Client. httpClient carries the request timeout.
func New(httpClient *http.Client, baseURL string, sender domain.SubscriberEmail, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		sender:     sender,
		token:      token,
	}
}
