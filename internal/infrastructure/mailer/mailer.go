package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Template names understood by the mail gateway.
const (
	TemplateDealUpdateApproved  = "deal-update-approved"
	TemplateDealUpdateRejected  = "deal-update-rejected"
	TemplateInvestmentConfirmed = "investment-confirmed"
	TemplateWelcome             = "welcome"
	TemplateApplicationRejected = "application-rejected"
)

// Mailer sends a template-keyed transactional email. Callers treat dispatch
// as best-effort: a returned error is logged, never propagated.
type Mailer interface {
	Send(ctx context.Context, template, to string, params map[string]string) error
}

type sendRequest struct {
	Template string            `json:"template"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	Params   map[string]string `json:"params,omitempty"`
}

// Gateway posts to a transactional-email HTTP API.
type Gateway struct {
	url    string
	apiKey string
	from   string
	client *http.Client
}

func NewGateway(url, apiKey, from string) *Gateway {
	return &Gateway{
		url:    url,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *Gateway) Send(ctx context.Context, template, to string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{Template: template, From: g.from, To: to, Params: params})
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// Noop discards all mail; used in local development and tests.
type Noop struct{}

func (Noop) Send(context.Context, string, string, map[string]string) error { return nil }
