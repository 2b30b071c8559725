package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"noirlabs_billing/internal/config"
	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/infrastructure/httpx"
	"noirlabs_billing/internal/metrics"
	"noirlabs_billing/internal/usecase/interfaces"
)

// UnosendClient sends transactional email through Unosend's REST API.
type UnosendClient struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
	logger  *zap.Logger
}

var _ interfaces.IEmailSender = (*UnosendClient)(nil)

func NewUnosendClient(cfg config.EmailConfig, client *http.Client, logger *zap.Logger) *UnosendClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &UnosendClient{
		apiKey:  cfg.Key(),
		baseURL: cfg.BaseURL,
		from:    cfg.From,
		client:  client,
		logger:  logger.Named("email.unosend"),
	}
	if c.apiKey == "" {
		c.logger.Warn("UNOSEND_API_KEY missing, emails will not be sent")
	}
	return c
}

// Send posts msg and returns the provider's response body. An empty From is
// replaced by the configured sender.
func (c *UnosendClient) Send(ctx context.Context, msg entities.EmailMessage) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, interfaces.ErrEmailNotConfigured
	}
	if msg.From == "" {
		msg.From = c.from
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, &interfaces.EmailError{Details: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveDownstream("unosend", start, err)
		return nil, &interfaces.EmailError{Details: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		metrics.ObserveDownstream("unosend", start, err)
		return nil, &interfaces.EmailError{Status: resp.StatusCode, Details: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		emailErr := &interfaces.EmailError{Status: resp.StatusCode, Details: httpx.Details(raw)}
		metrics.ObserveDownstream("unosend", start, emailErr)
		c.logger.Error("email rejected", zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
		return nil, emailErr
	}
	metrics.ObserveDownstream("unosend", start, nil)

	if !json.Valid(raw) {
		raw, _ = json.Marshal(string(raw))
	}
	return raw, nil
}
