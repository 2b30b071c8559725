package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"noirlabs_billing/internal/config"
	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/infrastructure/httpx"
	"noirlabs_billing/internal/metrics"
	"noirlabs_billing/internal/usecase/interfaces"
)

const (
	invoicesPath    = "/v2/invoices"
	maxResponseSize = 1 << 20
)

// XenditGateway creates hosted invoices through Xendit's invoice API.
type XenditGateway struct {
	secretKey string
	baseURL   string
	mockMode  bool
	client    *http.Client
	logger    *zap.Logger
}

var _ interfaces.IPaymentGateway = (*XenditGateway)(nil)

// NewXenditGateway never fails: a missing secret is reported per call so the
// rest of the API keeps serving.
func NewXenditGateway(cfg config.XenditConfig, client *http.Client, logger *zap.Logger) *XenditGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &XenditGateway{
		secretKey: cfg.SecretKey,
		baseURL:   cfg.BaseURL,
		mockMode:  cfg.MockEnabled(),
		client:    client,
		logger:    logger.Named("payment.gateway"),
	}
	switch {
	case g.mockMode:
		g.logger.Warn("mock mode enabled, invoices are not sent to xendit")
	case g.secretKey == "":
		g.logger.Error("XENDIT_SECRET_KEY missing, invoice creation will fail")
	}
	return g
}

func (g *XenditGateway) CreateInvoice(ctx context.Context, payload entities.InvoicePayload) (json.RawMessage, error) {
	if g.mockMode {
		return g.mockInvoice(payload)
	}
	if g.secretKey == "" {
		return nil, interfaces.ErrPaymentGatewayNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode invoice payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+invoicesPath, bytes.NewReader(body))
	if err != nil {
		return nil, &interfaces.GatewayError{Details: err.Error()}
	}
	req.SetBasicAuth(g.secretKey, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		metrics.ObserveDownstream("xendit", start, err)
		g.logger.Error("invoice request failed", zap.String("external_id", payload.ExternalID), zap.Error(err))
		return nil, &interfaces.GatewayError{Details: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		metrics.ObserveDownstream("xendit", start, err)
		return nil, &interfaces.GatewayError{Status: resp.StatusCode, Details: err.Error()}
	}
	if len(raw) > maxResponseSize {
		gwErr := &interfaces.GatewayError{Status: resp.StatusCode, Details: fmt.Sprintf("response body exceeds %d bytes", maxResponseSize)}
		metrics.ObserveDownstream("xendit", start, gwErr)
		g.logger.Error("invoice response too large", zap.String("external_id", payload.ExternalID), zap.Int("status", resp.StatusCode))
		return nil, gwErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := &interfaces.GatewayError{Status: resp.StatusCode, Details: httpx.Details(raw)}
		metrics.ObserveDownstream("xendit", start, gwErr)
		g.logger.Error("invoice rejected",
			zap.String("external_id", payload.ExternalID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return nil, gwErr
	}

	if !json.Valid(raw) {
		gwErr := &interfaces.GatewayError{Status: resp.StatusCode, Details: "provider returned a non-JSON body"}
		metrics.ObserveDownstream("xendit", start, gwErr)
		g.logger.Error("invoice response is not JSON", zap.String("external_id", payload.ExternalID), zap.Int("status", resp.StatusCode))
		return nil, gwErr
	}

	metrics.ObserveDownstream("xendit", start, nil)
	g.logger.Info("invoice created", zap.String("external_id", payload.ExternalID), zap.Int("status", resp.StatusCode))
	return json.RawMessage(raw), nil
}

// mockInvoice answers like Xendit would, sending the payer straight to the
// success redirect.
func (g *XenditGateway) mockInvoice(payload entities.InvoicePayload) (json.RawMessage, error) {
	now := time.Now().UTC()
	resp := map[string]any{
		"id":                   uuid.NewString(),
		"external_id":          payload.ExternalID,
		"status":               string(entities.InvoiceStatusPending),
		"amount":               payload.Amount,
		"payer_email":          payload.PayerEmail,
		"description":          payload.Description,
		"currency":             payload.Currency,
		"invoice_url":          payload.SuccessRedirectURL,
		"success_redirect_url": payload.SuccessRedirectURL,
		"failure_redirect_url": payload.FailureRedirectURL,
		"created":              now.Format(time.RFC3339Nano),
		"expiry_date":          now.Add(time.Duration(payload.InvoiceDuration) * time.Second).Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	g.logger.Info("mock invoice created", zap.String("external_id", payload.ExternalID), zap.String("invoice_id", resp["id"].(string)))
	return b, nil
}
