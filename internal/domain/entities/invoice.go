package entities

import (
	"encoding/json"
	"time"
)

// InvoiceStatus mirrors the statuses the payment provider reports for an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusSettled InvoiceStatus = "SETTLED"
	InvoiceStatusExpired InvoiceStatus = "EXPIRED"
)

// InvoiceRequest is the caller's request to open a checkout.
//
// Currency is optional and defaults to IDR when the outbound payload is built.
type InvoiceRequest struct {
	ExternalID  string  `json:"external_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	PayerEmail  string  `json:"payer_email" validate:"required,email"`
	Description string  `json:"description"`
	Currency    string  `json:"currency" validate:"omitempty,iso4217"`
}

// InvoicePayload is the body sent to the provider's invoice endpoint.
type InvoicePayload struct {
	ExternalID         string  `json:"external_id"`
	Amount             float64 `json:"amount"`
	PayerEmail         string  `json:"payer_email"`
	Description        string  `json:"description"`
	InvoiceDuration    int     `json:"invoice_duration"`
	Currency           string  `json:"currency"`
	SuccessRedirectURL string  `json:"success_redirect_url"`
	FailureRedirectURL string  `json:"failure_redirect_url"`
}

// InvoiceRecord is the ledger entry kept for every invoice the provider accepted.
//
// Storage model (DynamoDB):
//   - PK: id (provider invoice id)
//   - GSI (user_id-index): user_id
//
// ProviderResponse keeps the provider body for traceability.
type InvoiceRecord struct {
	ID          string        `json:"id"`
	ExternalID  string        `json:"external_id"`
	UserID      string        `json:"user_id"`
	PayerEmail  string        `json:"payer_email"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Description string        `json:"description"`
	Status      InvoiceStatus `json:"status"`
	InvoiceURL  string        `json:"invoice_url"`
	ExpiryDate  string        `json:"expiry_date,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`

	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}
