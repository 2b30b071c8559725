package usecase

import (
	"strings"

	"noirlabs_billing/internal/domain/entities"
)

const (
	// InvoiceDurationSeconds is fixed server-side; callers cannot change it.
	InvoiceDurationSeconds = 86400
	DefaultCurrency        = "IDR"
	// LocalDevOrigin is used when neither the request nor the config supplies an origin.
	LocalDevOrigin = "http://localhost:5173"

	successRedirectPath = "/profile?payment=success"
	failureRedirectPath = "/pricing?payment=failed"
)

// BuildInvoicePayload maps a request to the provider payload. origin is the
// request's Origin header; fallbackOrigin replaces it when empty.
func BuildInvoicePayload(req entities.InvoiceRequest, origin, fallbackOrigin string) entities.InvoicePayload {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		origin = fallbackOrigin
	}
	if origin == "" {
		origin = LocalDevOrigin
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return entities.InvoicePayload{
		ExternalID:         req.ExternalID,
		Amount:             req.Amount,
		PayerEmail:         req.PayerEmail,
		Description:        req.Description,
		InvoiceDuration:    InvoiceDurationSeconds,
		Currency:           currency,
		SuccessRedirectURL: origin + successRedirectPath,
		FailureRedirectURL: origin + failureRedirectPath,
	}
}
