package request

import "noirlabs_billing/internal/domain/entities"

// CreateInvoiceRequest is the body of POST /api/create-invoice. Field rules
// are enforced by the use case so that every entry point shares them.
type CreateInvoiceRequest struct {
	ExternalID  string  `json:"external_id" example:"order-2026-0001"`
	Amount      float64 `json:"amount" example:"150000"`
	PayerEmail  string  `json:"payer_email" example:"alice@example.com"`
	Description string  `json:"description" example:"Noir Labs researcher plan"`
	Currency    string  `json:"currency,omitempty" example:"IDR"`
}

func (r CreateInvoiceRequest) ToEntity() entities.InvoiceRequest {
	return entities.InvoiceRequest{
		ExternalID:  r.ExternalID,
		Amount:      r.Amount,
		PayerEmail:  r.PayerEmail,
		Description: r.Description,
		Currency:    r.Currency,
	}
}
