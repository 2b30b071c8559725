package response

import (
	"time"

	"noirlabs_billing/internal/domain/entities"
)

type InvoiceResponse struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"external_id"`
	PayerEmail  string    `json:"payer_email"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	InvoiceURL  string    `json:"invoice_url"`
	ExpiryDate  string    `json:"expiry_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromInvoiceRecord(r entities.InvoiceRecord) InvoiceResponse {
	return InvoiceResponse{
		ID:          r.ID,
		ExternalID:  r.ExternalID,
		PayerEmail:  r.PayerEmail,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
		Status:      string(r.Status),
		InvoiceURL:  r.InvoiceURL,
		ExpiryDate:  r.ExpiryDate,
		CreatedAt:   r.CreatedAt,
	}
}

func FromInvoiceRecords(records []entities.InvoiceRecord) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromInvoiceRecord(r))
	}
	return out
}
