package interfaces

//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/mock_invoice_repository_interface.go -package=mock_interfaces

import (
	"context"

	"noirlabs_billing/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for the invoice ledger.
type IInvoiceRepository interface {
	Create(ctx context.Context, r entities.InvoiceRecord) (entities.InvoiceRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.InvoiceRecord, error)
}
