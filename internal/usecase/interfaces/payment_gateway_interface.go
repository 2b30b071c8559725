package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"noirlabs_billing/internal/domain/entities"
)

// ErrPaymentGatewayNotConfigured means the server holds no payment secret.
var ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured: XENDIT_SECRET_KEY missing")

// IPaymentGateway abstracts the invoice provider (Xendit).
//
// CreateInvoice returns the provider's JSON body untouched on success and a
// *GatewayError for every transport failure or non-2xx answer.
type IPaymentGateway interface {
	CreateInvoice(ctx context.Context, payload entities.InvoicePayload) (json.RawMessage, error)
}

// GatewayError carries what the provider reported. Status is 0 when no HTTP
// response was received.
type GatewayError struct {
	Status  int
	Details any
}

func (e *GatewayError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("payment gateway request failed: %v", e.Details)
	}
	return fmt.Sprintf("payment gateway returned %d: %v", e.Status, e.Details)
}

// HTTPStatus is the status relayed to the caller: the provider's, or 500.
func (e *GatewayError) HTTPStatus() int {
	if e.Status < 400 || e.Status > 599 {
		return http.StatusInternalServerError
	}
	return e.Status
}
