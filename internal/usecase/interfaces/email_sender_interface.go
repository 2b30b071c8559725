package interfaces

//go:generate mockgen -source=email_sender_interface.go -destination=mocks/mock_email_sender_interface.go -package=mock_interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"noirlabs_billing/internal/domain/entities"
)

var ErrEmailNotConfigured = errors.New("email provider not configured: UNOSEND_API_KEY missing")

// IEmailSender abstracts the transactional email provider (Unosend).
type IEmailSender interface {
	Send(ctx context.Context, msg entities.EmailMessage) (json.RawMessage, error)
}

// EmailError is a provider rejection or transport failure. Status is 0 when
// no HTTP response was received.
type EmailError struct {
	Status  int
	Details any
}

func (e *EmailError) Error() string {
	return fmt.Sprintf("email provider error status=%d: %v", e.Status, e.Details)
}
