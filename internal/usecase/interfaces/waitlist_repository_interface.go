package interfaces

//go:generate mockgen -source=waitlist_repository_interface.go -destination=mocks/mock_waitlist_repository_interface.go -package=mock_interfaces

import (
	"context"
	"errors"

	"noirlabs_billing/internal/domain/entities"
)

var ErrWaitlistEntryExists = errors.New("waitlist entry already exists")

// IWaitlistRepository abstracts DynamoDB persistence for WaitlistEntry.
type IWaitlistRepository interface {
	// Create fails with ErrWaitlistEntryExists when the email already joined.
	Create(ctx context.Context, e entities.WaitlistEntry) (entities.WaitlistEntry, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]entities.WaitlistEntry, error)
}
