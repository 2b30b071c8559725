package interfaces

//go:generate mockgen -source=profile_repository_interface.go -destination=mocks/mock_profile_repository_interface.go -package=mock_interfaces

import (
	"context"
	"time"

	"noirlabs_billing/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.
//
// GetByUserID returns a zero Profile (empty UserID) when no row exists.
type IProfileRepository interface {
	Upsert(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
	// SetActiveProduct only touches an existing row; it is a no-op for users
	// that never saved a profile.
	SetActiveProduct(ctx context.Context, userID, product string, at time.Time) error
	Count(ctx context.Context) (int64, error)
}
