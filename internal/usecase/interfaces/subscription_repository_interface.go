package interfaces

//go:generate mockgen -source=subscription_repository_interface.go -destination=mocks/mock_subscription_repository_interface.go -package=mock_interfaces

import (
	"context"

	"noirlabs_billing/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// GetByUserID returns a zero Subscription (empty UserID) when no row exists.
type ISubscriptionRepository interface {
	Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
}
