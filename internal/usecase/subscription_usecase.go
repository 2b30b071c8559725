package usecase

//go:generate mockgen -source=subscription_usecase.go -destination=../adapter/http/handlers/mocks/mock_subscription_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

// SubscriptionPeriod is how long one activation keeps a plan valid.
const SubscriptionPeriod = 30 * 24 * time.Hour

var ErrSubscriptionNotFound = errors.New("subscription not found")

type ISubscriptionUseCase interface {
	Activate(ctx context.Context, identity entities.Identity) (entities.Subscription, error)
	GetMine(ctx context.Context, identity entities.Identity) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo   interfaces.ISubscriptionRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, logger *zap.Logger) *SubscriptionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionUseCase{repo: repo, logger: logger.Named("subscription.usecase"), now: time.Now}
}

// Activate upserts the caller's row as an active researcher plan valid for
// one period from now. Re-activating restarts the period.
func (u *SubscriptionUseCase) Activate(ctx context.Context, identity entities.Identity) (entities.Subscription, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return entities.Subscription{}, interfaces.ErrUnauthenticated
	}

	now := u.now().UTC()
	sub := entities.Subscription{
		UserID:     identity.UserID,
		Status:     entities.SubscriptionStatusActive,
		Tier:       entities.SubscriptionTierResearcher,
		ValidUntil: now.Add(SubscriptionPeriod),
		UpdatedAt:  now,
	}
	saved, err := u.repo.Upsert(ctx, sub)
	if err != nil {
		u.logger.Error("failed activating subscription", zap.String("user_id", identity.UserID), zap.Error(err))
		return entities.Subscription{}, err
	}
	u.logger.Info("subscription activated", zap.String("user_id", identity.UserID), zap.Time("valid_until", saved.ValidUntil))
	return saved, nil
}

func (u *SubscriptionUseCase) GetMine(ctx context.Context, identity entities.Identity) (entities.Subscription, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return entities.Subscription{}, interfaces.ErrUnauthenticated
	}
	sub, err := u.repo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if sub.UserID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	return sub, nil
}
