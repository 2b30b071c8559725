package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
	mock_interfaces "noirlabs_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubscriptionUseCase_Activate(t *testing.T) {
	t.Run("requires identity", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, nil)
		if _, err := uc.Activate(context.Background(), entities.Identity{}); !errors.Is(err, interfaces.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("upserts active researcher for thirty days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil)
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		want := entities.Subscription{
			UserID:     "u-1",
			Status:     entities.SubscriptionStatusActive,
			Tier:       entities.SubscriptionTierResearcher,
			ValidUntil: time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC),
			UpdatedAt:  now,
		}
		repo.EXPECT().Upsert(gomock.Any(), want).Return(want, nil)

		got, err := uc.Activate(context.Background(), alice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsPro(now) {
			t.Fatalf("expected pro subscription")
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Subscription{}, errors.New("db"))

		if _, err := uc.Activate(context.Background(), alice); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_GetMine(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil)

		repo.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Subscription{}, nil)

		if _, err := uc.GetMine(context.Background(), alice); !errors.Is(err, ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubscriptionRepository(ctrl)
		uc := NewSubscriptionUseCase(repo, nil)

		repo.EXPECT().GetByUserID(gomock.Any(), "u-1").Return(entities.Subscription{UserID: "u-1", Status: entities.SubscriptionStatusInactive}, nil)

		sub, err := uc.GetMine(context.Background(), alice)
		if err != nil || sub.Status != entities.SubscriptionStatusInactive {
			t.Fatalf("unexpected result %+v, %v", sub, err)
		}
	})
}
