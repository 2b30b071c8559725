package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
	mock_interfaces "noirlabs_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestWaitlist(repo interfaces.IWaitlistRepository, sender interfaces.IEmailSender) *WaitlistUseCase {
	uc := NewWaitlistUseCase(repo, NewEmailUseCase(sender, nil), nil)
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
	uc.newID = func() string { return "wl-1" }
	return uc
}

func TestWaitlistUseCase_Join(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestWaitlist(mock_interfaces.NewMockIWaitlistRepository(ctrl), nil)

		for _, email := range []string{"", "nope"} {
			if _, _, err := uc.Join(context.Background(), email); !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest for %q, got %v", email, err)
			}
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWaitlistRepository(ctrl)
		uc := newTestWaitlist(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.WaitlistEntry{}, interfaces.ErrWaitlistEntryExists)

		if _, _, err := uc.Join(context.Background(), "a@b.co"); !errors.Is(err, ErrAlreadyOnWaitlist) {
			t.Fatalf("expected ErrAlreadyOnWaitlist, got %v", err)
		}
	})

	t.Run("email is lower-cased before storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWaitlistRepository(ctrl)
		uc := NewWaitlistUseCase(repo, nil, nil)

		var stored []string
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.WaitlistEntry) (entities.WaitlistEntry, error) {
			for _, s := range stored {
				if s == e.Email {
					return entities.WaitlistEntry{}, interfaces.ErrWaitlistEntryExists
				}
			}
			stored = append(stored, e.Email)
			return e, nil
		}).Times(2)

		got, _, err := uc.Join(context.Background(), "Alice@X.com")
		if err != nil || got.Email != "alice@x.com" {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
		if _, _, err := uc.Join(context.Background(), "alice@x.com"); !errors.Is(err, ErrAlreadyOnWaitlist) {
			t.Fatalf("expected ErrAlreadyOnWaitlist, got %v", err)
		}
	})

	t.Run("joins and sends confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWaitlistRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := newTestWaitlist(repo, sender)

		entry := entities.WaitlistEntry{ID: "wl-1", Email: "a@b.co", CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
		repo.EXPECT().Create(gomock.Any(), entry).Return(entry, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg entities.EmailMessage) (json.RawMessage, error) {
			if msg.To != "a@b.co" || msg.Subject != waitlistSubject {
				t.Fatalf("unexpected message %+v", msg)
			}
			return json.RawMessage(`{"id":"em-1"}`), nil
		})

		got, sent, err := uc.Join(context.Background(), " a@b.co ")
		if err != nil || !sent || got.ID != "wl-1" {
			t.Fatalf("unexpected result %+v sent=%v err=%v", got, sent, err)
		}
	})

	t.Run("email failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWaitlistRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := newTestWaitlist(repo, sender)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.WaitlistEntry) (entities.WaitlistEntry, error) {
			return e, nil
		})
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, &interfaces.EmailError{Status: 422, Details: "bad from"})

		_, sent, err := uc.Join(context.Background(), "a@b.co")
		if err != nil || sent {
			t.Fatalf("expected join without email, got sent=%v err=%v", sent, err)
		}
	})
}

func TestWaitlistUseCase_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWaitlistRepository(ctrl)
	uc := newTestWaitlist(repo, nil)

	repo.EXPECT().Count(gomock.Any()).Return(int64(42), nil)

	n, err := uc.Count(context.Background())
	if err != nil || n != 42 {
		t.Fatalf("unexpected count %d, %v", n, err)
	}
}
