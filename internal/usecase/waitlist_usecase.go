package usecase

//go:generate mockgen -source=waitlist_usecase.go -destination=../adapter/http/handlers/mocks/mock_waitlist_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

var ErrAlreadyOnWaitlist = errors.New("email already on waitlist")

type IWaitlistUseCase interface {
	Join(ctx context.Context, email string) (entities.WaitlistEntry, bool, error)
	Count(ctx context.Context) (int64, error)
}

type WaitlistUseCase struct {
	repo     interfaces.IWaitlistRepository
	emails   IEmailUseCase
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

var _ IWaitlistUseCase = (*WaitlistUseCase)(nil)

func NewWaitlistUseCase(repo interfaces.IWaitlistRepository, emails IEmailUseCase, logger *zap.Logger) *WaitlistUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaitlistUseCase{
		repo:     repo,
		emails:   emails,
		validate: newValidator(),
		logger:   logger.Named("waitlist.usecase"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

type waitlistSignup struct {
	Email string `json:"email" validate:"required,email"`
}

// Join stores the signup and then sends the confirmation email. Addresses
// are stored lower-cased, so one mailbox holds one place in the queue. The
// bool reports whether the email went out; a failed send does not fail the
// join.
func (u *WaitlistUseCase) Join(ctx context.Context, email string) (entities.WaitlistEntry, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateStruct(u.validate, waitlistSignup{Email: email}); err != nil {
		return entities.WaitlistEntry{}, false, err
	}

	entry, err := u.repo.Create(ctx, entities.WaitlistEntry{
		ID:        u.newID(),
		Email:     email,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrWaitlistEntryExists) {
			return entities.WaitlistEntry{}, false, ErrAlreadyOnWaitlist
		}
		u.logger.Error("failed joining waitlist", zap.Error(err))
		return entities.WaitlistEntry{}, false, err
	}

	if u.emails == nil {
		return entry, false, nil
	}
	if _, err := u.emails.SendWaitlistConfirmation(ctx, entry.Email); err != nil {
		u.logger.Warn("waitlist confirmation not sent", zap.String("waitlist_id", entry.ID), zap.Error(err))
		return entry, false, nil
	}
	return entry, true, nil
}

func (u *WaitlistUseCase) Count(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}
