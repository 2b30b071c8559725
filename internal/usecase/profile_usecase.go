package usecase

//go:generate mockgen -source=profile_usecase.go -destination=../adapter/http/handlers/mocks/mock_profile_usecase.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

type IProfileUseCase interface {
	GetMine(ctx context.Context, identity entities.Identity) (entities.Profile, error)
	Update(ctx context.Context, identity entities.Identity, update ProfileUpdate) (entities.Profile, error)
	SelectProduct(ctx context.Context, identity entities.Identity, product string) error
}

// ProfileUpdate replaces the username and every preference at once.
type ProfileUpdate struct {
	Username    string
	Preferences entities.ProfilePreferences
}

type profileChange struct {
	Username string `json:"username" validate:"max=64"`
	Theme    string `json:"theme" validate:"required,oneof=light dark"`
}

type productSelection struct {
	Product string `json:"product" validate:"required,max=64"`
}

type ProfileUseCase struct {
	repo     interfaces.IProfileRepository
	logs     ISystemLogUseCase
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

// NewProfileUseCase wires the settings store. logs may be nil, in which
// case product access is not written to the activity feed.
func NewProfileUseCase(repo interfaces.IProfileRepository, logs ISystemLogUseCase, logger *zap.Logger) *ProfileUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileUseCase{
		repo:     repo,
		logs:     logs,
		validate: newValidator(),
		logger:   logger.Named("profile.usecase"),
		now:      time.Now,
	}
}

// GetMine returns the stored profile, or the default settings for users who
// never saved one.
func (u *ProfileUseCase) GetMine(ctx context.Context, identity entities.Identity) (entities.Profile, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return entities.Profile{}, interfaces.ErrUnauthenticated
	}
	p, err := u.repo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.UserID == "" {
		return entities.Profile{UserID: identity.UserID, Preferences: entities.DefaultPreferences()}, nil
	}
	return p, nil
}

func (u *ProfileUseCase) Update(ctx context.Context, identity entities.Identity, update ProfileUpdate) (entities.Profile, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return entities.Profile{}, interfaces.ErrUnauthenticated
	}
	update.Username = strings.TrimSpace(update.Username)
	if err := validateStruct(u.validate, profileChange{Username: update.Username, Theme: update.Preferences.Theme}); err != nil {
		return entities.Profile{}, err
	}

	current, err := u.repo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return entities.Profile{}, err
	}
	saved, err := u.repo.Upsert(ctx, entities.Profile{
		UserID:        identity.UserID,
		Username:      update.Username,
		Preferences:   update.Preferences,
		ActiveProduct: current.ActiveProduct,
		UpdatedAt:     u.now().UTC(),
	})
	if err != nil {
		u.logger.Error("failed saving profile", zap.String("user_id", identity.UserID), zap.Error(err))
		return entities.Profile{}, err
	}
	return saved, nil
}

// SelectProduct records which lab product the user opened. The activity
// feed write is best effort.
func (u *ProfileUseCase) SelectProduct(ctx context.Context, identity entities.Identity, product string) error {
	if strings.TrimSpace(identity.UserID) == "" {
		return interfaces.ErrUnauthenticated
	}
	product = strings.TrimSpace(product)
	if err := validateStruct(u.validate, productSelection{Product: product}); err != nil {
		return err
	}

	if err := u.repo.SetActiveProduct(ctx, identity.UserID, product, u.now().UTC()); err != nil {
		u.logger.Error("failed updating active product", zap.String("user_id", identity.UserID), zap.Error(err))
		return err
	}
	if u.logs == nil {
		return nil
	}
	if err := u.logs.RecordProductAccess(ctx, identity, product); err != nil {
		u.logger.Warn("product access not logged", zap.String("user_id", identity.UserID), zap.Error(err))
	}
	return nil
}
