package usecase

//go:generate mockgen -source=system_log_usecase.go -destination=../adapter/http/handlers/mocks/mock_system_log_usecase.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

const (
	DefaultRecentLogs = 5
	MaxRecentLogs     = 50
)

type ISystemLogUseCase interface {
	RecordLogin(ctx context.Context, identity entities.Identity) (entities.SystemLog, error)
	// RecordProductAccess writes a usage line for products that have one;
	// other products are not logged.
	RecordProductAccess(ctx context.Context, identity entities.Identity, product string) error
	Recent(ctx context.Context, limit int) ([]entities.SystemLog, error)
}

type SystemLogUseCase struct {
	repo   interfaces.ISystemLogRepository
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

var _ ISystemLogUseCase = (*SystemLogUseCase)(nil)

func NewSystemLogUseCase(repo interfaces.ISystemLogRepository, logger *zap.Logger) *SystemLogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemLogUseCase{
		repo:   repo,
		logger: logger.Named("systemlog.usecase"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (u *SystemLogUseCase) RecordLogin(ctx context.Context, identity entities.Identity) (entities.SystemLog, error) {
	if strings.TrimSpace(identity.Email) == "" {
		return entities.SystemLog{}, interfaces.ErrUnauthenticated
	}
	return u.record(ctx, entities.SystemLogAuth, fmt.Sprintf("RELAY_ESTABLISHED: %s logged in.", identity.Email))
}

func (u *SystemLogUseCase) RecordProductAccess(ctx context.Context, identity entities.Identity, product string) error {
	message := productAccessMessage(identity.Email, product)
	if message == "" {
		return nil
	}
	_, err := u.record(ctx, entities.SystemLogUsage, message)
	return err
}

func productAccessMessage(email, product string) string {
	switch product {
	case entities.ProductNoirAI:
		return fmt.Sprintf("NEURAL_LINK: %s accessing NOIR AI.", email)
	case entities.ProductNoirCode:
		return fmt.Sprintf("SYNTH_INIT: %s generating code.", email)
	default:
		return ""
	}
}

// Recent clamps limit to [1, MaxRecentLogs]; zero or negative means
// DefaultRecentLogs.
func (u *SystemLogUseCase) Recent(ctx context.Context, limit int) ([]entities.SystemLog, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLogs
	case limit > MaxRecentLogs:
		limit = MaxRecentLogs
	}
	return u.repo.Recent(ctx, limit)
}

func (u *SystemLogUseCase) record(ctx context.Context, typ entities.SystemLogType, message string) (entities.SystemLog, error) {
	entry := entities.SystemLog{
		ID:        u.newID(),
		Type:      typ,
		Message:   message,
		CreatedAt: u.now().UTC(),
	}
	if err := u.repo.Create(ctx, entry); err != nil {
		u.logger.Error("failed writing system log", zap.String("type", string(typ)), zap.Error(err))
		return entities.SystemLog{}, err
	}
	return entry, nil
}
