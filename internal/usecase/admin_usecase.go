package usecase

//go:generate mockgen -source=admin_usecase.go -destination=../adapter/http/handlers/mocks/mock_admin_usecase.go -package=mocks

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

// IAdminUseCase feeds the operator dashboard. Callers are expected to have
// passed the admin check already.
type IAdminUseCase interface {
	Stats(ctx context.Context) (entities.AdminStats, error)
	Waitlist(ctx context.Context) ([]entities.WaitlistEntry, error)
	RecentLogs(ctx context.Context, limit int) ([]entities.SystemLog, error)
}

type AdminUseCase struct {
	profiles interfaces.IProfileRepository
	waitlist interfaces.IWaitlistRepository
	logs     ISystemLogUseCase
	logger   *zap.Logger
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(profiles interfaces.IProfileRepository, waitlist interfaces.IWaitlistRepository, logs ISystemLogUseCase, logger *zap.Logger) *AdminUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminUseCase{profiles: profiles, waitlist: waitlist, logs: logs, logger: logger.Named("admin.usecase")}
}

// Stats counts both tables concurrently; the first failure cancels the
// other scan.
func (u *AdminUseCase) Stats(ctx context.Context) (entities.AdminStats, error) {
	var stats entities.AdminStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.profiles.Count(ctx)
		stats.Users = n
		return err
	})
	g.Go(func() error {
		n, err := u.waitlist.Count(ctx)
		stats.Waitlist = n
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("failed counting dashboard stats", zap.Error(err))
		return entities.AdminStats{}, err
	}
	return stats, nil
}

func (u *AdminUseCase) Waitlist(ctx context.Context) ([]entities.WaitlistEntry, error) {
	return u.waitlist.List(ctx)
}

func (u *AdminUseCase) RecentLogs(ctx context.Context, limit int) ([]entities.SystemLog, error) {
	return u.logs.Recent(ctx, limit)
}
