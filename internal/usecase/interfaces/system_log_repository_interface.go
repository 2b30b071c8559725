package interfaces

//go:generate mockgen -source=system_log_repository_interface.go -destination=mocks/mock_system_log_repository_interface.go -package=mock_interfaces

import (
	"context"

	"noirlabs_billing/internal/domain/entities"
)

type ISystemLogRepository interface {
	Create(ctx context.Context, l entities.SystemLog) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]entities.SystemLog, error)
}
