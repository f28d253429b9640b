package admin

import (
	"context"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

type UserRepository interface {
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type DeviceRepository interface {
	List(ctx context.Context) ([]domain.Device, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Device, error)
}
