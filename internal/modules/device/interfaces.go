package device

import (
	"context"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

// DeviceRepository is the persistence contract the engine depends on. Save
// must write the whole device in one operation; the engine never issues two
// partial writes for a single transition.
type DeviceRepository interface {
	Create(ctx context.Context, d *domain.Device) error
	GetByID(ctx context.Context, id string) (*domain.Device, error)
	Save(ctx context.Context, d *domain.Device) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Device, error)
	ListByStatus(ctx context.Context, status domain.DeviceStatus) ([]domain.Device, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]domain.Device, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Device, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Device, error)
}

// UserDirectory resolves technician ids during transfers.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// EventPublisher receives a notification after each successful write so
// connected dashboards can refresh without polling. Optional; may be nil.
type EventPublisher interface {
	DeviceChanged(action string, d *domain.Device)
	DeviceDeleted(id string)
}
