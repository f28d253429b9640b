package admin

import (
	"context"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

const defaultRecentLimit = 20

type Service struct {
	users   UserRepository
	devices DeviceRepository
}

func NewService(users UserRepository, devices DeviceRepository) *Service {
	return &Service{users: users, devices: devices}
}

// TechnicianStats reports every technician's active workload. Technicians
// with nothing assigned still appear, with an empty device list.
func (s *Service) TechnicianStats(ctx context.Context) ([]TechnicianStats, error) {
	technicians, err := s.users.ListByRole(ctx, domain.RoleTechnician)
	if err != nil {
		return nil, err
	}
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make(map[string][]domain.Device)
	for _, d := range devices {
		if d.TechnicianID == "" {
			continue
		}
		if d.Status == domain.StatusTransferred || d.Status == domain.StatusInRepair {
			active[d.TechnicianID] = append(active[d.TechnicianID], d)
		}
	}

	stats := make([]TechnicianStats, 0, len(technicians))
	for _, tech := range technicians {
		assigned := active[tech.ID]
		if assigned == nil {
			assigned = []domain.Device{}
		}
		stats = append(stats, TechnicianStats{
			TechnicianID:   tech.ID,
			TechnicianName: tech.Name,
			ActiveCount:    len(assigned),
			Devices:        assigned,
		})
	}
	return stats, nil
}

// StatusCounts tallies the whole fleet by status.
func (s *Service) StatusCounts(ctx context.Context) (*StatusCounts, error) {
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := &StatusCounts{
		Total:    len(devices),
		ByStatus: make(map[domain.DeviceStatus]int),
	}
	for _, d := range devices {
		counts.ByStatus[d.Status]++
	}
	return counts, nil
}

// RecentDevices returns the most recently touched devices, newest first.
func (s *Service) RecentDevices(ctx context.Context, limit int) ([]domain.Device, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.devices.ListRecent(ctx, limit)
}
