package admin

import "github.com/muhammedeluveyfi-prog/josck-system/internal/domain"

// TechnicianStats describes one technician's current workload: the devices
// sitting with them right now, either handed over or in repair.
type TechnicianStats struct {
	TechnicianID   string          `json:"technician_id"`
	TechnicianName string          `json:"technician_name"`
	ActiveCount    int             `json:"active_count"`
	Devices        []domain.Device `json:"devices"`
}

type StatusCounts struct {
	Total    int                         `json:"total"`
	ByStatus map[domain.DeviceStatus]int `json:"by_status"`
}
