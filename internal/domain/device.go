package domain

import "time"

type DeviceStatus string

const (
	StatusNew                    DeviceStatus = "new"
	StatusInRepair               DeviceStatus = "in_repair"
	StatusTransferred            DeviceStatus = "transferred"
	StatusAwaitingApproval       DeviceStatus = "awaiting_approval"
	StatusCompleted              DeviceStatus = "completed"
	StatusReceivedFromTechnician DeviceStatus = "received_from_technician"
)

func ValidDeviceStatus(s DeviceStatus) bool {
	switch s {
	case StatusNew, StatusInRepair, StatusTransferred,
		StatusAwaitingApproval, StatusCompleted, StatusReceivedFromTechnician:
		return true
	}
	return false
}

type DeviceLocation string

const (
	LocationOperations DeviceLocation = "operations"
	LocationTechnician DeviceLocation = "technician"
	LocationStorage    DeviceLocation = "storage"
	LocationCustomer   DeviceLocation = "customer"
)

// DurationUnit is the legacy duration encoding still present on old records.
type DurationUnit string

const (
	DurationUnitDays  DurationUnit = "days"
	DurationUnitHours DurationUnit = "hours"
)

type Device struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	DeviceName  string `json:"device_name"`
	IMEI        string `json:"imei"`
	PhoneNumber string `json:"phone_number,omitempty"`
	FaultType   string `json:"fault_type"`

	ScheduledStartDate *time.Time `json:"scheduled_start_date,omitempty"`

	// Canonical duration encoding. Legacy fields survive only so that
	// old records stay readable; Duration() normalizes them.
	ExpectedDurationDays  int          `json:"expected_duration_days"`
	ExpectedDurationHours int          `json:"expected_duration_hours"`
	LegacyDurationValue   int          `json:"expected_duration_value,omitempty"`
	LegacyDurationUnit    DurationUnit `json:"expected_duration_unit,omitempty"`

	Status   DeviceStatus   `json:"status"`
	Location DeviceLocation `json:"location"`

	TechnicianID   string `json:"technician_id,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`

	Reports []DeviceReport `json:"reports"`

	FinalReport    string `json:"final_report,omitempty"`
	NeedsApproval  bool   `json:"needs_approval"`
	ApprovalReason string `json:"approval_reason,omitempty"`
	IsRepairable   *bool  `json:"is_repairable,omitempty"`
	RepairReason   string `json:"repair_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeviceReport struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"device_id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorRole Role      `json:"author_role"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsTerminal reports whether the device reached its final state.
func (d *Device) IsTerminal() bool {
	return d.Status == StatusCompleted
}

// Duration returns the canonical expected repair duration in whole days and
// hours. Legacy value+unit records are normalized: a "days" value becomes
// days+hours via total hours, an "hours" value maps straight to hours.
// ok is false when no duration was ever recorded.
func (d *Device) Duration() (days, hours int, ok bool) {
	if d.ExpectedDurationDays > 0 || d.ExpectedDurationHours > 0 {
		return d.ExpectedDurationDays, d.ExpectedDurationHours, true
	}
	if d.LegacyDurationValue > 0 {
		switch d.LegacyDurationUnit {
		case DurationUnitDays:
			total := d.LegacyDurationValue * 24
			return total / 24, total % 24, true
		case DurationUnitHours:
			return 0, d.LegacyDurationValue, true
		}
	}
	return 0, 0, false
}
