package device

import "time"

type CreateDeviceRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	DeviceName  string `json:"device_name" validate:"required"`
	IMEI        string `json:"imei"`
	PhoneNumber string `json:"phone_number"`
	FaultType   string `json:"fault_type" validate:"required"`

	ScheduledStartDate    *time.Time `json:"scheduled_start_date,omitempty"`
	ExpectedDurationDays  int        `json:"expected_duration_days" validate:"min=0"`
	ExpectedDurationHours int        `json:"expected_duration_hours" validate:"min=0,max=23"`
}

// UpdateDeviceRequest edits descriptive fields only; status and location
// never move through here.
type UpdateDeviceRequest struct {
	OrderNumber *string `json:"order_number,omitempty"`
	DeviceName  *string `json:"device_name,omitempty"`
	IMEI        *string `json:"imei,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	FaultType   *string `json:"fault_type,omitempty"`

	ScheduledStartDate    *time.Time `json:"scheduled_start_date,omitempty"`
	ExpectedDurationDays  *int       `json:"expected_duration_days,omitempty"`
	ExpectedDurationHours *int       `json:"expected_duration_hours,omitempty"`
}

type TransferRequest struct {
	TechnicianID string `json:"technician_id" validate:"required"`
}

type RouteToApprovalRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type AddReportRequest struct {
	Content string `json:"content" validate:"required"`
}

type TransferBackRequest struct {
	Report string `json:"report" validate:"required"`
}

// ApproveRequest resolves an awaiting_approval device. With
// TransferToTechnician set the device goes straight back out to the selected
// technician; otherwise it returns to the operations desk.
type ApproveRequest struct {
	TransferToTechnician bool   `json:"transfer_to_technician"`
	TechnicianID         string `json:"technician_id"`
	Note                 string `json:"note"`
}

type CompleteRequest struct {
	IsRepairable *bool  `json:"is_repairable" validate:"required"`
	FinalReport  string `json:"final_report"`
	RepairReason string `json:"repair_reason"`
}
