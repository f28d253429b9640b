package device

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

// Service is the lifecycle engine. It owns every legal transition over
// (status, location, technician) and the append-only report ledger. Role
// checks run before state checks so a permission failure never leaks state
// information, and every transition ends in exactly one repository write.
type Service struct {
	devices DeviceRepository
	users   UserDirectory
	events  EventPublisher
}

func NewService(devices DeviceRepository, users UserDirectory, events EventPublisher) *Service {
	return &Service{
		devices: devices,
		users:   users,
		events:  events,
	}
}

// -------------------- write path --------------------

// Create registers an incoming device at the operations desk.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateDeviceRequest) (*domain.Device, error) {
	if actor.Role != domain.RoleOperations {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.OrderNumber) == "" || strings.TrimSpace(req.DeviceName) == "" {
		return nil, ErrValidation
	}
	if req.ExpectedDurationDays < 0 || req.ExpectedDurationHours < 0 {
		return nil, ErrValidation
	}

	d := &domain.Device{
		OrderNumber:           strings.TrimSpace(req.OrderNumber),
		DeviceName:            strings.TrimSpace(req.DeviceName),
		IMEI:                  req.IMEI,
		PhoneNumber:           req.PhoneNumber,
		FaultType:             req.FaultType,
		ScheduledStartDate:    req.ScheduledStartDate,
		ExpectedDurationDays:  req.ExpectedDurationDays,
		ExpectedDurationHours: req.ExpectedDurationHours,
		Status:                domain.StatusNew,
		Location:              domain.LocationOperations,
		Reports:               []domain.DeviceReport{},
	}

	if err := s.devices.Create(ctx, d); err != nil {
		return nil, err
	}
	s.publish("created", d)
	return d, nil
}

// Transfer hands a device at the operations desk to a technician.
func (s *Service) Transfer(ctx context.Context, actor domain.Actor, deviceID, technicianID string) (*domain.Device, error) {
	if actor.Role != domain.RoleOperations {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.StatusNew && d.Status != domain.StatusReceivedFromTechnician {
		return nil, ErrInvalidTransition
	}

	tech, err := s.technician(ctx, technicianID)
	if err != nil {
		return nil, err
	}

	d.Status = domain.StatusTransferred
	d.Location = domain.LocationTechnician
	d.TechnicianID = tech.ID
	d.TechnicianName = tech.Name
	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("transferred", d)
	return d, nil
}

// RouteToApproval parks a device until operations decides what to do with it.
func (s *Service) RouteToApproval(ctx context.Context, actor domain.Actor, deviceID, reason string) (*domain.Device, error) {
	if actor.Role != domain.RoleOperations {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.StatusNew && d.Status != domain.StatusReceivedFromTechnician {
		return nil, ErrInvalidTransition
	}
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	d.Status = domain.StatusAwaitingApproval
	d.NeedsApproval = true
	d.ApprovalReason = strings.TrimSpace(reason)
	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("routed_to_approval", d)
	return d, nil
}

// Receive acknowledges a transferred device. Only the assigned technician may
// take it into repair.
func (s *Service) Receive(ctx context.Context, actor domain.Actor, deviceID string) (*domain.Device, error) {
	if actor.Role != domain.RoleTechnician {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.StatusTransferred || d.TechnicianID != actor.ID {
		return nil, ErrInvalidTransition
	}

	d.Status = domain.StatusInRepair
	d.Location = domain.LocationTechnician
	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("received", d)
	return d, nil
}

// AddReport appends a ledger entry. Any authenticated role may write one, on
// any device, and entries are never edited or removed.
func (s *Service) AddReport(ctx context.Context, actor domain.Actor, deviceID, content string) (*domain.Device, error) {
	if !domain.ValidRole(actor.Role) {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}

	s.appendReport(d, actor, content)
	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("report_added", d)
	return d, nil
}

// TransferBack returns a device from repair to the operations desk. The
// technician's handoff note is mandatory and lands in the ledger before the
// state flips, all in the same write.
func (s *Service) TransferBack(ctx context.Context, actor domain.Actor, deviceID, report string) (*domain.Device, error) {
	if actor.Role != domain.RoleTechnician {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.StatusInRepair || d.TechnicianID != actor.ID {
		return nil, ErrInvalidTransition
	}
	if strings.TrimSpace(report) == "" {
		return nil, ErrValidation
	}

	s.appendReport(d, actor, report)
	d.Status = domain.StatusReceivedFromTechnician
	d.Location = domain.LocationOperations
	d.TechnicianID = ""
	d.TechnicianName = ""
	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("transferred_back", d)
	return d, nil
}

// Approve resolves an awaiting_approval device: either straight back out to
// a technician, or back to the operations desk. Approving directly into
// completed is deliberately not offered.
func (s *Service) Approve(ctx context.Context, actor domain.Actor, deviceID string, req ApproveRequest) (*domain.Device, error) {
	if actor.Role != domain.RoleOperations {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.Status != domain.StatusAwaitingApproval {
		return nil, ErrInvalidTransition
	}

	if req.TransferToTechnician {
		tech, err := s.technician(ctx, req.TechnicianID)
		if err != nil {
			return nil, err
		}
		d.Status = domain.StatusTransferred
		d.Location = domain.LocationTechnician
		d.TechnicianID = tech.ID
		d.TechnicianName = tech.Name
	} else {
		d.Status = domain.StatusReceivedFromTechnician
		d.Location = domain.LocationOperations
		d.TechnicianID = ""
		d.TechnicianName = ""
	}

	if strings.TrimSpace(req.Note) != "" {
		s.appendReport(d, actor, req.Note)
	}

	d.NeedsApproval = false
	d.ApprovalReason = ""
	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("approved", d)
	return d, nil
}

// Complete closes a device out to storage. Terminal: nothing moves a
// completed device again.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, deviceID string, req CompleteRequest) (*domain.Device, error) {
	if actor.Role != domain.RoleOperations {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	switch d.Status {
	case domain.StatusNew, domain.StatusTransferred,
		domain.StatusReceivedFromTechnician, domain.StatusInRepair:
		// legal
	default:
		return nil, ErrInvalidTransition
	}

	if req.IsRepairable == nil {
		return nil, ErrValidation
	}
	if !*req.IsRepairable && strings.TrimSpace(req.RepairReason) == "" {
		return nil, ErrValidation
	}

	d.Status = domain.StatusCompleted
	d.Location = domain.LocationStorage
	d.IsRepairable = req.IsRepairable
	d.FinalReport = strings.TrimSpace(req.FinalReport)
	if *req.IsRepairable {
		d.RepairReason = ""
	} else {
		d.RepairReason = strings.TrimSpace(req.RepairReason)
	}
	d.TechnicianID = ""
	d.TechnicianName = ""
	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("completed", d)
	return d, nil
}

// Update edits descriptive fields on any non-completed device. Setting a new
// duration drops the legacy encoding for good.
func (s *Service) Update(ctx context.Context, actor domain.Actor, deviceID string, req UpdateDeviceRequest) (*domain.Device, error) {
	if actor.Role != domain.RoleOperations {
		return nil, ErrForbidden
	}

	d, err := s.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	if req.OrderNumber != nil {
		if strings.TrimSpace(*req.OrderNumber) == "" {
			return nil, ErrValidation
		}
		d.OrderNumber = strings.TrimSpace(*req.OrderNumber)
	}
	if req.DeviceName != nil {
		if strings.TrimSpace(*req.DeviceName) == "" {
			return nil, ErrValidation
		}
		d.DeviceName = strings.TrimSpace(*req.DeviceName)
	}
	if req.IMEI != nil {
		d.IMEI = *req.IMEI
	}
	if req.PhoneNumber != nil {
		d.PhoneNumber = *req.PhoneNumber
	}
	if req.FaultType != nil {
		d.FaultType = *req.FaultType
	}
	if req.ScheduledStartDate != nil {
		d.ScheduledStartDate = req.ScheduledStartDate
	}
	if req.ExpectedDurationDays != nil || req.ExpectedDurationHours != nil {
		if req.ExpectedDurationDays != nil {
			if *req.ExpectedDurationDays < 0 {
				return nil, ErrValidation
			}
			d.ExpectedDurationDays = *req.ExpectedDurationDays
		}
		if req.ExpectedDurationHours != nil {
			if *req.ExpectedDurationHours < 0 {
				return nil, ErrValidation
			}
			d.ExpectedDurationHours = *req.ExpectedDurationHours
		}
		d.LegacyDurationValue = 0
		d.LegacyDurationUnit = ""
	}

	d.UpdatedAt = time.Now().UTC()

	if err := s.devices.Save(ctx, d); err != nil {
		return nil, err
	}
	s.publish("updated", d)
	return d, nil
}

// Delete removes a device record for good. No soft delete exists.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, deviceID string) error {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleOperations {
		return ErrForbidden
	}

	if _, err := s.load(ctx, deviceID); err != nil {
		return err
	}
	if err := s.devices.Delete(ctx, deviceID); err != nil {
		return err
	}
	if s.events != nil {
		s.events.DeviceDeleted(deviceID)
	}
	return nil
}

// -------------------- read path --------------------

func (s *Service) List(ctx context.Context) ([]domain.Device, error) {
	return s.devices.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Device, error) {
	return s.load(ctx, id)
}

func (s *Service) ListByStatus(ctx context.Context, status domain.DeviceStatus) ([]domain.Device, error) {
	if !domain.ValidDeviceStatus(status) {
		return nil, ErrValidation
	}
	return s.devices.ListByStatus(ctx, status)
}

func (s *Service) ListByTechnician(ctx context.Context, technicianID string) ([]domain.Device, error) {
	return s.devices.ListByTechnician(ctx, technicianID)
}

// FindByOrderNumber returns the first match; order numbers may repeat.
func (s *Service) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Device, error) {
	d, err := s.devices.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Device, error) {
	d, err := s.devices.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// -------------------- helpers --------------------

func (s *Service) load(ctx context.Context, id string) (*domain.Device, error) {
	d, err := s.devices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// technician resolves and vets the target of a transfer.
func (s *Service) technician(ctx context.Context, id string) (*domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrValidation
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}
	if u.Role != domain.RoleTechnician {
		return nil, ErrValidation
	}
	return u, nil
}

// appendReport adds a ledger entry in memory; the caller persists it with
// the rest of the mutation in one Save.
func (s *Service) appendReport(d *domain.Device, actor domain.Actor, content string) {
	d.Reports = append(d.Reports, domain.DeviceReport{
		ID:         uuid.NewString(),
		DeviceID:   d.ID,
		Content:    strings.TrimSpace(content),
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		AuthorRole: actor.Role,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *Service) publish(action string, d *domain.Device) {
	if s.events != nil {
		s.events.DeviceChanged(action, d)
	}
}
