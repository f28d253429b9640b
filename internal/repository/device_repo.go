package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Reports persist as an ordered JSON array on the device row, mirroring the
// document-store layout. A report has no lifecycle of its own.
type deviceModel struct {
	ID          string  `gorm:"column:id;primaryKey"`
	OrderNumber string  `gorm:"column:order_number;index"`
	DeviceName  string  `gorm:"column:device_name"`
	IMEI        string  `gorm:"column:imei"`
	PhoneNumber *string `gorm:"column:phone_number;index"`
	FaultType   string  `gorm:"column:fault_type"`

	ScheduledStartDate *time.Time `gorm:"column:scheduled_start_date"`

	ExpectedDurationDays  int     `gorm:"column:expected_duration_days"`
	ExpectedDurationHours int     `gorm:"column:expected_duration_hours"`
	LegacyDurationValue   int     `gorm:"column:expected_duration_value"`
	LegacyDurationUnit    *string `gorm:"column:expected_duration_unit"`

	Status   string `gorm:"column:status;index"`
	Location string `gorm:"column:location"`

	TechnicianID   *string `gorm:"column:technician_id;index"`
	TechnicianName *string `gorm:"column:technician_name"`

	Reports []domain.DeviceReport `gorm:"column:reports;serializer:json"`

	FinalReport    *string `gorm:"column:final_report"`
	NeedsApproval  bool    `gorm:"column:needs_approval"`
	ApprovalReason *string `gorm:"column:approval_reason"`
	IsRepairable   *bool   `gorm:"column:is_repairable"`
	RepairReason   *string `gorm:"column:repair_reason"`

	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (deviceModel) TableName() string { return "devices" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainDevice(m deviceModel) *domain.Device {
	reports := m.Reports
	if reports == nil {
		reports = []domain.DeviceReport{}
	}

	return &domain.Device{
		ID:                    m.ID,
		OrderNumber:           m.OrderNumber,
		DeviceName:            m.DeviceName,
		IMEI:                  m.IMEI,
		PhoneNumber:           strOrEmpty(m.PhoneNumber),
		FaultType:             m.FaultType,
		ScheduledStartDate:    m.ScheduledStartDate,
		ExpectedDurationDays:  m.ExpectedDurationDays,
		ExpectedDurationHours: m.ExpectedDurationHours,
		LegacyDurationValue:   m.LegacyDurationValue,
		LegacyDurationUnit:    domain.DurationUnit(strOrEmpty(m.LegacyDurationUnit)),
		Status:                domain.DeviceStatus(m.Status),
		Location:              domain.DeviceLocation(m.Location),
		TechnicianID:          strOrEmpty(m.TechnicianID),
		TechnicianName:        strOrEmpty(m.TechnicianName),
		Reports:               reports,
		FinalReport:           strOrEmpty(m.FinalReport),
		NeedsApproval:         m.NeedsApproval,
		ApprovalReason:        strOrEmpty(m.ApprovalReason),
		IsRepairable:          m.IsRepairable,
		RepairReason:          strOrEmpty(m.RepairReason),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func toDeviceModel(d *domain.Device) deviceModel {
	var unit *string
	if d.LegacyDurationUnit != "" {
		unit = strOrNil(string(d.LegacyDurationUnit))
	}

	return deviceModel{
		ID:                    d.ID,
		OrderNumber:           d.OrderNumber,
		DeviceName:            d.DeviceName,
		IMEI:                  d.IMEI,
		PhoneNumber:           strOrNil(d.PhoneNumber),
		FaultType:             d.FaultType,
		ScheduledStartDate:    d.ScheduledStartDate,
		ExpectedDurationDays:  d.ExpectedDurationDays,
		ExpectedDurationHours: d.ExpectedDurationHours,
		LegacyDurationValue:   d.LegacyDurationValue,
		LegacyDurationUnit:    unit,
		Status:                string(d.Status),
		Location:              string(d.Location),
		TechnicianID:          strOrNil(d.TechnicianID),
		TechnicianName:        strOrNil(d.TechnicianName),
		Reports:               d.Reports,
		FinalReport:           strOrNil(d.FinalReport),
		NeedsApproval:         d.NeedsApproval,
		ApprovalReason:        strOrNil(d.ApprovalReason),
		IsRepairable:          d.IsRepairable,
		RepairReason:          strOrNil(d.RepairReason),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func (r *DeviceRepository) Create(ctx context.Context, d *domain.Device) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Reports == nil {
		d.Reports = []domain.DeviceReport{}
	}

	m := toDeviceModel(d)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*d = *toDomainDevice(m)
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, id string) (*domain.Device, error) {
	var m deviceModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDevice(m), nil
}

// Save writes the whole device row in one statement. Lifecycle transitions
// rely on this being a single write so no reader observes a half-applied
// state change.
func (r *DeviceRepository) Save(ctx context.Context, d *domain.Device) error {
	m := toDeviceModel(d)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *DeviceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&deviceModel{}).Error
}

func (r *DeviceRepository) List(ctx context.Context) ([]domain.Device, error) {
	return r.find(ctx, r.db.WithContext(ctx).Order("created_at DESC"))
}

func (r *DeviceRepository) ListByStatus(ctx context.Context, status domain.DeviceStatus) ([]domain.Device, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC"))
}

func (r *DeviceRepository) ListByTechnician(ctx context.Context, technicianID string) ([]domain.Device, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Order("created_at DESC"))
}

// ListRecent is the admin "recently touched" view, newest update first.
func (r *DeviceRepository) ListRecent(ctx context.Context, limit int) ([]domain.Device, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit))
}

// FindByOrderNumber returns the first match in creation order. Order numbers
// are a lookup key, not a unique one.
func (r *DeviceRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Device, error) {
	var m deviceModel
	tx := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("created_at ASC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDevice(m), nil
}

func (r *DeviceRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Device, error) {
	var m deviceModel
	tx := r.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Order("created_at ASC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDevice(m), nil
}

func (r *DeviceRepository) find(ctx context.Context, tx *gorm.DB) ([]domain.Device, error) {
	var rows []deviceModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Device, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDevice(m))
	}
	return out, nil
}
