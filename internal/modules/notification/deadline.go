package notification

import (
	"context"
	"time"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

// DeviceLister is the read-only slice of the device store this module needs.
type DeviceLister interface {
	List(ctx context.Context) ([]domain.Device, error)
}

// TimeRemaining is the countdown to a device's repair deadline. The
// components always describe the magnitude of the distance; IsExpired tells
// which side of the deadline we are on.
type TimeRemaining struct {
	IsExpired bool `json:"is_expired"`
	Days      int  `json:"days"`
	Hours     int  `json:"hours"`
	Minutes   int  `json:"minutes"`
	Seconds   int  `json:"seconds"`

	TotalHours float64 `json:"total_hours"`
}

// Deadline pairs a device with its countdown for the notification feed.
type Deadline struct {
	Device    domain.Device `json:"device"`
	Remaining TimeRemaining `json:"remaining"`
}

type Service struct {
	devices DeviceLister
}

func NewService(devices DeviceLister) *Service {
	return &Service{devices: devices}
}

// Deadline computes the deadline for a single device. ok is false when the
// device carries no schedule, no duration, or already completed.
func (s *Service) Deadline(d *domain.Device, now time.Time) (TimeRemaining, bool) {
	if d.IsTerminal() || d.ScheduledStartDate == nil {
		return TimeRemaining{}, false
	}
	days, hours, ok := d.Duration()
	if !ok {
		return TimeRemaining{}, false
	}

	end := d.ScheduledStartDate.AddDate(0, 0, days).Add(time.Duration(hours) * time.Hour)
	diff := end.Sub(now)

	remaining := TimeRemaining{
		IsExpired:  diff < 0,
		TotalHours: diff.Hours(),
	}
	if diff < 0 {
		diff = -diff
	}
	remaining.Days = int(diff / (24 * time.Hour))
	diff -= time.Duration(remaining.Days) * 24 * time.Hour
	remaining.Hours = int(diff / time.Hour)
	diff -= time.Duration(remaining.Hours) * time.Hour
	remaining.Minutes = int(diff / time.Minute)
	diff -= time.Duration(remaining.Minutes) * time.Minute
	remaining.Seconds = int(diff / time.Second)

	return remaining, true
}

// Deadlines returns the countdown feed: every device with a schedule and a
// duration, completed devices excluded, expired entries first.
func (s *Service) Deadlines(ctx context.Context, now time.Time) ([]Deadline, error) {
	devices, err := s.devices.List(ctx)
	if err != nil {
		return nil, err
	}

	var expired, pending []Deadline
	for i := range devices {
		remaining, ok := s.Deadline(&devices[i], now)
		if !ok {
			continue
		}
		entry := Deadline{Device: devices[i], Remaining: remaining}
		if remaining.IsExpired {
			expired = append(expired, entry)
		} else {
			pending = append(pending, entry)
		}
	}
	return append(expired, pending...), nil
}
