package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

type MockDeviceLister struct {
	mock.Mock
}

func (m *MockDeviceLister) List(ctx context.Context) ([]domain.Device, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Device), args.Error(1)
}

func scheduled(start time.Time, days, hours int) *domain.Device {
	return &domain.Device{
		ID:                    "d1",
		Status:                domain.StatusInRepair,
		ScheduledStartDate:    &start,
		ExpectedDurationDays:  days,
		ExpectedDurationHours: hours,
	}
}

func TestDeadline_NotYetExpired(t *testing.T) {
	service := NewService(nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := scheduled(start, 1, 2) // deadline 2024-01-02T02:00Z
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	remaining, ok := service.Deadline(d, now)

	require.True(t, ok)
	assert.False(t, remaining.IsExpired)
	assert.Equal(t, 0, remaining.Days)
	assert.Equal(t, 16, remaining.Hours)
	assert.Equal(t, 0, remaining.Minutes)
	assert.Equal(t, 0, remaining.Seconds)
	assert.InDelta(t, 16.0, remaining.TotalHours, 0.001)
}

func TestDeadline_Expired(t *testing.T) {
	service := NewService(nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := scheduled(start, 1, 2) // deadline 2024-01-02T02:00Z
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	remaining, ok := service.Deadline(d, now)

	require.True(t, ok)
	assert.True(t, remaining.IsExpired)
	assert.Equal(t, 0, remaining.Days)
	assert.Equal(t, 22, remaining.Hours)
	assert.InDelta(t, -22.0, remaining.TotalHours, 0.001)
}

func TestDeadline_LegacyDaysEncoding(t *testing.T) {
	service := NewService(nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := &domain.Device{
		Status:              domain.StatusNew,
		ScheduledStartDate:  &start,
		LegacyDurationValue: 2,
		LegacyDurationUnit:  domain.DurationUnitDays,
	}
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	remaining, ok := service.Deadline(d, now)

	require.True(t, ok)
	assert.False(t, remaining.IsExpired)
	assert.Equal(t, 1, remaining.Days)
	assert.Equal(t, 0, remaining.Hours)
}

func TestDeadline_SkipsUnschedulable(t *testing.T) {
	service := NewService(nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start

	completed := scheduled(start, 1, 0)
	completed.Status = domain.StatusCompleted
	_, ok := service.Deadline(completed, now)
	assert.False(t, ok)

	noSchedule := scheduled(start, 1, 0)
	noSchedule.ScheduledStartDate = nil
	_, ok = service.Deadline(noSchedule, now)
	assert.False(t, ok)

	noDuration := scheduled(start, 0, 0)
	_, ok = service.Deadline(noDuration, now)
	assert.False(t, ok)
}

func TestDeadlines_ExpiredFirst(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	onTime := *scheduled(start, 3, 0)
	onTime.ID = "on-time"
	late := *scheduled(start, 0, 12)
	late.ID = "late"
	skipped := *scheduled(start, 1, 0)
	skipped.ID = "skipped"
	skipped.Status = domain.StatusCompleted

	devices := new(MockDeviceLister)
	devices.On("List", mock.Anything).Return([]domain.Device{onTime, late, skipped}, nil)

	service := NewService(devices)

	feed, err := service.Deadlines(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "late", feed[0].Device.ID)
	assert.True(t, feed[0].Remaining.IsExpired)
	assert.Equal(t, "on-time", feed[1].Device.ID)
	assert.False(t, feed[1].Remaining.IsExpired)
}
