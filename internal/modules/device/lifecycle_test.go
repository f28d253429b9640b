package device

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

// assertAssignmentInvariant checks that a technician is attached exactly while
// the device sits on the technician's side of the flow.
func assertAssignmentInvariant(t *testing.T, d *domain.Device) {
	t.Helper()

	assigned := d.Status == domain.StatusTransferred || d.Status == domain.StatusInRepair
	if assigned {
		assert.NotEmpty(t, d.TechnicianID)
		assert.Equal(t, domain.LocationTechnician, d.Location)
	} else {
		assert.Empty(t, d.TechnicianID)
	}
}

func TestLifecycle_FullRepairRoundTrip(t *testing.T) {
	devices := new(MockDeviceRepository)
	users := new(MockUserDirectory)

	devices.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, "tech-1").Return(technicianUser(), nil)
	devices.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(devices, users, nil)
	ctx := context.Background()

	d, err := service.Create(ctx, opsActor, CreateDeviceRequest{
		OrderNumber: "ORD-777",
		DeviceName:  "Phone X",
		FaultType:   "water damage",
	})
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	assertAssignmentInvariant(t, d)

	// Every load hands back the same record, so each step observes the
	// previous step's mutation like a real store would.
	devices.On("GetByID", mock.Anything, d.ID).Return(d, nil)

	d, err = service.Transfer(ctx, opsActor, d.ID, "tech-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTransferred, d.Status)
	assertAssignmentInvariant(t, d)

	d, err = service.Receive(ctx, techActor, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInRepair, d.Status)
	assertAssignmentInvariant(t, d)

	d, err = service.AddReport(ctx, techActor, d.ID, "board dried, corrosion cleaned")
	require.NoError(t, err)
	require.Len(t, d.Reports, 1)

	d, err = service.TransferBack(ctx, techActor, d.ID, "repair done, ready for pickup")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReceivedFromTechnician, d.Status)
	assert.Equal(t, domain.LocationOperations, d.Location)
	assertAssignmentInvariant(t, d)
	require.Len(t, d.Reports, 2)
	assert.Equal(t, "board dried, corrosion cleaned", d.Reports[0].Content)
	assert.Equal(t, "repair done, ready for pickup", d.Reports[1].Content)

	yes := true
	d, err = service.Complete(ctx, opsActor, d.ID, CompleteRequest{
		IsRepairable: &yes,
		FinalReport:  "returned to working order",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, d.Status)
	assert.Equal(t, domain.LocationStorage, d.Location)
	assertAssignmentInvariant(t, d)
	assert.True(t, d.UpdatedAt.After(d.CreatedAt) || d.UpdatedAt.Equal(d.CreatedAt))

	// Terminal: nothing moves it again.
	_, err = service.Transfer(ctx, opsActor, d.ID, "tech-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = service.Complete(ctx, opsActor, d.ID, CompleteRequest{IsRepairable: &yes})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// One Save per transition: transfer, receive, report, transfer-back,
	// complete. Create goes through Create, not Save.
	devices.AssertNumberOfCalls(t, "Save", 5)
}
