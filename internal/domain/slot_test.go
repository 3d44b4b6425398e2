package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

func TestVehicleGroupConstraint_Allows(t *testing.T) {
	constraint := &VehicleGroupConstraint{
		VehicleGroup:   1,
		VehicleCount:   3,
		ConstraintDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		ConstraintTime: "08:30",
	}

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)
	prevDay := day.AddDate(0, 0, -1)

	// Тот же день: только строго позже
	assert.False(t, constraint.Allows(day, "08:30"))
	assert.True(t, constraint.Allows(day, "09:30"))

	// Следующий день подходит независимо от времени
	assert.True(t, constraint.Allows(nextDay, "08:30"))

	// Более ранний день не подходит никогда
	assert.False(t, constraint.Allows(prevDay, "14:30"))
}

func TestBooking_IsActive(t *testing.T) {
	activeStatuses := []BookingStatus{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
	}
	for _, status := range activeStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s", status)
	}

	inactiveStatuses := []BookingStatus{
		StatusCancelledByUser, StatusCancelledByStaff, StatusNoShow,
	}
	for _, status := range inactiveStatuses {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s", status)
	}
}

func TestScheduleParams_NextService(t *testing.T) {
	params := &ScheduleParams{
		ServiceSequence: []ServiceType{ServiceWeighing, ServiceInspection, ServiceRegistration},
	}

	next, ok := params.NextService(ServiceWeighing)
	assert.True(t, ok)
	assert.Equal(t, ServiceInspection, next)

	next, ok = params.NextService(ServiceInspection)
	assert.True(t, ok)
	assert.Equal(t, ServiceRegistration, next)

	_, ok = params.NextService(ServiceRegistration)
	assert.False(t, ok)

	_, ok = params.NextService("car-wash")
	assert.False(t, ok)
}

func TestSuggestedAssignment_SameSlot(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	a := &SuggestedAssignment{Date: day, StartTime: types.TimeString("08:30")}

	assert.True(t, a.SameSlot(&SuggestedAssignment{Date: day, StartTime: "08:30"}))
	assert.False(t, a.SameSlot(&SuggestedAssignment{Date: day, StartTime: "09:30"}))
	assert.False(t, a.SameSlot(&SuggestedAssignment{Date: day.AddDate(0, 0, 1), StartTime: "08:30"}))
}
