package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

func booking(date, startTime string, count int, status domain.BookingStatus) *domain.Booking {
	parsed, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		BookingDate:  parsed,
		StartTime:    types.TimeString(startTime),
		VehicleCount: count,
		Status:       status,
	}
}

func TestDeriveConstraints_Empty(t *testing.T) {
	assert.Empty(t, DeriveConstraints(nil))
	assert.Empty(t, DeriveConstraints([]*domain.Booking{}))
}

func TestDeriveConstraints_OneConstraintPerSlot(t *testing.T) {
	upstream := []*domain.Booking{
		booking("2026-09-14", "08:30", 5, domain.StatusConfirmed),
		booking("2026-09-14", "10:30", 3, domain.StatusConfirmed),
	}

	constraints := DeriveConstraints(upstream)

	require.Len(t, constraints, 2)
	assert.Equal(t, 1, constraints[0].VehicleGroup)
	assert.Equal(t, types.TimeString("08:30"), constraints[0].ConstraintTime)
	assert.Equal(t, 5, constraints[0].VehicleCount)
	assert.Equal(t, 2, constraints[1].VehicleGroup)
	assert.Equal(t, types.TimeString("10:30"), constraints[1].ConstraintTime)
	assert.Equal(t, 3, constraints[1].VehicleCount)
}

func TestDeriveConstraints_MergesSameSlot(t *testing.T) {
	// Два бронирования одного слота дают одно ограничение с суммарным количеством
	upstream := []*domain.Booking{
		booking("2026-09-14", "08:30", 5, domain.StatusConfirmed),
		booking("2026-09-14", "08:30", 2, domain.StatusPending),
	}

	constraints := DeriveConstraints(upstream)

	require.Len(t, constraints, 1)
	assert.Equal(t, 7, constraints[0].VehicleCount)
}

func TestDeriveConstraints_SkipsInactiveBookings(t *testing.T) {
	upstream := []*domain.Booking{
		booking("2026-09-14", "08:30", 5, domain.StatusCancelledByUser),
		booking("2026-09-14", "09:30", 2, domain.StatusNoShow),
		booking("2026-09-14", "10:30", 3, domain.StatusConfirmed),
	}

	constraints := DeriveConstraints(upstream)

	require.Len(t, constraints, 1)
	assert.Equal(t, types.TimeString("10:30"), constraints[0].ConstraintTime)
}

func TestDeriveConstraints_ChronologicalOrdinals(t *testing.T) {
	// Порядковые номера присваиваются хронологически независимо от порядка входа
	upstream := []*domain.Booking{
		booking("2026-09-15", "08:30", 2, domain.StatusConfirmed),
		booking("2026-09-14", "10:30", 3, domain.StatusConfirmed),
		booking("2026-09-14", "08:30", 5, domain.StatusConfirmed),
	}

	constraints := DeriveConstraints(upstream)

	require.Len(t, constraints, 3)
	assert.Equal(t, types.TimeString("08:30"), constraints[0].ConstraintTime)
	assert.Equal(t, 1, constraints[0].VehicleGroup)
	assert.Equal(t, types.TimeString("10:30"), constraints[1].ConstraintTime)
	assert.Equal(t, 2, constraints[1].VehicleGroup)
	assert.Equal(t, "2026-09-15", constraints[2].ConstraintDate.Format(domain.DateFormat))
	assert.Equal(t, 3, constraints[2].VehicleGroup)
}

func TestTotalConstrainedVehicles(t *testing.T) {
	constraints := []domain.VehicleGroupConstraint{
		{VehicleCount: 3},
		{VehicleCount: 4},
	}

	assert.Equal(t, 7, TotalConstrainedVehicles(constraints))
	assert.Equal(t, 0, TotalConstrainedVehicles(nil))
}
