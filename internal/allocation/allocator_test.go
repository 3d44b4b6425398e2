package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

func day(offset int) time.Time {
	return time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func slot(date time.Time, startTime string, capacity int) domain.SlotAvailability {
	return domain.SlotAvailability{
		Date:              domain.DateOnly(date),
		StartTime:         types.TimeString(startTime),
		AvailableCapacity: capacity,
	}
}

func TestDistribute_SingleSlotFits(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 12),
		slot(day(0), "09:30", 12),
	}

	result, err := Distribute(5, slots, nil)
	require.NoError(t, err)

	assert.True(t, result.Complete())
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, types.TimeString("08:30"), result.Assignments[0].StartTime)
	assert.Equal(t, 5, result.Assignments[0].VehicleCount)
	assert.Equal(t, 0, result.Assignments[0].VehicleGroup)
}

func TestDistribute_SplitsAcrossSlots(t *testing.T) {
	// Слот 08:30 занят на 10 из 12, запрос на 5 машин переливается в 09:30
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 2),
		slot(day(0), "09:30", 12),
	}

	result, err := Distribute(5, slots, nil)
	require.NoError(t, err)

	assert.True(t, result.Complete())
	require.Len(t, result.Assignments, 2)
	assert.Equal(t, types.TimeString("08:30"), result.Assignments[0].StartTime)
	assert.Equal(t, 2, result.Assignments[0].VehicleCount)
	assert.Equal(t, types.TimeString("09:30"), result.Assignments[1].StartTime)
	assert.Equal(t, 3, result.Assignments[1].VehicleCount)
}

func TestDistribute_NoGratuitousSplit(t *testing.T) {
	// Запрос помещается в первый слот целиком - дробления быть не должно
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 7),
		slot(day(0), "09:30", 12),
		slot(day(0), "10:30", 12),
	}

	result, err := Distribute(7, slots, nil)
	require.NoError(t, err)

	assert.True(t, result.Complete())
	assert.Len(t, result.Assignments, 1)
}

func TestDistribute_InfeasibleWhenAllFull(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 0),
		slot(day(1), "08:30", 0),
	}

	result, err := Distribute(5, slots, nil)
	require.NoError(t, err)

	assert.False(t, result.Complete())
	assert.Equal(t, 5, result.Remaining)
	assert.Empty(t, result.Assignments)
}

func TestDistribute_PartialPlacementReportsRemaining(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 3),
	}

	result, err := Distribute(5, slots, nil)
	require.NoError(t, err)

	assert.False(t, result.Complete())
	assert.Equal(t, 2, result.Remaining)
	assert.Equal(t, 3, result.Placed())
}

func TestDistribute_ConstraintSkipsEarlierSlots(t *testing.T) {
	// Подгруппа закончила взвешивание в 08:30 дня D: техосмотр не раньше
	// 09:30 того же дня или любого слота следующего дня
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 12),
		slot(day(0), "09:30", 12),
	}
	constraints := []domain.VehicleGroupConstraint{
		{
			VehicleGroup:   1,
			VehicleCount:   3,
			ConstraintDate: domain.DateOnly(day(0)),
			ConstraintTime: types.TimeString("08:30"),
		},
	}

	result, err := Distribute(3, slots, constraints)
	require.NoError(t, err)

	assert.True(t, result.Complete())
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, types.TimeString("09:30"), result.Assignments[0].StartTime)
	assert.Equal(t, 1, result.Assignments[0].VehicleGroup)
}

func TestDistribute_ConstraintAllowsNextDay(t *testing.T) {
	// Тот же день занят, следующий день подходит целиком независимо от времени
	slots := []domain.SlotAvailability{
		slot(day(0), "09:30", 0),
		slot(day(1), "08:30", 12),
	}
	constraints := []domain.VehicleGroupConstraint{
		{
			VehicleGroup:   1,
			VehicleCount:   4,
			ConstraintDate: domain.DateOnly(day(0)),
			ConstraintTime: types.TimeString("08:30"),
		},
	}

	result, err := Distribute(4, slots, constraints)
	require.NoError(t, err)

	assert.True(t, result.Complete())
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, domain.DateOnly(day(1)), result.Assignments[0].Date)
	assert.Equal(t, types.TimeString("08:30"), result.Assignments[0].StartTime)
}

func TestDistribute_UnconstrainedVehiclesTakeEarliestSlots(t *testing.T) {
	// 2 машины без ограничений идут в 08:30, подгруппа с ограничением - позже
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 12),
		slot(day(0), "09:30", 12),
	}
	constraints := []domain.VehicleGroupConstraint{
		{
			VehicleGroup:   1,
			VehicleCount:   3,
			ConstraintDate: domain.DateOnly(day(0)),
			ConstraintTime: types.TimeString("08:30"),
		},
	}

	result, err := Distribute(5, slots, constraints)
	require.NoError(t, err)

	assert.True(t, result.Complete())
	require.Len(t, result.Assignments, 2)
	assert.Equal(t, types.TimeString("08:30"), result.Assignments[0].StartTime)
	assert.Equal(t, 2, result.Assignments[0].VehicleCount)
	assert.Equal(t, 0, result.Assignments[0].VehicleGroup)
	assert.Equal(t, types.TimeString("09:30"), result.Assignments[1].StartTime)
	assert.Equal(t, 3, result.Assignments[1].VehicleCount)
	assert.Equal(t, 1, result.Assignments[1].VehicleGroup)
}

func TestDistribute_SharedCapacityAcrossGroups(t *testing.T) {
	// Две подгруппы конкурируют за один слот: вместимость расходуется совместно
	slots := []domain.SlotAvailability{
		slot(day(0), "10:30", 5),
		slot(day(0), "11:30", 5),
	}
	constraints := []domain.VehicleGroupConstraint{
		{
			VehicleGroup:   1,
			VehicleCount:   3,
			ConstraintDate: domain.DateOnly(day(0)),
			ConstraintTime: types.TimeString("08:30"),
		},
		{
			VehicleGroup:   2,
			VehicleCount:   4,
			ConstraintDate: domain.DateOnly(day(0)),
			ConstraintTime: types.TimeString("09:30"),
		},
	}

	result, err := Distribute(7, slots, constraints)
	require.NoError(t, err)

	assert.True(t, result.Complete())
	require.Len(t, result.Assignments, 3)

	// Группа 1 занимает 3 места в 10:30, группе 2 достаются оставшиеся 2 + 2 в 11:30
	assert.Equal(t, 3, result.Assignments[0].VehicleCount)
	assert.Equal(t, 1, result.Assignments[0].VehicleGroup)
	assert.Equal(t, 2, result.Assignments[1].VehicleCount)
	assert.Equal(t, 2, result.Assignments[1].VehicleGroup)
	assert.Equal(t, types.TimeString("11:30"), result.Assignments[2].StartTime)
	assert.Equal(t, 2, result.Assignments[2].VehicleCount)
	assert.Equal(t, 2, result.Assignments[2].VehicleGroup)
}

func TestDistribute_Deterministic(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(1), "08:30", 3),
		slot(day(0), "09:30", 4),
		slot(day(0), "08:30", 2),
	}

	first, err := Distribute(8, slots, nil)
	require.NoError(t, err)
	second, err := Distribute(8, slots, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDistribute_DoesNotMutateInput(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 5),
	}

	_, err := Distribute(3, slots, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, slots[0].AvailableCapacity)
}

func TestDistribute_Lossless(t *testing.T) {
	// Сумма размещённых и неразмещённых машин всегда равна запросу
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 4),
		slot(day(0), "09:30", 3),
		slot(day(1), "08:30", 2),
	}

	for _, count := range []int{1, 5, 9, 15} {
		result, err := Distribute(count, slots, nil)
		require.NoError(t, err)
		assert.Equal(t, count, result.Placed()+result.Remaining, "request of %d vehicles", count)
	}
}

func TestDistribute_InvalidVehicleCount(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 12),
	}

	_, err := Distribute(0, slots, nil)
	assert.ErrorIs(t, err, ErrInvalidVehicleCount)

	_, err = Distribute(-3, slots, nil)
	assert.ErrorIs(t, err, ErrInvalidVehicleCount)
}

func TestDistribute_ConstraintsExceedCount(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(0), "09:30", 12),
	}
	constraints := []domain.VehicleGroupConstraint{
		{
			VehicleGroup:   1,
			VehicleCount:   7,
			ConstraintDate: domain.DateOnly(day(0)),
			ConstraintTime: types.TimeString("08:30"),
		},
	}

	_, err := Distribute(5, slots, constraints)
	assert.ErrorIs(t, err, ErrConstraintsExceedCount)
}
