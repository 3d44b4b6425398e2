package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

var testSlotTimes = []types.TimeString{"08:30", "09:30", "10:30"}

func TestBuildAvailability_EmptyAggregatesMeanFullCapacity(t *testing.T) {
	dates := []time.Time{day(0), day(1)}

	result := BuildAvailability(dates, testSlotTimes, nil, 12)

	require.Len(t, result, 6)
	for _, slot := range result {
		assert.Equal(t, 12, slot.AvailableCapacity)
	}
}

func TestBuildAvailability_SubtractsBookedCounts(t *testing.T) {
	dates := []time.Time{day(0)}
	aggregates := []domain.SlotAggregate{
		{BookingDate: day(0), StartTime: "08:30", VehicleCount: 10},
		{BookingDate: day(0), StartTime: "09:30", VehicleCount: 4},
	}

	result := BuildAvailability(dates, testSlotTimes, aggregates, 12)

	require.Len(t, result, 3)
	assert.Equal(t, 2, result[0].AvailableCapacity)
	assert.Equal(t, 8, result[1].AvailableCapacity)
	assert.Equal(t, 12, result[2].AvailableCapacity)
}

func TestBuildAvailability_ClampsOverbookedSlotToZero(t *testing.T) {
	dates := []time.Time{day(0)}
	aggregates := []domain.SlotAggregate{
		{BookingDate: day(0), StartTime: "08:30", VehicleCount: 15},
	}

	result := BuildAvailability(dates, testSlotTimes, aggregates, 12)

	assert.Equal(t, 0, result[0].AvailableCapacity)
}

func TestBuildAvailability_ChronologicalOrder(t *testing.T) {
	dates := []time.Time{day(0), day(1)}

	result := BuildAvailability(dates, testSlotTimes, nil, 5)

	require.Len(t, result, 6)
	assert.Equal(t, domain.DateOnly(day(0)), result[0].Date)
	assert.Equal(t, types.TimeString("08:30"), result[0].StartTime)
	assert.Equal(t, types.TimeString("10:30"), result[2].StartTime)
	assert.Equal(t, domain.DateOnly(day(1)), result[3].Date)
	assert.Equal(t, types.TimeString("08:30"), result[3].StartTime)
}

func TestBuildAvailability_MergesDuplicateAggregates(t *testing.T) {
	// Два агрегата одного слота суммируются
	dates := []time.Time{day(0)}
	aggregates := []domain.SlotAggregate{
		{BookingDate: day(0), StartTime: "08:30", VehicleCount: 3},
		{BookingDate: day(0), StartTime: "08:30", VehicleCount: 4},
	}

	result := BuildAvailability(dates, testSlotTimes, aggregates, 12)

	assert.Equal(t, 5, result[0].AvailableCapacity)
}

func TestTotalCapacity(t *testing.T) {
	slots := []domain.SlotAvailability{
		slot(day(0), "08:30", 2),
		slot(day(0), "09:30", 0),
		slot(day(1), "08:30", 7),
	}

	assert.Equal(t, 9, TotalCapacity(slots))
	assert.Equal(t, 0, TotalCapacity(nil))
}
