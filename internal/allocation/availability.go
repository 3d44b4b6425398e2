package allocation

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// BuildAvailability converts raw per-slot booking aggregates into available-capacity
// figures for the given dates. Every (date, slot time) pair gets an entry: dates and
// slots absent from the aggregates imply full capacity. Availability is clamped to
// [0, ceiling] so an over-booked slot (race artifact) never yields a negative value.
//
// The result is ordered chronologically: slot times ascending within a date,
// dates ascending across days.
func BuildAvailability(
	dates []time.Time,
	slotTimes []types.TimeString,
	aggregates []domain.SlotAggregate,
	ceiling int,
) []domain.SlotAvailability {
	// Индексируем агрегаты по ключу (дата, время)
	booked := make(map[string]int, len(aggregates))
	for _, agg := range aggregates {
		booked[slotKey(agg.BookingDate, agg.StartTime)] += agg.VehicleCount
	}

	result := make([]domain.SlotAvailability, 0, len(dates)*len(slotTimes))

	for _, date := range dates {
		day := domain.DateOnly(date)
		for _, slotTime := range slotTimes {
			available := ceiling - booked[slotKey(day, slotTime)]
			// Перебронированный слот не должен давать отрицательную доступность
			if available < 0 {
				available = 0
			}
			if available > ceiling {
				available = ceiling
			}

			result = append(result, domain.SlotAvailability{
				Date:              day,
				StartTime:         slotTime,
				AvailableCapacity: available,
			})
		}
	}

	return result
}

// TotalCapacity суммирует доступную вместимость по всем слотам
func TotalCapacity(slots []domain.SlotAvailability) int {
	total := 0
	for _, slot := range slots {
		total += slot.AvailableCapacity
	}
	return total
}

// slotKey ключ слота для индексации: дата без времени + время начала
func slotKey(date time.Time, startTime types.TimeString) string {
	return date.Format(domain.DateFormat) + " " + startTime.String()
}
