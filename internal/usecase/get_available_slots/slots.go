package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// businessDates возвращает рабочие даты из диапазона [start, start+days-1]
// Нерабочие дни недели и заблокированные администратором даты исключаются
func businessDates(start time.Time, days int, params *domain.ScheduleParams, blocked []time.Time) []time.Time {
	blockedSet := make(map[string]struct{}, len(blocked))
	for _, d := range blocked {
		blockedSet[d.Format(domain.DateFormat)] = struct{}{}
	}

	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		date := domain.DateOnly(start).AddDate(0, 0, i)
		if !params.IsWorkDay(date) {
			continue
		}
		if _, ok := blockedSet[date.Format(domain.DateFormat)]; ok {
			continue
		}
		dates = append(dates, date)
	}

	return dates
}

// dropPastSlots исключает слоты сегодняшнего дня, время которых уже прошло
// Слоты будущих дат возвращаются без изменений
func dropPastSlots(slots []domain.SlotAvailability, now time.Time) []domain.SlotAvailability {
	today := domain.DateOnly(now)
	currentTime := types.NewTimeString(now)

	result := make([]domain.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		if domain.DateOnly(slot.Date).Equal(today) && !slot.StartTime.IsAfter(currentTime) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// groupByDate раскладывает плоский список доступности по дням
// Порядок дней и слотов внутри дня сохраняется
func groupByDate(slots []domain.SlotAvailability) []Day {
	days := make([]Day, 0)

	for _, slot := range slots {
		date := domain.DateOnly(slot.Date)
		if len(days) == 0 || !days[len(days)-1].Date.Equal(date) {
			days = append(days, Day{Date: date, Slots: make([]Slot, 0, 8)})
		}
		days[len(days)-1].Slots = append(days[len(days)-1].Slots, Slot{
			StartTime:         slot.StartTime,
			AvailableCapacity: slot.AvailableCapacity,
		})
	}

	return days
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
