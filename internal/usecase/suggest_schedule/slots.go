package suggest_schedule

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

// verifyAgainstFreshAvailability проверяет, что каждое предложенное назначение
// всё ещё помещается в свой слот по свежим данным о доступности
// Возвращает false при любом несоответствии - частичное урезание не допускается
func verifyAgainstFreshAvailability(
	assignments []domain.SuggestedAssignment,
	fresh []domain.SlotAvailability,
) bool {
	available := make(map[string]int, len(fresh))
	for _, slot := range fresh {
		available[freshKey(slot.Date, slot.StartTime)] = slot.AvailableCapacity
	}

	// Несколько подгрупп могут делить один слот - проверяем суммарно
	proposed := make(map[string]int, len(assignments))
	for _, a := range assignments {
		proposed[freshKey(a.Date, a.StartTime)] += a.VehicleCount
	}

	for key, count := range proposed {
		if count > available[key] {
			return false
		}
	}

	return true
}

func freshKey(date time.Time, startTime types.TimeString) string {
	return domain.DateOnly(date).Format(domain.DateFormat) + " " + startTime.String()
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
