package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotTime проверяет, что время входит в дневную сетку слотов станции
func validateSlotTime(startTime types.TimeString, params *domain.ScheduleParams) error {
	for _, slot := range params.SlotTimes {
		if slot == startTime {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not in the daily slot grid", ErrInvalidTimeSlot, startTime)
}

// validateBookingMoment проверяет, что слот ещё не начался
func validateBookingMoment(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	if !isSameDay(date, now) {
		return nil
	}

	if !startTime.IsAfter(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}

// validateConstraints проверяет новый слот против ограничения подгруппы бронирования
// Подгруппа переносимого бронирования известна, поэтому достаточно её ограничения;
// если подгруппа в ограничениях не встречается, действует консервативное правило -
// слот должен быть строго позже всех ограничений
func validateConstraints(
	date time.Time,
	startTime types.TimeString,
	vehicleGroup int,
	constraints []domain.VehicleGroupConstraint,
) error {
	if len(constraints) == 0 {
		return nil
	}

	for _, c := range constraints {
		if c.VehicleGroup != vehicleGroup {
			continue
		}
		if !c.Allows(date, startTime) {
			return fmt.Errorf("%w: group %d must start after %s %s",
				ErrConstraintViolation, c.VehicleGroup,
				c.ConstraintDate.Format(domain.DateFormat), c.ConstraintTime)
		}
		return nil
	}

	for _, c := range constraints {
		if !c.Allows(date, startTime) {
			return fmt.Errorf("%w: slot must start after %s %s",
				ErrConstraintViolation,
				c.ConstraintDate.Format(domain.DateFormat), c.ConstraintTime)
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
