package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, params *domain.ScheduleParams) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if !params.KnownService(req.Service) {
		return fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
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

	if req.VehicleCount < domain.MinVehicleCount || req.VehicleCount > domain.MaxVehicleCount {
		return fmt.Errorf("%w: vehicleCount must be between %d and %d",
			ErrInvalidInput, domain.MinVehicleCount, domain.MaxVehicleCount)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
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
// Для будущих дат проверка не нужна
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

// validateConstraints проверяет выбранный слот против ограничений предыдущей услуги.
// При известной подгруппе (принятое предложение) слот сверяется только с её
// ограничением; при ручном выборе подгруппа неизвестна, поэтому слот обязан быть
// строго позже всех ограничений - консервативное правило, не допускающее нарушения
// порядка ни для одной машины
func validateConstraints(
	date time.Time,
	startTime types.TimeString,
	vehicleGroup *int,
	constraints []domain.VehicleGroupConstraint,
) error {
	if len(constraints) == 0 {
		return nil
	}

	if vehicleGroup != nil {
		for _, c := range constraints {
			if c.VehicleGroup != *vehicleGroup {
				continue
			}
			if !c.Allows(date, startTime) {
				return fmt.Errorf("%w: group %d must start after %s %s",
					ErrConstraintViolation, c.VehicleGroup,
					c.ConstraintDate.Format(domain.DateFormat), c.ConstraintTime)
			}
			return nil
		}
		// Неизвестная подгруппа - проверяем как ручной выбор
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
