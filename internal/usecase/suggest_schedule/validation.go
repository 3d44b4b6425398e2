package suggest_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, params *domain.ScheduleParams, now time.Time) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.FromService == "" {
		return fmt.Errorf("%w: fromService is required", ErrInvalidInput)
	}

	if !params.KnownService(req.FromService) {
		return fmt.Errorf("%w: %q", ErrUnknownService, req.FromService)
	}

	if req.TargetDate.IsZero() {
		return fmt.Errorf("%w: targetDate is required", ErrInvalidInput)
	}

	if isDateInPast(req.TargetDate, now) {
		return ErrInvalidDate
	}

	return nil
}
