package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, params *domain.ScheduleParams, now time.Time) error {
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if !params.KnownService(req.Service) {
		return fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if isDateInPast(req.Date, now) {
		return ErrInvalidDate
	}

	if req.Days < 1 || req.Days > domain.MaxAvailabilityRangeDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxAvailabilityRangeDays)
	}

	return nil
}
