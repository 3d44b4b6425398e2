package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// Request модель запроса на перенос бронирования в другой слот
type Request struct {
	UserID    int64            // ID пользователя (владелец бронирования)
	BookingID int64            // ID переносимого бронирования
	Date      time.Time        // Новая дата (без времени)
	StartTime types.TimeString // Новое время начала слота
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID            int64
	AppointmentID int64
	UserID        int64
	Service       domain.ServiceType
	BookingDate   time.Time
	StartTime     types.TimeString
	VehicleCount  int
	VehicleGroup  int
	Status        string
}
