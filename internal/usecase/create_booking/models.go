package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Используется и для ручного выбора слота, и для принятия автоматического предложения
type Request struct {
	UserID        int64              // ID пользователя
	AppointmentID int64              // ID заявки
	Service       domain.ServiceType // Услуга станции
	Date          time.Time          // Дата бронирования (без времени)
	StartTime     types.TimeString   // Время начала слота (например, "08:30")
	VehicleCount  int                // Количество машин в этом слоте
	VehicleGroup  *int               // Порядковый номер подгруппы из принятого предложения (опционально)
	Notes         *string            // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
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
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
