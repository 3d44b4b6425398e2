package suggest_schedule

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Request модель запроса на автоматическое предложение расписания
// Предложение строится для услуги, следующей за FromService
type Request struct {
	UserID        int64              // ID пользователя (для логирования)
	AppointmentID int64              // ID заявки
	FromService   domain.ServiceType // Завершённая услуга, от которой строятся ограничения
	TargetDate    time.Time          // Предпочитаемая дата следующей услуги
}

// Response модель ответа с предложенным расписанием
type Response struct {
	AppointmentID int64
	FromService   domain.ServiceType
	ToService     domain.ServiceType
	VehicleCount  int // Суммарное количество машин в предложении
	ExtendedDays  int // 0 = всё поместилось в целевую дату
	Assignments   []domain.SuggestedAssignment
}
