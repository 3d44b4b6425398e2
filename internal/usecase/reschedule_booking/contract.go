package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// GetByAppointmentWithFilter получает бронирования заявки (по умолчанию только активные)
	GetByAppointmentWithFilter(ctx context.Context, filter domain.AppointmentBookingsFilter) ([]*domain.Booking, error)
	// GetForSlot получает активные бронирования слота, внутри транзакции - с блокировкой FOR UPDATE
	GetForSlot(ctx context.Context, service domain.ServiceType, date time.Time, startTime types.TimeString) ([]*domain.Booking, error)
	UpdateSlot(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error
}

// ScheduleRepository интерфейс репозитория календаря станции
type ScheduleRepository interface {
	GetBlockedDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
