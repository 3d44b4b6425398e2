package suggest_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByAppointmentWithFilter получает бронирования заявки (по умолчанию только активные)
	GetByAppointmentWithFilter(ctx context.Context, filter domain.AppointmentBookingsFilter) ([]*domain.Booking, error)
	// AggregateSlotCounts получает суммарную занятость слотов услуги за период
	AggregateSlotCounts(ctx context.Context, service domain.ServiceType, startDate, endDate time.Time) ([]domain.SlotAggregate, error)
}

// ScheduleRepository интерфейс репозитория календаря станции
type ScheduleRepository interface {
	GetBlockedDates(ctx context.Context, from, to time.Time) ([]time.Time, error)
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
