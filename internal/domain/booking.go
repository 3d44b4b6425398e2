package domain

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusInProgress       BookingStatus = "in_progress"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByStaff BookingStatus = "cancelled_by_staff"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking represents a slot reservation for a sub-group of an appointment's fleet.
// One appointment may hold several bookings per service when the fleet is split
// across slots or days; each booking carries the vehicle count that occupies its slot.
type Booking struct {
	ID            int64
	AppointmentID int64
	UserID        int64
	Service       ServiceType
	BookingDate   time.Time
	StartTime     types.TimeString
	VehicleCount  int
	VehicleGroup  int // Порядковый номер подгруппы внутри (appointment, service)
	Status        BookingStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies slot capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByStaff &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByStaff
}

// AppointmentBookingsFilter фильтр для получения бронирований заявки
type AppointmentBookingsFilter struct {
	AppointmentID   int64        // Обязательный параметр
	Service         *ServiceType // Фильтр по услуге (опционально)
	IncludeInactive bool         // Включать ли отменённые и no-show бронирования
}
