package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

var (
	// ErrInvalidService возвращается при некорректной услуге
	ErrInvalidService = errors.New("invalid service type")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	IsStaff            bool   `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// GetAppointmentBookingsRequest запрос на получение бронирований заявки
type GetAppointmentBookingsRequest struct {
	UserID          int64   `json:"userId"`
	IsStaff         bool    `json:"-"`
	AppointmentID   int64   `json:"appointmentId"`
	Service         *string `json:"service,omitempty"`         // Фильтр по услуге (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAppointmentBookingsRequest) ToDomainFilter() (domain.AppointmentBookingsFilter, error) {
	filter := domain.AppointmentBookingsFilter{
		AppointmentID:   r.AppointmentID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Service != nil {
		service, err := ToDomainServiceType(*r.Service)
		if err != nil {
			return filter, err
		}
		filter.Service = &service
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	AppointmentID int64  `json:"appointmentId"`
	UserID        int64  `json:"userId"`
	Service       string `json:"service"`
	BookingDate   string `json:"bookingDate"` // "2026-09-15"
	StartTime     string `json:"startTime"`   // "08:30"
	VehicleCount  int    `json:"vehicleCount"`
	VehicleGroup  int    `json:"vehicleGroup"`
	Status        string `json:"status"`

	Notes *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		AppointmentID:      b.AppointmentID,
		UserID:             b.UserID,
		Service:            string(b.Service),
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		VehicleCount:       b.VehicleCount,
		VehicleGroup:       b.VehicleGroup,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainServiceType конвертирует строку в domain.ServiceType с валидацией
func ToDomainServiceType(service string) (domain.ServiceType, error) {
	s := domain.ServiceType(service)

	validServices := []domain.ServiceType{
		domain.ServiceWeighing,
		domain.ServiceInspection,
		domain.ServiceRegistration,
	}

	for _, valid := range validServices {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidService
}
