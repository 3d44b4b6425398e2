package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AppointmentID int64   `json:"appointmentId"`
	Service       string  `json:"service"`
	BookingDate   string  `json:"bookingDate"` // "2026-09-15"
	StartTime     string  `json:"startTime"`   // "08:30"
	VehicleCount  int     `json:"vehicleCount"`
	VehicleGroup  *int    `json:"vehicleGroup,omitempty"` // Из принятого предложения
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	AppointmentID int64   `json:"appointmentId"`
	UserID        int64   `json:"userId"`
	Service       string  `json:"service"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	VehicleCount  int     `json:"vehicleCount"`
	VehicleGroup  int     `json:"vehicleGroup"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		AppointmentID: r.AppointmentID,
		Service:       domain.ServiceType(r.Service),
		Date:          bookingDate,
		StartTime:     startTime,
		VehicleCount:  r.VehicleCount,
		VehicleGroup:  r.VehicleGroup,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		AppointmentID: resp.AppointmentID,
		UserID:        resp.UserID,
		Service:       string(resp.Service),
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		VehicleCount:  resp.VehicleCount,
		VehicleGroup:  resp.VehicleGroup,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
