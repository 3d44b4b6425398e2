package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	rescheduleBooking "github.com/m04kA/SMC-FleetBookingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	BookingDate string `json:"bookingDate"` // "2026-09-15"
	StartTime   string `json:"startTime"`   // "08:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	AppointmentID int64  `json:"appointmentId"`
	UserID        int64  `json:"userId"`
	Service       string `json:"service"`
	BookingDate   string `json:"bookingDate"`
	StartTime     string `json:"startTime"`
	VehicleCount  int    `json:"vehicleCount"`
	VehicleGroup  int    `json:"vehicleGroup"`
	Status        string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(userID, bookingID int64) (*rescheduleBooking.Request, error) {
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

	return &rescheduleBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Date:      bookingDate,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
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
	}
}
