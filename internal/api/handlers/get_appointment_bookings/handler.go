package get_appointment_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID заявки"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgInvalidFilter        = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/bookings
// Query params: service (optional), includeInactive (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/bookings - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Идентификация вызывающего из контекста (через middleware Auth)
	userID, isStaff, ok := middleware.Caller(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Формируем запрос к сервису из query параметров
	req := &models.GetAppointmentBookingsRequest{
		UserID:        userID,
		IsStaff:       isStaff,
		AppointmentID: appointmentID,
	}

	if service := r.URL.Query().Get("service"); service != "" {
		req.Service = &service
	}

	if includeInactive := r.URL.Query().Get("includeInactive"); includeInactive != "" {
		parsed, err := strconv.ParseBool(includeInactive)
		if err != nil {
			h.logger.Warn("GET /appointments/{id}/bookings - Invalid includeInactive: %s", includeInactive)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.IncludeInactive = parsed
	}

	// Получаем бронирования (сервис сам проверит права доступа)
	result, err := h.service.GetAppointmentBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id}/bookings - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{id}/bookings - Invalid filter: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments/{id}/bookings - Failed to get bookings: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id}/bookings - Bookings retrieved successfully: appointment_id=%d, user_id=%d, count=%d",
		appointmentID, userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
