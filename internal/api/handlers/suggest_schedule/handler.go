package suggest_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	suggestSchedule "github.com/m04kA/SMC-FleetBookingService/internal/usecase/suggest_schedule"
)

const (
	msgInvalidAppointmentID = "некорректный ID заявки"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgUnknownService       = "неизвестная услуга"
	msgNoNextService        = "для этой услуги нет следующей в последовательности"
	msgUpstreamNotBooked    = "предыдущая услуга ещё не забронирована"
	msgInsufficientCapacity = "недостаточно свободных слотов в окне поиска"
	msgStaleCapacity        = "доступность слотов изменилась, повторите запрос"
	msgInvalidRequest       = "некорректные параметры запроса"
)

type Handler struct {
	useCase SuggestScheduleUseCase
	logger  Logger
}

func NewHandler(useCase SuggestScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/schedule-suggestion
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req SuggestScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID, appointmentID)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestSchedule.ErrUnknownService):
			h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Unknown service: appointment_id=%d, service=%s",
				appointmentID, req.FromService)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, suggestSchedule.ErrNoNextService):
			h.logger.Warn("POST /appointments/{id}/schedule-suggestion - No next service: appointment_id=%d, service=%s",
				appointmentID, req.FromService)
			handlers.RespondBadRequest(w, msgNoNextService)

		case errors.Is(err, suggestSchedule.ErrUpstreamNotBooked):
			h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Upstream not booked: appointment_id=%d, service=%s",
				appointmentID, req.FromService)
			handlers.RespondError(w, http.StatusConflict, msgUpstreamNotBooked)

		case errors.Is(err, suggestSchedule.ErrInvalidDate):
			h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Invalid target date: appointment_id=%d, date=%s",
				appointmentID, req.TargetDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, suggestSchedule.ErrInsufficientCapacity):
			h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Insufficient capacity: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientCapacity)

		case errors.Is(err, suggestSchedule.ErrStaleCapacity):
			h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Stale capacity, suggestion discarded: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondError(w, http.StatusConflict, msgStaleCapacity)

		case errors.Is(err, suggestSchedule.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/schedule-suggestion - Invalid input: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /appointments/{id}/schedule-suggestion - Failed to suggest schedule: appointment_id=%d, user_id=%d, error=%v",
				appointmentID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments/{id}/schedule-suggestion - Schedule suggested successfully: appointment_id=%d, user_id=%d, assignments=%d, extended_days=%d",
		appointmentID, userID, len(result.Assignments), result.ExtendedDays)
	handlers.RespondJSON(w, http.StatusOK, response)
}
