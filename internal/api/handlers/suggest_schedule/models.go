package suggest_schedule

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	suggestSchedule "github.com/m04kA/SMC-FleetBookingService/internal/usecase/suggest_schedule"
)

// SuggestScheduleRequest HTTP request model
type SuggestScheduleRequest struct {
	FromService string `json:"fromService"` // Завершённая услуга
	TargetDate  string `json:"targetDate"`  // "2026-09-15"
}

// SuggestScheduleResponse HTTP response model
type SuggestScheduleResponse struct {
	AppointmentID int64                 `json:"appointmentId"`
	FromService   string                `json:"fromService"`
	ToService     string                `json:"toService"`
	VehicleCount  int                   `json:"vehicleCount"`
	ExtendedDays  int                   `json:"extendedDays"`
	Assignments   []SuggestedAssignment `json:"assignments"`
}

// SuggestedAssignment одна позиция предложенного расписания
type SuggestedAssignment struct {
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	VehicleCount int    `json:"vehicleCount"`
	VehicleGroup int    `json:"vehicleGroup"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SuggestScheduleRequest) ToUseCaseRequest(userID, appointmentID int64) (*suggestSchedule.Request, error) {
	// Парсим дату
	targetDate, err := time.Parse(domain.DateFormat, r.TargetDate)
	if err != nil {
		return nil, err
	}

	return &suggestSchedule.Request{
		UserID:        userID,
		AppointmentID: appointmentID,
		FromService:   domain.ServiceType(r.FromService),
		TargetDate:    targetDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestSchedule.Response) *SuggestScheduleResponse {
	assignments := make([]SuggestedAssignment, len(resp.Assignments))
	for i, a := range resp.Assignments {
		assignments[i] = SuggestedAssignment{
			Date:         a.Date.Format(domain.DateFormat),
			StartTime:    a.StartTime.String(),
			VehicleCount: a.VehicleCount,
			VehicleGroup: a.VehicleGroup,
		}
	}

	return &SuggestScheduleResponse{
		AppointmentID: resp.AppointmentID,
		FromService:   string(resp.FromService),
		ToService:     string(resp.ToService),
		VehicleCount:  resp.VehicleCount,
		ExtendedDays:  resp.ExtendedDays,
		Assignments:   assignments,
	}
}
