package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Service string            `json:"service"`
	Ceiling int               `json:"ceiling"`
	Days    []AvailabilityDay `json:"days"`
}

// AvailabilityDay доступность слотов одного рабочего дня
type AvailabilityDay struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime         string `json:"startTime"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	days := make([]AvailabilityDay, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]AvailableSlot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = AvailableSlot{
				StartTime:         slot.StartTime.String(),
				AvailableCapacity: slot.AvailableCapacity,
			}
		}
		days[i] = AvailabilityDay{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &AvailabilityResponse{
		Service: string(resp.Service),
		Ceiling: resp.Ceiling,
		Days:    days,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(service, dateStr string, days int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Service: domain.ServiceType(service),
		Date:    date,
		Days:    days,
	}, nil
}
