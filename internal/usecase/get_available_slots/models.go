package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// Request модель запроса на получение доступности слотов
type Request struct {
	Service domain.ServiceType // Услуга станции
	Date    time.Time          // Целевая дата (без времени)
	Days    int                // Сколько дней показать начиная с целевой даты (минимум 1)
}

// Response модель ответа с доступностью слотов по дням
type Response struct {
	Service domain.ServiceType // Услуга, для которой запрашивалась доступность
	Ceiling int                // Потолок вместимости одного слота
	Days    []Day              // Доступность по рабочим дням
}

// Day доступность слотов одного рабочего дня
type Day struct {
	Date  time.Time
	Slots []Slot
}

// Slot модель одного временного слота
type Slot struct {
	StartTime         types.TimeString // Время начала слота (например, "08:30")
	AvailableCapacity int              // Сколько машин ещё помещается
}
