package domain

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// ServiceType тип услуги станции
// Услуги проходят последовательно: взвешивание -> техосмотр -> постановка на учёт
type ServiceType string

const (
	ServiceWeighing     ServiceType = "weighing"
	ServiceInspection   ServiceType = "inspection"
	ServiceRegistration ServiceType = "registration"
)

// ScheduleParams бизнес-параметры расписания станции
// Загружаются из конфигурации при старте; ядро аллокации получает их как входные данные
type ScheduleParams struct {
	// ServiceSequence порядок прохождения услуг
	ServiceSequence []ServiceType

	// SlotTimes упорядоченная дневная последовательность времён начала слота
	// Одинакова для всех услуг, различаются только потолки вместимости
	SlotTimes []types.TimeString

	// Capacity потолок: максимум машин в одном слоте для каждой услуги
	Capacity map[ServiceType]int

	// SearchWindowDays сколько календарных дней после целевой даты
	// просматривается при нехватке вместимости на один день
	SearchWindowDays int

	// WorkDays рабочие дни недели станции
	WorkDays []time.Weekday
}

// CeilingFor возвращает потолок вместимости слота для услуги
func (p *ScheduleParams) CeilingFor(service ServiceType) int {
	return p.Capacity[service]
}

// KnownService возвращает true, если услуга присутствует в последовательности
func (p *ScheduleParams) KnownService(service ServiceType) bool {
	for _, s := range p.ServiceSequence {
		if s == service {
			return true
		}
	}
	return false
}

// NextService возвращает следующую услугу в последовательности
// Возвращает false, если услуга последняя или не известна
func (p *ScheduleParams) NextService(service ServiceType) (ServiceType, bool) {
	for i, s := range p.ServiceSequence {
		if s == service && i+1 < len(p.ServiceSequence) {
			return p.ServiceSequence[i+1], true
		}
	}
	return "", false
}

// IsWorkDay возвращает true, если день недели рабочий
func (p *ScheduleParams) IsWorkDay(date time.Time) bool {
	weekday := date.Weekday()
	for _, wd := range p.WorkDays {
		if wd == weekday {
			return true
		}
	}
	return false
}
