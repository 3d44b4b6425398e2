package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/allocation"
	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// UseCase use case для получения доступности слотов услуги
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	params       *domain.ScheduleParams
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	params *domain.ScheduleParams,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		params:       params,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, days=%d",
		req.Service, req.Date.Format(domain.DateFormat), req.Days)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, uc.params, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	startDate := domain.DateOnly(req.Date)
	endDate := startDate.AddDate(0, 0, req.Days-1)

	// 3. Получаем заблокированные даты за период
	blocked, err := uc.scheduleRepo.GetBlockedDates(ctx, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	// 4. Оставляем только рабочие даты
	dates := businessDates(startDate, req.Days, uc.params, blocked)
	if len(dates) == 0 {
		uc.logger.Info("GetAvailableSlots: no business days in range %s..%s",
			startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
		return &Response{Service: req.Service, Ceiling: uc.params.CeilingFor(req.Service), Days: []Day{}}, nil
	}

	// 5. Получаем занятость слотов за период
	aggregates, err := uc.bookingRepo.AggregateSlotCounts(ctx, req.Service, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to aggregate slot counts: %v", err)
		return nil, fmt.Errorf("%w: failed to aggregate slot counts: %v", ErrInternal, err)
	}

	// 6. Строим доступность и отбрасываем прошедшие слоты сегодняшнего дня
	ceiling := uc.params.CeilingFor(req.Service)
	availability := allocation.BuildAvailability(dates, uc.params.SlotTimes, aggregates, ceiling)
	availability = dropPastSlots(availability, now)

	uc.logger.Info("GetAvailableSlots: built availability for %d slots, service=%s",
		len(availability), req.Service)

	return &Response{
		Service: req.Service,
		Ceiling: ceiling,
		Days:    groupByDate(availability),
	}, nil
}
