package suggest_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/allocation"
	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
)

// UseCase use case автоматического предложения расписания следующей услуги.
// Композиция: ограничения из бронирований завершённой услуги + доступность слотов
// следующей + жадное распределение; при нехватке вместимости на целевую дату окно
// поиска расширяется на params.SearchWindowDays календарных дней. Перед возвратом
// предложение перепроверяется по свежим агрегатам - данные могли измениться
// конкурентными записями между чтением и расчётом.
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

// Execute выполняет use case предложения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestSchedule: user=%d, appointment=%d, from=%s, target=%s",
		req.UserID, req.AppointmentID, req.FromService, req.TargetDate.Format(domain.DateFormat))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, uc.params, now); err != nil {
		uc.logger.Warn("SuggestSchedule: validation failed: %v", err)
		return nil, err
	}

	// 3. Определяем следующую услугу в последовательности
	toService, ok := uc.params.NextService(req.FromService)
	if !ok {
		uc.logger.Warn("SuggestSchedule: service %s has no next service", req.FromService)
		return nil, ErrNoNextService
	}

	// 4. Получаем бронирования завершённой услуги и выводим ограничения
	upstream, err := uc.bookingRepo.GetByAppointmentWithFilter(ctx, domain.AppointmentBookingsFilter{
		AppointmentID: req.AppointmentID,
		Service:       ptr.Ptr(req.FromService),
	})
	if err != nil {
		uc.logger.Error("SuggestSchedule: failed to get upstream bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get upstream bookings: %v", ErrInternal, err)
	}

	constraints := allocation.DeriveConstraints(upstream)
	vehicleCount := allocation.TotalConstrainedVehicles(constraints)
	if vehicleCount == 0 {
		uc.logger.Warn("SuggestSchedule: appointment=%d has no active %s bookings",
			req.AppointmentID, req.FromService)
		return nil, ErrUpstreamNotBooked
	}

	uc.logger.Info("SuggestSchedule: derived %d constraints covering %d vehicles",
		len(constraints), vehicleCount)

	// 5. Заблокированные даты читаем сразу на всё возможное окно поиска
	targetDate := domain.DateOnly(req.TargetDate)
	windowEnd := targetDate.AddDate(0, 0, uc.params.SearchWindowDays)

	blocked, err := uc.scheduleRepo.GetBlockedDates(ctx, targetDate, windowEnd)
	if err != nil {
		uc.logger.Error("SuggestSchedule: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	// 6. Первая попытка: только целевая дата
	result, err := uc.distributeOver(ctx, toService, targetDate, 1, vehicleCount, constraints, blocked, now)
	if err != nil {
		return nil, err
	}

	extendedDays := 0

	// 7. Не поместилось - расширяем окно на SearchWindowDays календарных дней
	if !result.Complete() {
		uc.logger.Info("SuggestSchedule: target date holds %d of %d vehicles, extending window by %d days",
			result.Placed(), vehicleCount, uc.params.SearchWindowDays)

		extendedDays = uc.params.SearchWindowDays
		result, err = uc.distributeOver(ctx, toService, targetDate, 1+uc.params.SearchWindowDays,
			vehicleCount, constraints, blocked, now)
		if err != nil {
			return nil, err
		}

		// Жёсткий отказ: дальше окна не ищем, чтобы не предлагать даты в далёком будущем
		if !result.Complete() {
			uc.logger.Warn("SuggestSchedule: %d of %d vehicles do not fit within %d-day window",
				result.Remaining, vehicleCount, uc.params.SearchWindowDays)
			return nil, fmt.Errorf("%w: %d vehicles do not fit", ErrInsufficientCapacity, result.Remaining)
		}
	}

	// 8. Контроль свежести: перечитываем агрегаты и проверяем каждый предложенный слот
	// При любом несоответствии предложение отбрасывается целиком - молчаливое урезание
	// или переупорядочивание устаревшего предложения недопустимо
	fresh, err := uc.freshAvailability(ctx, toService, targetDate, windowEnd, now)
	if err != nil {
		return nil, err
	}

	if !verifyAgainstFreshAvailability(result.Assignments, fresh) {
		uc.logger.Warn("SuggestSchedule: availability changed during calculation, discarding suggestion for appointment=%d",
			req.AppointmentID)
		return nil, ErrStaleCapacity
	}

	uc.logger.Info("SuggestSchedule: proposed %d assignments for %d vehicles, appointment=%d, to=%s",
		len(result.Assignments), vehicleCount, req.AppointmentID, toService)

	return &Response{
		AppointmentID: req.AppointmentID,
		FromService:   req.FromService,
		ToService:     toService,
		VehicleCount:  vehicleCount,
		ExtendedDays:  extendedDays,
		Assignments:   result.Assignments,
	}, nil
}

// distributeOver строит доступность слотов услуги на диапазон дат и запускает
// жадное распределение. Один и тот же путь обслуживает и однодневный, и
// расширенный поиск - меняется только количество дней
func (uc *UseCase) distributeOver(
	ctx context.Context,
	service domain.ServiceType,
	startDate time.Time,
	days int,
	vehicleCount int,
	constraints []domain.VehicleGroupConstraint,
	blocked []time.Time,
	now time.Time,
) (*allocation.Result, error) {
	dates := businessDates(startDate, days, uc.params, blocked)
	if len(dates) == 0 {
		return &allocation.Result{Remaining: vehicleCount}, nil
	}

	endDate := domain.DateOnly(startDate).AddDate(0, 0, days-1)

	aggregates, err := uc.bookingRepo.AggregateSlotCounts(ctx, service, startDate, endDate)
	if err != nil {
		uc.logger.Error("SuggestSchedule: failed to aggregate slot counts: %v", err)
		return nil, fmt.Errorf("%w: failed to aggregate slot counts: %v", ErrInternal, err)
	}

	availability := allocation.BuildAvailability(dates, uc.params.SlotTimes, aggregates, uc.params.CeilingFor(service))
	availability = dropPastSlots(availability, now)

	result, err := allocation.Distribute(vehicleCount, availability, constraints)
	if err != nil {
		uc.logger.Error("SuggestSchedule: distribution failed: %v", err)
		return nil, fmt.Errorf("%w: distribution failed: %v", ErrInternal, err)
	}

	return result, nil
}

// freshAvailability перечитывает агрегаты и строит актуальную доступность
// для финальной проверки предложения
func (uc *UseCase) freshAvailability(
	ctx context.Context,
	service domain.ServiceType,
	startDate, endDate time.Time,
	now time.Time,
) ([]domain.SlotAvailability, error) {
	blocked, err := uc.scheduleRepo.GetBlockedDates(ctx, startDate, endDate)
	if err != nil {
		uc.logger.Error("SuggestSchedule: freshness check - failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: freshness check - failed to get blocked dates: %v", ErrInternal, err)
	}

	days := int(endDate.Sub(domain.DateOnly(startDate)).Hours()/24) + 1
	dates := businessDates(startDate, days, uc.params, blocked)

	aggregates, err := uc.bookingRepo.AggregateSlotCounts(ctx, service, startDate, endDate)
	if err != nil {
		uc.logger.Error("SuggestSchedule: freshness check - failed to aggregate slot counts: %v", err)
		return nil, fmt.Errorf("%w: freshness check - failed to aggregate slot counts: %v", ErrInternal, err)
	}

	availability := allocation.BuildAvailability(dates, uc.params.SlotTimes, aggregates, uc.params.CeilingFor(service))
	return dropPastSlots(availability, now), nil
}
