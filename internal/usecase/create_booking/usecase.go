package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/allocation"
	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
)

// UseCase use case для создания бронирования.
// Вся восходящая логика подбора слотов - только рекомендация; единственная
// настоящая защита от перебронирования при конкурентных записях - повторная
// проверка вместимости внутри сериализуемой транзакции непосредственно перед
// вставкой (строки слота блокируются через FOR UPDATE)
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	params       *domain.ScheduleParams
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	params *domain.ScheduleParams,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		params:       params,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, appointment=%d, service=%s, date=%s, time=%s, vehicles=%d",
		req.UserID, req.AppointmentID, req.Service, req.Date.Format(domain.DateFormat),
		req.StartTime, req.VehicleCount)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.params); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время должно входить в дневную сетку слотов
	if err := validateSlotTime(req.StartTime, uc.params); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время и проверяем, что слот ещё не начался
	now := uc.timeProvider.Now()
	if err := validateBookingMoment(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking moment validation failed: %v", err)
		return nil, err
	}

	// 4. Дата должна быть рабочей и не заблокированной
	if err := uc.validateDayAvailable(ctx, req.Date); err != nil {
		return nil, err
	}

	// 5. Проверка порядка услуг: слот не должен предшествовать ограничениям
	// предыдущей услуги (отклоняется на этапе выбора, до какой-либо записи)
	constraints, err := uc.upstreamConstraints(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := validateConstraints(req.Date, req.StartTime, req.VehicleGroup, constraints); err != nil {
		uc.logger.Warn("CreateBooking: constraint check failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Защита вместимости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Читаем активные бронирования слота с блокировкой (FOR UPDATE)
		slotBookings, err := uc.bookingRepo.GetForSlot(txCtx, req.Service, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		// 6.2. Повторно агрегируем занятость по свежим данным
		occupied := 0
		for _, b := range slotBookings {
			occupied += b.VehicleCount
		}

		ceiling := uc.params.CeilingFor(req.Service)
		if req.VehicleCount > ceiling-occupied {
			uc.logger.Warn("CreateBooking: capacity guard rejected write, %d requested, %d/%d occupied",
				req.VehicleCount, occupied, ceiling)
			return fmt.Errorf("%w: %d requested, %d of %d available",
				ErrSlotCapacityExceeded, req.VehicleCount, ceiling-occupied, ceiling)
		}

		uc.logger.Info("CreateBooking: capacity guard passed, %d/%d occupied", occupied, ceiling)

		// 6.3. Определяем порядковый номер подгруппы
		vehicleGroup, err := uc.resolveVehicleGroup(txCtx, req)
		if err != nil {
			return err
		}

		// 6.4. Создаем бронирование
		booking := &domain.Booking{
			AppointmentID: req.AppointmentID,
			UserID:        req.UserID,
			Service:       req.Service,
			BookingDate:   domain.DateOnly(req.Date),
			StartTime:     req.StartTime,
			VehicleCount:  req.VehicleCount,
			VehicleGroup:  vehicleGroup,
			Status:        domain.StatusConfirmed,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		AppointmentID: result.AppointmentID,
		UserID:        result.UserID,
		Service:       result.Service,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		VehicleCount:  result.VehicleCount,
		VehicleGroup:  result.VehicleGroup,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// validateDayAvailable проверяет, что дата рабочая и не заблокирована администратором
func (uc *UseCase) validateDayAvailable(ctx context.Context, date time.Time) error {
	if !uc.params.IsWorkDay(date) {
		uc.logger.Warn("CreateBooking: %s is not a work day", date.Format(domain.DateFormat))
		return ErrDayNotAvailable
	}

	blocked, err := uc.scheduleRepo.GetBlockedDates(ctx, date, date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blocked dates: %v", err)
		return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	if len(blocked) > 0 {
		uc.logger.Warn("CreateBooking: %s is blocked by administration", date.Format(domain.DateFormat))
		return ErrDayNotAvailable
	}

	return nil
}

// upstreamConstraints выводит ограничения из бронирований предыдущей услуги
// Для первой услуги последовательности ограничений нет
func (uc *UseCase) upstreamConstraints(ctx context.Context, req *Request) ([]domain.VehicleGroupConstraint, error) {
	prevService, ok := uc.precedingService(req.Service)
	if !ok {
		return nil, nil
	}

	upstream, err := uc.bookingRepo.GetByAppointmentWithFilter(ctx, domain.AppointmentBookingsFilter{
		AppointmentID: req.AppointmentID,
		Service:       ptr.Ptr(prevService),
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get upstream bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get upstream bookings: %v", ErrInternal, err)
	}

	return allocation.DeriveConstraints(upstream), nil
}

// precedingService возвращает услугу, предшествующую указанной в последовательности
func (uc *UseCase) precedingService(service domain.ServiceType) (domain.ServiceType, bool) {
	for i, s := range uc.params.ServiceSequence {
		if s == service && i > 0 {
			return uc.params.ServiceSequence[i-1], true
		}
	}
	return "", false
}

// resolveVehicleGroup определяет порядковый номер подгруппы нового бронирования
// Номер из принятого предложения сохраняется как есть; при ручном выборе
// подгруппа получает следующий свободный номер внутри (appointment, service)
func (uc *UseCase) resolveVehicleGroup(ctx context.Context, req *Request) (int, error) {
	if req.VehicleGroup != nil {
		return *req.VehicleGroup, nil
	}

	existing, err := uc.bookingRepo.GetByAppointmentWithFilter(ctx, domain.AppointmentBookingsFilter{
		AppointmentID: req.AppointmentID,
		Service:       ptr.Ptr(req.Service),
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
		return 0, fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
	}

	maxGroup := 0
	for _, b := range existing {
		if b.VehicleGroup > maxGroup {
			maxGroup = b.VehicleGroup
		}
	}

	return maxGroup + 1, nil
}
