package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FleetBookingService/internal/allocation"
	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// UseCase use case переноса бронирования в другой слот.
// Защита вместимости выполняется в сериализуемой транзакции и исключает
// переносимое бронирование из агрегата - его машины освобождают старый слот
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

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: user=%d, booking=%d, date=%s, time=%s",
		req.UserID, req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время должно входить в дневную сетку слотов
	if err := validateSlotTime(req.StartTime, uc.params); err != nil {
		uc.logger.Warn("RescheduleBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время и проверяем, что новый слот ещё не начался
	now := uc.timeProvider.Now()
	if err := validateBookingMoment(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("RescheduleBooking: booking moment validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем бронирование и проверяем права и статус
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("RescheduleBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d cannot be rescheduled, status=%s",
			req.BookingID, booking.Status)
		return nil, ErrCannotReschedule
	}

	// 5. Дата должна быть рабочей и не заблокированной
	if err := uc.validateDayAvailable(ctx, req.Date); err != nil {
		return nil, err
	}

	// 6. Проверка порядка услуг для подгруппы переносимого бронирования
	constraints, err := uc.upstreamConstraints(ctx, booking)
	if err != nil {
		return nil, err
	}
	if err := validateConstraints(req.Date, req.StartTime, booking.VehicleGroup, constraints); err != nil {
		uc.logger.Warn("RescheduleBooking: constraint check failed: %v", err)
		return nil, err
	}

	// 6.1. Симметричная проверка вниз по цепочке: новый слот не должен
	// оказаться в момент или позже уже записанной следующей услуги подгруппы
	if err := uc.validateDownstream(ctx, booking, req.Date, req.StartTime); err != nil {
		return nil, err
	}

	// 7. Защита вместимости и перенос в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Читаем активные бронирования целевого слота с блокировкой (FOR UPDATE)
		slotBookings, err := uc.bookingRepo.GetForSlot(txCtx, booking.Service, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		// 7.2. Агрегируем занятость, исключая само переносимое бронирование
		occupied := 0
		for _, b := range slotBookings {
			if b.ID == booking.ID {
				continue
			}
			occupied += b.VehicleCount
		}

		ceiling := uc.params.CeilingFor(booking.Service)
		if booking.VehicleCount > ceiling-occupied {
			uc.logger.Warn("RescheduleBooking: capacity guard rejected move, %d requested, %d/%d occupied",
				booking.VehicleCount, occupied, ceiling)
			return fmt.Errorf("%w: %d requested, %d of %d available",
				ErrSlotCapacityExceeded, booking.VehicleCount, ceiling-occupied, ceiling)
		}

		// 7.3. Переносим бронирование
		if err := uc.bookingRepo.UpdateSlot(txCtx, booking.ID, req.Date, req.StartTime); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to update slot: %v", err)
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully moved booking id=%d to %s %s",
		booking.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		ID:            booking.ID,
		AppointmentID: booking.AppointmentID,
		UserID:        booking.UserID,
		Service:       booking.Service,
		BookingDate:   domain.DateOnly(req.Date),
		StartTime:     req.StartTime,
		VehicleCount:  booking.VehicleCount,
		VehicleGroup:  booking.VehicleGroup,
		Status:        string(booking.Status),
	}, nil
}

// validateDayAvailable проверяет, что дата рабочая и не заблокирована администратором
func (uc *UseCase) validateDayAvailable(ctx context.Context, date time.Time) error {
	if !uc.params.IsWorkDay(date) {
		uc.logger.Warn("RescheduleBooking: %s is not a work day", date.Format(domain.DateFormat))
		return ErrDayNotAvailable
	}

	blocked, err := uc.scheduleRepo.GetBlockedDates(ctx, date, date)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get blocked dates: %v", err)
		return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	if len(blocked) > 0 {
		uc.logger.Warn("RescheduleBooking: %s is blocked by administration", date.Format(domain.DateFormat))
		return ErrDayNotAvailable
	}

	return nil
}

// upstreamConstraints выводит ограничения из бронирований предыдущей услуги
func (uc *UseCase) upstreamConstraints(ctx context.Context, booking *domain.Booking) ([]domain.VehicleGroupConstraint, error) {
	prevService, ok := uc.precedingService(booking.Service)
	if !ok {
		return nil, nil
	}

	upstream, err := uc.bookingRepo.GetByAppointmentWithFilter(ctx, domain.AppointmentBookingsFilter{
		AppointmentID: booking.AppointmentID,
		Service:       ptr.Ptr(prevService),
	})
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get upstream bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get upstream bookings: %v", ErrInternal, err)
	}

	return allocation.DeriveConstraints(upstream), nil
}

// validateDownstream проверяет, что новый слот строго раньше слотов, в которых
// подгруппа уже записана на следующую услугу последовательности
func (uc *UseCase) validateDownstream(ctx context.Context, booking *domain.Booking, date time.Time, startTime types.TimeString) error {
	nextService, ok := uc.params.NextService(booking.Service)
	if !ok {
		return nil
	}

	downstream, err := uc.bookingRepo.GetByAppointmentWithFilter(ctx, domain.AppointmentBookingsFilter{
		AppointmentID: booking.AppointmentID,
		Service:       ptr.Ptr(nextService),
	})
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get downstream bookings: %v", err)
		return fmt.Errorf("%w: failed to get downstream bookings: %v", ErrInternal, err)
	}

	newSlot := domain.VehicleGroupConstraint{
		VehicleGroup:   booking.VehicleGroup,
		ConstraintDate: domain.DateOnly(date),
		ConstraintTime: startTime,
	}

	for _, b := range downstream {
		// Подгруппа 0 могла содержать любые машины - проверяем консервативно
		if booking.VehicleGroup != 0 && b.VehicleGroup != 0 && b.VehicleGroup != booking.VehicleGroup {
			continue
		}
		if !newSlot.Allows(b.BookingDate, b.StartTime) {
			uc.logger.Warn("RescheduleBooking: new slot %s %s is not before downstream %s booking at %s %s",
				date.Format(domain.DateFormat), startTime, nextService,
				b.BookingDate.Format(domain.DateFormat), b.StartTime)
			return fmt.Errorf("%w: %s is already booked at %s %s",
				ErrConstraintViolation, nextService,
				b.BookingDate.Format(domain.DateFormat), b.StartTime)
		}
	}

	return nil
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
