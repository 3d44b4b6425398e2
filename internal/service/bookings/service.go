package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование,
// сотрудник станции видит любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isStaff bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.UserID != userID && !isStaff {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetAppointmentBookings получает бронирования заявки с гибкой фильтрацией
// Поддерживает фильтрацию по услуге и включение неактивных бронирований
// Пользователь видит только бронирования своих заявок, сотрудник станции - любые
func (s *Service) GetAppointmentBookings(ctx context.Context, req *models.GetAppointmentBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetAppointmentBookings: fetching bookings for appointment=%d, user=%d, includeInactive=%t",
		req.AppointmentID, req.UserID, req.IncludeInactive)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAppointmentBookings: invalid filter for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByAppointmentWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAppointmentBookings: repository error for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: GetAppointmentBookings - repository error: %v", ErrInternal, err)
	}

	// Все бронирования заявки принадлежат одному пользователю -
	// достаточно проверить первое
	if len(bookings) > 0 && bookings[0].UserID != req.UserID && !req.IsStaff {
		s.logger.Warn("GetAppointmentBookings: access denied for user=%d to appointment=%d", req.UserID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetAppointmentBookings: successfully fetched %d bookings for appointment=%d",
		len(bookings), req.AppointmentID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование (cancelled_by_user)
// Сотрудник станции может отменить любое бронирование (cancelled_by_staff)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus
	switch {
	case booking.UserID == req.UserID:
		cancelStatus = domain.StatusCancelledByUser
	case req.IsStaff:
		cancelStatus = domain.StatusCancelledByStaff
	default:
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Отменяем бронирование; освобождённая вместимость станет видна
	// следующему запросу доступности
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}
