package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бронирования
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrCannotReschedule возвращается, когда бронирование в статусе,
	// не допускающем перенос
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrInvalidDate возвращается при некорректной дате переноса
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в дневную сетку слотов
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrDayNotAvailable возвращается, когда дата выпадает на нерабочий
	// или заблокированный администратором день
	ErrDayNotAvailable = errors.New("reschedule_booking: day is not available for booking")

	// ErrTooLateToBook возвращается, когда слот сегодняшнего дня уже начался
	ErrTooLateToBook = errors.New("reschedule_booking: slot start time has already passed")

	// ErrConstraintViolation возвращается, когда новый слот нарушает порядок
	// услуг подгруппы: не строго позже предыдущей услуги либо не строго
	// раньше уже записанной следующей
	ErrConstraintViolation = errors.New("reschedule_booking: slot violates service ordering constraint")

	// ErrSlotCapacityExceeded возвращается защитой вместимости на этапе записи
	ErrSlotCapacityExceeded = errors.New("reschedule_booking: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
