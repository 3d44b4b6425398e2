package create_booking

import "errors"

var (
	// ErrUnknownService возвращается, когда услуга не входит в последовательность станции
	ErrUnknownService = errors.New("create_booking: unknown service type")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в дневную сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrDayNotAvailable возвращается, когда дата выпадает на нерабочий
	// или заблокированный администратором день
	ErrDayNotAvailable = errors.New("create_booking: day is not available for booking")

	// ErrTooLateToBook возвращается, когда слот сегодняшнего дня уже начался
	ErrTooLateToBook = errors.New("create_booking: slot start time has already passed")

	// ErrConstraintViolation возвращается, когда выбранный слот не позже слота,
	// в котором подгруппа проходила предыдущую услугу
	ErrConstraintViolation = errors.New("create_booking: slot precedes preceding-service constraint")

	// ErrSlotCapacityExceeded возвращается защитой вместимости на этапе записи:
	// запрошенное количество машин не помещается в остаток слота
	ErrSlotCapacityExceeded = errors.New("create_booking: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
