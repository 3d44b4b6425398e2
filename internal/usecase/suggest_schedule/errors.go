package suggest_schedule

import "errors"

var (
	// ErrUnknownService возвращается, когда услуга не входит в последовательность станции
	ErrUnknownService = errors.New("suggest_schedule: unknown service type")

	// ErrNoNextService возвращается, когда у услуги нет следующей в последовательности
	ErrNoNextService = errors.New("suggest_schedule: service has no next service")

	// ErrUpstreamNotBooked возвращается, когда у заявки нет активных бронирований
	// предыдущей услуги - предлагать расписание не от чего
	ErrUpstreamNotBooked = errors.New("suggest_schedule: preceding service has no bookings")

	// ErrInvalidDate возвращается при некорректной целевой дате
	ErrInvalidDate = errors.New("suggest_schedule: invalid target date")

	// ErrInsufficientCapacity возвращается, когда автопарк не помещается
	// ни в целевую дату, ни в расширенное окно поиска
	ErrInsufficientCapacity = errors.New("suggest_schedule: insufficient capacity in search window")

	// ErrStaleCapacity возвращается, когда доступность изменилась между расчётом
	// предложения и финальной проверкой - предложение отбрасывается целиком
	ErrStaleCapacity = errors.New("suggest_schedule: capacity changed, suggestion discarded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("suggest_schedule: internal error")
)
