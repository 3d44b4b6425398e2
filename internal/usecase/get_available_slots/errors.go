package get_available_slots

import "errors"

var (
	// ErrUnknownService возвращается, когда услуга не входит в последовательность станции
	ErrUnknownService = errors.New("unknown service type")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid availability date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
