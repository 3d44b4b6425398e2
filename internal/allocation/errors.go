package allocation

import "errors"

var (
	// ErrInvalidVehicleCount возвращается при неположительном количестве машин
	ErrInvalidVehicleCount = errors.New("allocation: vehicle count must be positive")

	// ErrConstraintsExceedCount возвращается, когда сумма машин в ограничениях
	// превышает общее запрошенное количество
	ErrConstraintsExceedCount = errors.New("allocation: constraints cover more vehicles than requested")
)
