package txmanager

import (
	"errors"

	"github.com/lib/pq"
)

// serializationFailureCode код ошибки PostgreSQL "could not serialize access"
const serializationFailureCode = "40001"

// isSerializationError определяет, является ли ошибка конфликтом сериализации PostgreSQL
func isSerializationError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
