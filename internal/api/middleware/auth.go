package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FleetBookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isStaffKey contextKey = "isStaff"

	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	roleStaff = "staff"
)

// Auth извлекает ID пользователя из заголовка X-User-ID и кладёт его в контекст.
// Роль staff берётся из X-User-Role - заголовки проставляет API gateway
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isStaffKey, r.Header.Get(headerUserRole) == roleStaff)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsStaff возвращает true, если запрос пришёл от сотрудника станции
func IsStaff(ctx context.Context) bool {
	isStaff, ok := ctx.Value(isStaffKey).(bool)
	return ok && isStaff
}

// Caller возвращает идентификацию вызывающего одним вызовом:
// ID пользователя и признак сотрудника станции
func Caller(ctx context.Context) (userID int64, isStaff bool, ok bool) {
	userID, ok = GetUserID(ctx)
	return userID, IsStaff(ctx), ok
}
