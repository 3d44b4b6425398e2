package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_PassesCallerIdentity(t *testing.T) {
	var userID int64
	var isStaff, ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, isStaff, ok = Caller(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Role", "staff")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)
	assert.True(t, isStaff)
}

func TestAuth_RegularUserIsNotStaff(t *testing.T) {
	var isStaff bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, isStaff, _ = Caller(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, isStaff)
}

func TestAuth_MissingUserID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called without X-User-ID")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidUserID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called with invalid X-User-ID")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
	req.Header.Set("X-User-ID", "-3")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCaller_OutsideAuthContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, _, ok := Caller(req.Context())
	assert.False(t, ok)
}
