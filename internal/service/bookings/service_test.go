package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	bookingRepoPkg "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FleetBookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	byAppt   []*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepoPkg.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByAppointmentWithFilter(_ context.Context, _ domain.AppointmentBookingsFilter) ([]*domain.Booking, error) {
	return f.byAppt, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepoPkg.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            10,
		AppointmentID: 42,
		UserID:        7,
		Service:       domain.ServiceWeighing,
		BookingDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "08:30",
		VehicleCount:  5,
		VehicleGroup:  1,
		Status:        domain.StatusConfirmed,
	}
}

func TestGetByID_Owner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: testBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 7, false)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, int64(42), resp.AppointmentID)
}

func TestGetByID_Staff(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: testBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 999, true)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetByID_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: testBooking()}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 999, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 7, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetAppointmentBookings_Owner(t *testing.T) {
	first := testBooking()
	second := testBooking()
	second.ID = 11
	second.Service = domain.ServiceInspection
	repo := &fakeBookingRepo{byAppt: []*domain.Booking{first, second}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetAppointmentBookings(context.Background(), &models.GetAppointmentBookingsRequest{
		UserID:        7,
		AppointmentID: 42,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(10), resp.Bookings[0].ID)
	assert.Equal(t, int64(11), resp.Bookings[1].ID)
}

func TestGetAppointmentBookings_ForeignAppointment(t *testing.T) {
	repo := &fakeBookingRepo{byAppt: []*domain.Booking{testBooking()}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetAppointmentBookings(context.Background(), &models.GetAppointmentBookingsRequest{
		UserID:        999,
		AppointmentID: 42,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetAppointmentBookings_EmptyList(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetAppointmentBookings(context.Background(), &models.GetAppointmentBookingsRequest{
		UserID:        999,
		AppointmentID: 42,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: testBooking()}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             7,
		CancellationReason: "планы изменились",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
	assert.Equal(t, "планы изменились", repo.cancelledReason)
}

func TestCancel_ByStaff(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: testBooking()}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:  999,
		IsStaff: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByStaff, repo.cancelledStatus)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: testBooking()}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 999})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_CompletedBooking(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCompleted
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{10: booking}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
}
