package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
	"github.com/m04kA/SMC-FleetBookingService/pkg/ptr"
	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	slotBookings []*domain.Booking // ответ GetForSlot
	byService    map[domain.ServiceType][]*domain.Booking

	created *domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByAppointmentWithFilter(_ context.Context, filter domain.AppointmentBookingsFilter) ([]*domain.Booking, error) {
	if filter.Service == nil {
		return nil, nil
	}
	return f.byService[*filter.Service], nil
}

func (f *fakeBookingRepo) GetForSlot(_ context.Context, _ domain.ServiceType, _ time.Time, _ types.TimeString) ([]*domain.Booking, error) {
	return f.slotBookings, nil
}

type fakeScheduleRepo struct {
	blocked []time.Time
}

func (f *fakeScheduleRepo) GetBlockedDates(_ context.Context, _, _ time.Time) ([]time.Time, error) {
	return f.blocked, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.t
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testParams() *domain.ScheduleParams {
	return &domain.ScheduleParams{
		ServiceSequence: []domain.ServiceType{
			domain.ServiceWeighing,
			domain.ServiceInspection,
			domain.ServiceRegistration,
		},
		SlotTimes: []types.TimeString{"08:30", "09:30", "10:30"},
		Capacity: map[domain.ServiceType]int{
			domain.ServiceWeighing:     12,
			domain.ServiceInspection:   12,
			domain.ServiceRegistration: 5,
		},
		SearchWindowDays: 7,
		WorkDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

// 2026-09-14 понедельник
var (
	testNow     = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	bookingDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
)

func slotBooking(id int64, count int) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		Service:      domain.ServiceWeighing,
		BookingDate:  bookingDate,
		StartTime:    "08:30",
		VehicleCount: count,
		Status:       domain.StatusConfirmed,
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, scheduleRepo *fakeScheduleRepo, txManager *fakeTxManager) *UseCase {
	uc := NewUseCase(bookingRepo, scheduleRepo, testParams(), txManager, nopLogger{})
	uc.timeProvider = &fixedTime{t: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:        7,
		AppointmentID: 42,
		Service:       domain.ServiceWeighing,
		Date:          bookingDate,
		StartTime:     "08:30",
		VehicleCount:  5,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	txManager := &fakeTxManager{}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{}, txManager)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, txManager.calls)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.ServiceWeighing, resp.Service)
	assert.Equal(t, 5, resp.VehicleCount)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	// Первая подгруппа заявки для этой услуги
	assert.Equal(t, 1, resp.VehicleGroup)
}

func TestExecute_GuardRejectsWhenSlotFull(t *testing.T) {
	// Слот занят на 10 из 12, запрос на 5 машин не помещается
	bookingRepo := &fakeBookingRepo{
		slotBookings: []*domain.Booking{slotBooking(1, 10)},
	}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotCapacityExceeded)
	assert.Nil(t, bookingRepo.created)
}

func TestExecute_GuardAcceptsExactRemainder(t *testing.T) {
	// Ровно 5 свободных мест: запрос на 5 проходит
	bookingRepo := &fakeBookingRepo{
		slotBookings: []*domain.Booking{slotBooking(1, 7)},
	}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 5, resp.VehicleCount)
}

func TestExecute_KeepsVehicleGroupFromSuggestion(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	req.VehicleGroup = ptr.Ptr(3)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.VehicleGroup)
}

func TestExecute_AssignsNextVehicleGroupForManualBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		byService: map[domain.ServiceType][]*domain.Booking{
			domain.ServiceWeighing: {
				{VehicleGroup: 1, Status: domain.StatusConfirmed},
				{VehicleGroup: 2, Status: domain.StatusConfirmed},
			},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.VehicleGroup)
}

func TestExecute_RejectsConstraintViolation(t *testing.T) {
	// Подгруппа прошла взвешивание в 08:30 той же даты: техосмотр в 08:30 недопустим
	bookingRepo := &fakeBookingRepo{
		byService: map[domain.ServiceType][]*domain.Booking{
			domain.ServiceWeighing: {
				{
					BookingDate:  bookingDate,
					StartTime:    "08:30",
					VehicleCount: 5,
					Status:       domain.StatusConfirmed,
				},
			},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	req.Service = domain.ServiceInspection

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestExecute_AllowsLaterSlotForConstrainedGroup(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		byService: map[domain.ServiceType][]*domain.Booking{
			domain.ServiceWeighing: {
				{
					BookingDate:  bookingDate,
					StartTime:    "08:30",
					VehicleCount: 5,
					Status:       domain.StatusConfirmed,
				},
			},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	req.Service = domain.ServiceInspection
	req.StartTime = "09:30"
	req.VehicleGroup = ptr.Ptr(1)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), resp.StartTime)
}

func TestExecute_RejectsUnknownTimeSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	req.StartTime = "08:45"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RejectsNonWorkDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	// 2026-09-12 суббота
	req.Date = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayNotAvailable)
}

func TestExecute_RejectsBlockedDate(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		blocked: []time.Time{bookingDate},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, scheduleRepo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayNotAvailable)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	req.Date = time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsStartedSlotToday(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeTxManager{})

	// Сегодня (четверг 10-е), 08:30 уже прошло относительно now=12:00
	req := validRequest()
	req.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_RejectsInvalidVehicleCount(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	req.VehicleCount = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsUnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeTxManager{})

	req := validRequest()
	req.Service = "car-wash"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownService)
}
