package domain

// Default schedule parameters, used when the config omits a value
const (
	DefaultSearchWindowDays = 7
	DefaultSlotCeiling      = 12
)

// Business validation constants
const (
	MinVehicleCount             = 1
	MaxVehicleCount             = 200 // Верхняя граница размера автопарка одной заявки
	MaxAvailabilityRangeDays    = 8   // Целевая дата + окно поиска
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется при подсчёте занятости слотов - такие бронирования место не занимают
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByStaff,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
