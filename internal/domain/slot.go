package domain

import (
	"time"

	"github.com/m04kA/SMC-FleetBookingService/pkg/types"
)

// SlotAggregate суммарное количество машин в активных бронированиях одного слота
// Читается из хранилища, слоты без бронирований в выборку не попадают
type SlotAggregate struct {
	BookingDate  time.Time
	StartTime    types.TimeString
	VehicleCount int
}

// SlotAvailability represents the remaining capacity of a single slot.
// Derived per request from raw aggregates, never stored.
type SlotAvailability struct {
	Date              time.Time
	StartTime         types.TimeString
	AvailableCapacity int
}

// HasCapacity returns true if at least one vehicle fits into the slot
func (s *SlotAvailability) HasCapacity() bool {
	return s.AvailableCapacity > 0
}

// VehicleGroupConstraint is the earliest-eligible-slot bound for a fleet sub-group,
// derived from where the sub-group landed in the preceding service.
type VehicleGroupConstraint struct {
	VehicleGroup   int
	VehicleCount   int
	ConstraintDate time.Time
	ConstraintTime types.TimeString
}

// Allows returns true if the slot (date, startTime) is strictly after the constraint:
// a later date is always eligible, the same date requires a later start time.
func (c *VehicleGroupConstraint) Allows(date time.Time, startTime types.TimeString) bool {
	cd := DateOnly(c.ConstraintDate)
	d := DateOnly(date)
	if d.After(cd) {
		return true
	}
	if d.Before(cd) {
		return false
	}
	return startTime.IsAfter(c.ConstraintTime)
}

// SuggestedAssignment одна позиция предлагаемого расписания:
// сколько машин какой подгруппы ставится в какой слот
type SuggestedAssignment struct {
	Date         time.Time
	StartTime    types.TimeString
	VehicleCount int
	VehicleGroup int
}

// SameSlot возвращает true, если обе позиции указывают на один слот
func (a *SuggestedAssignment) SameSlot(b *SuggestedAssignment) bool {
	return DateOnly(a.Date).Equal(DateOnly(b.Date)) && a.StartTime == b.StartTime
}

// DateOnly обнуляет компонент времени, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
