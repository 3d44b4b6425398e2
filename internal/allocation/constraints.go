package allocation

import (
	"sort"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// DeriveConstraints computes minimum-time-after constraints for the next service
// from the committed bookings of the preceding one. Each distinct (date, start time)
// slot actually used becomes an independent constraint carrying the vehicle count
// that occupied it, so the constraint binds only the sub-group that passed through
// that slot. Returns an empty set when the preceding service has no active bookings.
//
// Sub-group identity is ordinal: constraints are numbered 1..N in chronological
// order of the upstream slot. Group provenance is preserved as-is, vehicle counts
// are never re-derived from appointment totals.
func DeriveConstraints(upstream []*domain.Booking) []domain.VehicleGroupConstraint {
	// Собираем по одному ограничению на каждый фактически занятый слот
	buckets := make(map[string]*domain.VehicleGroupConstraint)
	order := make([]string, 0)

	for _, booking := range upstream {
		// Отменённые и no-show бронирования порядок не задают
		if !booking.IsActive() {
			continue
		}

		key := slotKey(booking.BookingDate, booking.StartTime)
		if existing, ok := buckets[key]; ok {
			existing.VehicleCount += booking.VehicleCount
			continue
		}

		buckets[key] = &domain.VehicleGroupConstraint{
			VehicleCount:   booking.VehicleCount,
			ConstraintDate: domain.DateOnly(booking.BookingDate),
			ConstraintTime: booking.StartTime,
		}
		order = append(order, key)
	}

	constraints := make([]domain.VehicleGroupConstraint, 0, len(order))
	for _, key := range order {
		constraints = append(constraints, *buckets[key])
	}

	// Нумеруем подгруппы в хронологическом порядке занятых слотов
	sort.Slice(constraints, func(i, j int) bool {
		di, dj := constraints[i].ConstraintDate, constraints[j].ConstraintDate
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return constraints[i].ConstraintTime.IsBefore(constraints[j].ConstraintTime)
	})
	for i := range constraints {
		constraints[i].VehicleGroup = i + 1
	}

	return constraints
}

// TotalConstrainedVehicles суммирует количество машин по всем ограничениям
func TotalConstrainedVehicles(constraints []domain.VehicleGroupConstraint) int {
	total := 0
	for _, c := range constraints {
		total += c.VehicleCount
	}
	return total
}
