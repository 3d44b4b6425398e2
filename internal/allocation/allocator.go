package allocation

import (
	"sort"

	"github.com/m04kA/SMC-FleetBookingService/internal/domain"
)

// Result is the outcome of a distribution attempt. Remaining > 0 means the request
// did not fit into the offered slots; Assignments then holds the partial accumulation
// so the caller can decide whether to widen the search window.
type Result struct {
	Assignments []domain.SuggestedAssignment
	Remaining   int
}

// Complete returns true if every requested vehicle was placed
func (r *Result) Complete() bool {
	return r.Remaining == 0
}

// Placed returns the number of vehicles covered by the assignments
func (r *Result) Placed() int {
	placed := 0
	for _, a := range r.Assignments {
		placed += a.VehicleCount
	}
	return placed
}

// Distribute greedily assigns vehicleCount vehicles to the offered slots,
// earliest slot first, packing as many vehicles as fit before moving on.
//
// Constraints bind fleet sub-groups to slots strictly later than where the
// sub-group finished the preceding service: a later date is always eligible,
// the same date requires a later start time. Vehicles not covered by any
// constraint accept any slot. Slot capacity is shared across sub-groups.
//
// The function is pure: it reads the slot snapshot passed in and never
// touches shared state, so concurrent calls are safe. Identical inputs
// produce an identical assignment sequence.
func Distribute(
	vehicleCount int,
	slots []domain.SlotAvailability,
	constraints []domain.VehicleGroupConstraint,
) (*Result, error) {
	if vehicleCount <= 0 {
		return nil, ErrInvalidVehicleCount
	}

	constrained := TotalConstrainedVehicles(constraints)
	if constrained > vehicleCount {
		return nil, ErrConstraintsExceedCount
	}

	// Работаем с копией: вместимость слотов расходуется по мере распределения
	candidates := make([]domain.SlotAvailability, len(slots))
	copy(candidates, slots)
	sortSlots(candidates)

	// Подгруппы обрабатываются в хронологическом порядке их ограничений,
	// машины без ограничений идут первыми - им доступны самые ранние слоты
	groups := buildGroups(vehicleCount-constrained, constraints)

	result := &Result{Assignments: make([]domain.SuggestedAssignment, 0, len(groups))}

	for _, group := range groups {
		remaining := group.count

		for i := range candidates {
			if remaining == 0 {
				break
			}
			if candidates[i].AvailableCapacity == 0 {
				continue
			}
			if group.constraint != nil && !group.constraint.Allows(candidates[i].Date, candidates[i].StartTime) {
				continue
			}

			toBook := remaining
			if candidates[i].AvailableCapacity < toBook {
				toBook = candidates[i].AvailableCapacity
			}

			result.Assignments = append(result.Assignments, domain.SuggestedAssignment{
				Date:         candidates[i].Date,
				StartTime:    candidates[i].StartTime,
				VehicleCount: toBook,
				VehicleGroup: group.ordinal,
			})
			candidates[i].AvailableCapacity -= toBook
			remaining -= toBook
		}

		result.Remaining += remaining
	}

	sortAssignments(result.Assignments)

	return result, nil
}

// allocationGroup подгруппа машин с общим ограничением (nil = без ограничения)
type allocationGroup struct {
	ordinal    int
	count      int
	constraint *domain.VehicleGroupConstraint
}

// buildGroups собирает подгруппы для распределения
// unconstrained - машины, не связанные ни одним ограничением (ordinal 0)
func buildGroups(unconstrained int, constraints []domain.VehicleGroupConstraint) []allocationGroup {
	groups := make([]allocationGroup, 0, len(constraints)+1)

	if unconstrained > 0 {
		groups = append(groups, allocationGroup{ordinal: 0, count: unconstrained})
	}

	sorted := make([]domain.VehicleGroupConstraint, len(constraints))
	copy(sorted, constraints)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := domain.DateOnly(sorted[i].ConstraintDate), domain.DateOnly(sorted[j].ConstraintDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if sorted[i].ConstraintTime != sorted[j].ConstraintTime {
			return sorted[i].ConstraintTime.IsBefore(sorted[j].ConstraintTime)
		}
		return sorted[i].VehicleGroup < sorted[j].VehicleGroup
	})

	for i := range sorted {
		if sorted[i].VehicleCount <= 0 {
			continue
		}
		groups = append(groups, allocationGroup{
			ordinal:    sorted[i].VehicleGroup,
			count:      sorted[i].VehicleCount,
			constraint: &sorted[i],
		})
	}

	return groups
}

// sortSlots сортирует слоты хронологически: дата по возрастанию, внутри даты - время
func sortSlots(slots []domain.SlotAvailability) {
	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := domain.DateOnly(slots[i].Date), domain.DateOnly(slots[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}

// sortAssignments сортирует итоговые позиции хронологически для стабильного вывода
func sortAssignments(assignments []domain.SuggestedAssignment) {
	sort.SliceStable(assignments, func(i, j int) bool {
		di, dj := domain.DateOnly(assignments[i].Date), domain.DateOnly(assignments[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if assignments[i].StartTime != assignments[j].StartTime {
			return assignments[i].StartTime.IsBefore(assignments[j].StartTime)
		}
		return assignments[i].VehicleGroup < assignments[j].VehicleGroup
	})
}
