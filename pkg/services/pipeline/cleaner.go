package pipeline

import (
	"time"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
)

// Rules are the data-quality bounds applied by Clean. The fixed predicates
// (positive distance, non-negative fare, drop-off not before pickup,
// positive passenger count) always apply; the bounds here cut off extreme
// values and, when the month is set, trips outside the reporting month.
type Rules struct {
	MaxTripDistance float64
	MaxFareAmount   float64

	// MonthStart/MonthEnd bound both timestamps to [MonthStart, MonthEnd).
	// A zero MonthStart disables the month bound.
	MonthStart time.Time
	MonthEnd   time.Time
}

// Clean returns the trips passing every rule plus the count of dropped
// rows. Rows are independent: each failing row is dropped exactly once, and
// the input is never mutated. Data-quality problems never produce an error.
func Clean(trips []domain.TripRecord, rules Rules) ([]domain.TripRecord, int) {
	kept := make([]domain.TripRecord, 0, len(trips))
	for _, t := range trips {
		if rules.valid(t) {
			kept = append(kept, t)
		}
	}
	return kept, len(trips) - len(kept)
}

func (r Rules) valid(t domain.TripRecord) bool {
	switch {
	case t.TripDistance <= 0 || t.TripDistance > r.MaxTripDistance:
		return false
	case t.FareAmount < 0 || t.FareAmount > r.MaxFareAmount:
		return false
	case t.DropoffTime.Before(t.PickupTime):
		return false
	case t.PassengerCount <= 0:
		return false
	}
	if !r.MonthStart.IsZero() {
		if !within(t.PickupTime, r.MonthStart, r.MonthEnd) {
			return false
		}
		if !within(t.DropoffTime, r.MonthStart, r.MonthEnd) {
			return false
		}
	}
	return true
}

func within(ts, start, end time.Time) bool {
	return !ts.Before(start) && ts.Before(end)
}
