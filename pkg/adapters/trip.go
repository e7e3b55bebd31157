package adapters

import (
	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/de-tools/trip-atlas/pkg/models/store"
)

// MapStoreTripToDomain converts a raw scanned row into the common trip
// shape. Null numeric columns map to zero values; the cleaner drops those
// rows afterwards (zero distance and zero passengers both fail its
// predicates), so nothing downstream ever sees a fabricated value.
func MapStoreTripToDomain(category domain.Category, row store.TripRow) domain.TripRecord {
	return domain.TripRecord{
		Category:       category,
		PickupTime:     row.PickupTime,
		DropoffTime:    row.DropoffTime,
		PickupZoneID:   int(row.PickupZoneID.Int64),
		DropoffZoneID:  int(row.DropoffZoneID.Int64),
		PassengerCount: int(row.PassengerCount.Float64),
		TripDistance:   row.TripDistance.Float64,
		FareAmount:     row.FareAmount.Float64,
		TipAmount:      row.TipAmount.Float64,
		TotalAmount:    row.TotalAmount.Float64,
	}
}
