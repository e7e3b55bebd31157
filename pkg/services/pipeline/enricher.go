package pipeline

import (
	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/de-tools/trip-atlas/pkg/services/zones"
)

// Enrich attaches zone and borough names to every trip via two lookups
// (pickup and drop-off). Left-join semantics: the output has the same
// length and order as the input, and unresolved ids get the Unknown
// sentinel instead of failing the row.
func Enrich(trips []domain.TripRecord, lookup *zones.Lookup) []domain.EnrichedTrip {
	enriched := make([]domain.EnrichedTrip, 0, len(trips))
	for _, t := range trips {
		pu := lookup.Resolve(t.PickupZoneID)
		do := lookup.Resolve(t.DropoffZoneID)
		enriched = append(enriched, domain.EnrichedTrip{
			TripRecord:     t,
			PickupZone:     pu.Zone,
			PickupBorough:  pu.Borough,
			DropoffZone:    do.Zone,
			DropoffBorough: do.Borough,
		})
	}
	return enriched
}
