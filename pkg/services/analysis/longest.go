package analysis

import (
	"sort"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
)

// LongestTrips returns the limit longest trips by distance, descending.
// Ties break by earliest pickup time. The input slice is not reordered.
func LongestTrips(trips []domain.EnrichedTrip, limit int) []domain.EnrichedTrip {
	ranked := make([]domain.EnrichedTrip, len(trips))
	copy(ranked, trips)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TripDistance != ranked[j].TripDistance {
			return ranked[i].TripDistance > ranked[j].TripDistance
		}
		return ranked[i].PickupTime.Before(ranked[j].PickupTime)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
