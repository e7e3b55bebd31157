package analysis

import (
	"sort"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
)

// ZoneActivity is the trip count observed for one pickup zone.
type ZoneActivity struct {
	ZoneID    int
	Zone      string
	TripCount int
}

// BusiestPickupZones counts trips per pickup zone and returns the limit
// busiest ones, counts descending, ties by zone id ascending. Fewer than
// limit distinct zones returns all of them.
func BusiestPickupZones(trips []domain.EnrichedTrip, limit int) []ZoneActivity {
	counts := make(map[int]*ZoneActivity)
	for _, t := range trips {
		a, ok := counts[t.PickupZoneID]
		if !ok {
			a = &ZoneActivity{ZoneID: t.PickupZoneID, Zone: t.PickupZone}
			counts[t.PickupZoneID] = a
		}
		a.TripCount++
	}

	zones := make([]ZoneActivity, 0, len(counts))
	for _, a := range counts {
		zones = append(zones, *a)
	}

	sort.Slice(zones, func(i, j int) bool {
		if zones[i].TripCount != zones[j].TripCount {
			return zones[i].TripCount > zones[j].TripCount
		}
		return zones[i].ZoneID < zones[j].ZoneID
	})

	if len(zones) > limit {
		zones = zones[:limit]
	}
	return zones
}
