package analysis

import (
	"sort"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
)

// RouteCost is the aggregate cost of one (pickup, drop-off) zone pair.
type RouteCost struct {
	PickupZoneID  int
	DropoffZoneID int
	PickupZone    string
	DropoffZone   string
	MeanTotal     float64
	TripCount     int
}

// MostExpensiveRoutes groups trips by (pickup, drop-off) zone pair and
// ranks the pairs by mean total amount, descending. Ties break by trip
// count descending, then by pickup and drop-off zone id ascending so the
// ranking is deterministic.
func MostExpensiveRoutes(trips []domain.EnrichedTrip) []RouteCost {
	type key struct {
		pu, do int
	}
	type agg struct {
		sum   float64
		count int
		route RouteCost
	}

	groups := make(map[key]*agg)
	for _, t := range trips {
		k := key{pu: t.PickupZoneID, do: t.DropoffZoneID}
		g, ok := groups[k]
		if !ok {
			g = &agg{route: RouteCost{
				PickupZoneID:  t.PickupZoneID,
				DropoffZoneID: t.DropoffZoneID,
				PickupZone:    t.PickupZone,
				DropoffZone:   t.DropoffZone,
			}}
			groups[k] = g
		}
		g.sum += t.TotalAmount
		g.count++
	}

	routes := make([]RouteCost, 0, len(groups))
	for _, g := range groups {
		g.route.MeanTotal = g.sum / float64(g.count)
		g.route.TripCount = g.count
		routes = append(routes, g.route)
	}

	sort.Slice(routes, func(i, j int) bool {
		a, b := routes[i], routes[j]
		if a.MeanTotal != b.MeanTotal {
			return a.MeanTotal > b.MeanTotal
		}
		if a.TripCount != b.TripCount {
			return a.TripCount > b.TripCount
		}
		if a.PickupZoneID != b.PickupZoneID {
			return a.PickupZoneID < b.PickupZoneID
		}
		return a.DropoffZoneID < b.DropoffZoneID
	})

	return routes
}
