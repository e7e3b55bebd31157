package analysis

import (
	"testing"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostExpensiveRoutes(t *testing.T) {
	trips := []domain.EnrichedTrip{
		// route 7 -> 90: totals 10 and 30, mean 20
		newTrip(func(tr *domain.EnrichedTrip) { tr.TotalAmount = 10 }),
		newTrip(func(tr *domain.EnrichedTrip) { tr.TotalAmount = 30 }),
		// route 90 -> 7: one trip, total 50
		newTrip(func(tr *domain.EnrichedTrip) {
			tr.PickupZoneID, tr.DropoffZoneID = 90, 7
			tr.PickupZone, tr.DropoffZone = "Flatiron", "Astoria"
			tr.TotalAmount = 50
		}),
	}

	routes := MostExpensiveRoutes(trips)
	require.Len(t, routes, 2)

	assert.Equal(t, 90, routes[0].PickupZoneID)
	assert.Equal(t, 50.0, routes[0].MeanTotal)
	assert.Equal(t, 1, routes[0].TripCount)

	assert.Equal(t, 7, routes[1].PickupZoneID)
	assert.Equal(t, 20.0, routes[1].MeanTotal)
	assert.Equal(t, 2, routes[1].TripCount)
	assert.Equal(t, "Astoria", routes[1].PickupZone)
	assert.Equal(t, "Flatiron", routes[1].DropoffZone)
}

func TestMostExpensiveRoutes_TieBreaking(t *testing.T) {
	// Equal means: the route with more trips ranks first; a full tie
	// orders by zone id pair.
	trips := []domain.EnrichedTrip{
		newTrip(func(tr *domain.EnrichedTrip) { tr.PickupZoneID, tr.DropoffZoneID = 5, 6; tr.TotalAmount = 20 }),
		newTrip(func(tr *domain.EnrichedTrip) { tr.PickupZoneID, tr.DropoffZoneID = 1, 2; tr.TotalAmount = 20 }),
		newTrip(func(tr *domain.EnrichedTrip) { tr.PickupZoneID, tr.DropoffZoneID = 1, 2; tr.TotalAmount = 20 }),
		newTrip(func(tr *domain.EnrichedTrip) { tr.PickupZoneID, tr.DropoffZoneID = 3, 4; tr.TotalAmount = 20 }),
	}

	routes := MostExpensiveRoutes(trips)
	require.Len(t, routes, 3)

	assert.Equal(t, [2]int{1, 2}, [2]int{routes[0].PickupZoneID, routes[0].DropoffZoneID})
	assert.Equal(t, 2, routes[0].TripCount)
	assert.Equal(t, [2]int{3, 4}, [2]int{routes[1].PickupZoneID, routes[1].DropoffZoneID})
	assert.Equal(t, [2]int{5, 6}, [2]int{routes[2].PickupZoneID, routes[2].DropoffZoneID})
}

func TestMostExpensiveRoutes_Empty(t *testing.T) {
	assert.Empty(t, MostExpensiveRoutes(nil))
}
