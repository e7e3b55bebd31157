package pipeline

import (
	"testing"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/de-tools/trip-atlas/pkg/services/zones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookup() *zones.Lookup {
	return zones.Build([]domain.ZoneInfo{
		{ID: 7, Zone: "Astoria", Borough: "Queens"},
		{ID: 90, Zone: "Flatiron", Borough: "Manhattan"},
	})
}

func TestEnrich_ResolvesZones(t *testing.T) {
	trip := validTrip() // pickup 7, dropoff 90

	enriched := Enrich([]domain.TripRecord{trip}, testLookup())

	require.Len(t, enriched, 1)
	assert.Equal(t, "Astoria", enriched[0].PickupZone)
	assert.Equal(t, "Queens", enriched[0].PickupBorough)
	assert.Equal(t, "Flatiron", enriched[0].DropoffZone)
	assert.Equal(t, "Manhattan", enriched[0].DropoffBorough)
	assert.Equal(t, trip, enriched[0].TripRecord)
}

func TestEnrich_UnknownZoneKeepsTrip(t *testing.T) {
	trip := validTrip()
	trip.PickupZoneID = 9999

	enriched := Enrich([]domain.TripRecord{trip}, testLookup())

	require.Len(t, enriched, 1)
	assert.Equal(t, zones.UnknownName, enriched[0].PickupZone)
	assert.Equal(t, zones.UnknownName, enriched[0].PickupBorough)
	assert.Equal(t, "Flatiron", enriched[0].DropoffZone)
}

func TestEnrich_OrderPreserving(t *testing.T) {
	first := validTrip()
	second := validTrip()
	second.PickupZoneID = 90
	second.DropoffZoneID = 7
	third := validTrip()
	third.PickupZoneID = 9999

	input := []domain.TripRecord{first, second, third}
	enriched := Enrich(input, testLookup())

	require.Len(t, enriched, len(input))
	for i := range input {
		assert.Equal(t, input[i], enriched[i].TripRecord)
	}

	// Enrichment is pure: a second pass yields identical output.
	assert.Equal(t, enriched, Enrich(input, testLookup()))
}

func TestEnrich_EmptyInput(t *testing.T) {
	assert.Empty(t, Enrich(nil, testLookup()))
}
