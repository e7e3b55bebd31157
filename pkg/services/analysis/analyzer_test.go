package analysis

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTrip builds an enriched trip with sane defaults; mutators adjust the
// fields under test.
func newTrip(mutators ...func(*domain.EnrichedTrip)) domain.EnrichedTrip {
	pickup := time.Date(2021, 3, 10, 9, 0, 0, 0, time.UTC)
	t := domain.EnrichedTrip{
		TripRecord: domain.TripRecord{
			Category:       domain.CategoryYellow,
			PickupTime:     pickup,
			DropoffTime:    pickup.Add(15 * time.Minute),
			PickupZoneID:   7,
			DropoffZoneID:  90,
			PassengerCount: 1,
			TripDistance:   3.0,
			FareAmount:     12.0,
			TipAmount:      2.0,
			TotalAmount:    15.5,
		},
		PickupZone:     "Astoria",
		PickupBorough:  "Queens",
		DropoffZone:    "Flatiron",
		DropoffBorough: "Manhattan",
	}
	for _, m := range mutators {
		m(&t)
	}
	return t
}

func TestAnalyzer_Run(t *testing.T) {
	trips := []domain.EnrichedTrip{
		newTrip(),
		newTrip(func(tr *domain.EnrichedTrip) { tr.TotalAmount = 40; tr.TripDistance = 11 }),
		newTrip(func(tr *domain.EnrichedTrip) { tr.PickupZoneID = 90; tr.PickupZone = "Flatiron" }),
	}

	summary, err := NewAnalyzer(DefaultLimits()).Run(context.Background(), domain.CategoryYellow, trips)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryYellow, summary.Category)
	assert.Equal(t, 3, summary.TripCount)
	assert.NotEmpty(t, summary.ExpensiveRoutes)
	assert.NotEmpty(t, summary.BusiestZones)
	assert.NotEmpty(t, summary.LongestTrips)
	require.NotNil(t, summary.PickupCrowding)
	require.NotNil(t, summary.DropoffCrowding)
	assert.Len(t, summary.TipCorrelations, len(CorrelationColumns))
}

func TestAnalyzer_Run_EmptyInput(t *testing.T) {
	summary, err := NewAnalyzer(DefaultLimits()).Run(context.Background(), domain.CategoryGreen, nil)
	require.NoError(t, err)

	assert.Zero(t, summary.TripCount)
	assert.Empty(t, summary.ExpensiveRoutes)
	assert.Empty(t, summary.BusiestZones)
	assert.Empty(t, summary.LongestTrips)
	assert.Empty(t, summary.PickupCrowding.Cells)
	assert.Empty(t, summary.DropoffCrowding.Cells)
	for col, r := range summary.TipCorrelations {
		assert.True(t, math.IsNaN(r), "expected NaN for %s on empty input", col)
	}
}
