package analysis

import (
	"context"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"golang.org/x/sync/errgroup"
)

// Limits configure the ranking sizes.
type Limits struct {
	BusiestZones int
	LongestTrips int
}

func DefaultLimits() Limits {
	return Limits{BusiestZones: 5, LongestTrips: 10}
}

// Summary holds every analysis result for one category's enriched trips.
// Immutable once Run returns.
type Summary struct {
	Category        domain.Category
	TripCount       int
	ExpensiveRoutes []RouteCost
	BusiestZones    []ZoneActivity
	LongestTrips    []domain.EnrichedTrip
	PickupCrowding  *CrowdingTable
	DropoffCrowding *CrowdingTable
	TipCorrelations map[string]float64
}

// Analyzer runs the five aggregate analyses over one enriched trip
// collection. The analyses are independent pure functions, so Run computes
// them concurrently without coordination; each one writes a distinct
// Summary field.
type Analyzer struct {
	limits Limits
}

func NewAnalyzer(limits Limits) *Analyzer {
	return &Analyzer{limits: limits}
}

// Run computes all analyses. Empty input is not an error: every result is
// a well-defined empty ranking or NaN correlation.
func (a *Analyzer) Run(ctx context.Context, category domain.Category, trips []domain.EnrichedTrip) (*Summary, error) {
	summary := &Summary{
		Category:  category,
		TripCount: len(trips),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary.ExpensiveRoutes = MostExpensiveRoutes(trips)
		return nil
	})
	g.Go(func() error {
		summary.BusiestZones = BusiestPickupZones(trips, a.limits.BusiestZones)
		return nil
	})
	g.Go(func() error {
		summary.LongestTrips = LongestTrips(trips, a.limits.LongestTrips)
		return nil
	})
	g.Go(func() error {
		summary.PickupCrowding, summary.DropoffCrowding = HourlyCrowding(trips)
		return nil
	})
	g.Go(func() error {
		summary.TipCorrelations = TipCorrelations(trips)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
