package analysis

import (
	"math"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
)

// Correlation column names, in report order.
const (
	ColTripDistance    = "trip_distance"
	ColFareAmount      = "fare_amount"
	ColTotalAmount     = "total_amount"
	ColPassengerCount  = "passenger_count"
	ColTripDurationSec = "trip_duration_seconds"
)

// CorrelationColumns lists the numeric columns correlated against
// tip_amount, in the order they are reported.
var CorrelationColumns = []string{
	ColTripDistance,
	ColFareAmount,
	ColTotalAmount,
	ColPassengerCount,
	ColTripDurationSec,
}

var columnValue = map[string]func(domain.EnrichedTrip) float64{
	ColTripDistance:    func(t domain.EnrichedTrip) float64 { return t.TripDistance },
	ColFareAmount:      func(t domain.EnrichedTrip) float64 { return t.FareAmount },
	ColTotalAmount:     func(t domain.EnrichedTrip) float64 { return t.TotalAmount },
	ColPassengerCount:  func(t domain.EnrichedTrip) float64 { return float64(t.PassengerCount) },
	ColTripDurationSec: func(t domain.EnrichedTrip) float64 { return t.Duration().Seconds() },
}

// TipCorrelations computes Pearson's product-moment coefficient between
// tip_amount and each column in CorrelationColumns. Zero-variance columns
// and empty input yield NaN, never an error.
func TipCorrelations(trips []domain.EnrichedTrip) map[string]float64 {
	tips := make([]float64, len(trips))
	for i, t := range trips {
		tips[i] = t.TipAmount
	}

	result := make(map[string]float64, len(CorrelationColumns))
	for _, col := range CorrelationColumns {
		value := columnValue[col]
		xs := make([]float64, len(trips))
		for i, t := range trips {
			xs[i] = value(t)
		}
		result[col] = pearson(tips, xs)
	}
	return result
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
