package charts

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/de-tools/trip-atlas/pkg/services/analysis"
	"github.com/wcharczuk/go-chart/v2"
)

// RenderHourlyCounts draws pickup and drop-off counts per hour of day as a
// two-series line chart.
func RenderHourlyCounts(w io.Writer, title string, pickups, dropoffs [24]int) error {
	xs := make([]float64, 24)
	pys := make([]float64, 24)
	dys := make([]float64, 24)
	maxCount := 1
	for hour := 0; hour < 24; hour++ {
		xs[hour] = float64(hour)
		pys[hour] = float64(pickups[hour])
		dys[hour] = float64(dropoffs[hour])
		if pickups[hour] > maxCount {
			maxCount = pickups[hour]
		}
		if dropoffs[hour] > maxCount {
			maxCount = dropoffs[hour]
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Name: "Hour of Day",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 23,
			},
		},
		YAxis: chart.YAxis{
			Name: "Trips",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(maxCount),
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Pickups", XValues: xs, YValues: pys},
			chart.ContinuousSeries{Name: "Drop-offs", XValues: xs, YValues: dys},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

// RenderTipCorrelations draws the magnitude of each tip correlation as a
// bar chart. NaN coefficients (zero-variance columns) draw as zero-height
// bars.
func RenderTipCorrelations(w io.Writer, title string, correlations map[string]float64) error {
	bars := make([]chart.Value, 0, len(analysis.CorrelationColumns))
	for _, col := range analysis.CorrelationColumns {
		v := math.Abs(correlations[col])
		if math.IsNaN(v) {
			v = 0
		}
		bars = append(bars, chart.Value{Label: col, Value: v})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Name: "|r|",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 1,
			},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}

// SaveHourlyCounts renders the hourly counts chart to a PNG file.
func SaveHourlyCounts(path, title string, pickups, dropoffs [24]int) error {
	return saveChart(path, func(w io.Writer) error {
		return RenderHourlyCounts(w, title, pickups, dropoffs)
	})
}

// SaveTipCorrelations renders the tip correlation chart to a PNG file.
func SaveTipCorrelations(path, title string, correlations map[string]float64) error {
	return saveChart(path, func(w io.Writer) error {
		return RenderTipCorrelations(w, title, correlations)
	})
}

func saveChart(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render chart %s: %w", path, err)
	}
	return f.Close()
}
