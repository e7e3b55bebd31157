package adapters

import (
	"fmt"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/de-tools/trip-atlas/pkg/services/analysis"
)

// maxRouteRows caps the route ranking section; the full ranking covers
// every zone pair and would swamp the report.
const maxRouteRows = 10

// MapSummaryToReport renders an analysis summary into the generic report
// shape consumed by the table reporter.
func MapSummaryToReport(s *analysis.Summary, period domain.TimePeriod) *domain.Report {
	return &domain.Report{
		Title:    fmt.Sprintf("%s taxi trip analysis", s.Category),
		Category: s.Category,
		Period:   period,
		Sections: []domain.ReportSection{
			routesSection(s),
			busiestSection(s),
			longestSection(s),
			hourlySection(s),
			correlationSection(s),
		},
	}
}

func routesSection(s *analysis.Summary) domain.ReportSection {
	routes := s.ExpensiveRoutes
	if len(routes) > maxRouteRows {
		routes = routes[:maxRouteRows]
	}

	details := make([]domain.ReportDetail, 0, len(routes))
	for _, r := range routes {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s -> %s", r.PickupZone, r.DropoffZone),
			Value:       fmt.Sprintf("%.2f", r.MeanTotal),
			Unit:        "USD",
			Description: fmt.Sprintf("%d trips, mean total amount", r.TripCount),
		})
	}
	return domain.ReportSection{
		Title: "Most Expensive Routes",
		Summary: map[string]interface{}{
			"Distinct routes": len(s.ExpensiveRoutes),
		},
		Details: details,
	}
}

func busiestSection(s *analysis.Summary) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(s.BusiestZones))
	for _, z := range s.BusiestZones {
		details = append(details, domain.ReportDetail{
			Name:        z.Zone,
			Value:       z.TripCount,
			Unit:        "trips",
			Description: fmt.Sprintf("zone id %d", z.ZoneID),
		})
	}
	return domain.ReportSection{
		Title:   "Busiest Pickup Zones",
		Details: details,
	}
}

func longestSection(s *analysis.Summary) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(s.LongestTrips))
	for _, t := range s.LongestTrips {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("%s -> %s", t.PickupZone, t.DropoffZone),
			Value:       fmt.Sprintf("%.2f", t.TripDistance),
			Unit:        "miles",
			Description: fmt.Sprintf("picked up %s", t.PickupTime.Format("2006-01-02 15:04")),
		})
	}
	return domain.ReportSection{
		Title:   "Longest Trips",
		Details: details,
	}
}

func hourlySection(s *analysis.Summary) domain.ReportSection {
	pickups := s.PickupCrowding.HourlyTotals()
	dropoffs := s.DropoffCrowding.HourlyTotals()

	details := make([]domain.ReportDetail, 0, 24)
	for hour := 0; hour < 24; hour++ {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("Hour %02d", hour),
			Value:       fmt.Sprintf("%d / %d", pickups[hour], dropoffs[hour]),
			Description: "pickups / drop-offs",
		})
	}
	return domain.ReportSection{
		Title: "Hourly Trip Counts",
		Summary: map[string]interface{}{
			"Pickup zone-hour cells":   len(s.PickupCrowding.Cells),
			"Drop-off zone-hour cells": len(s.DropoffCrowding.Cells),
		},
		Details: details,
	}
}

func correlationSection(s *analysis.Summary) domain.ReportSection {
	details := make([]domain.ReportDetail, 0, len(analysis.CorrelationColumns))
	for _, col := range analysis.CorrelationColumns {
		details = append(details, domain.ReportDetail{
			Name:        col,
			Value:       fmt.Sprintf("%.4f", s.TipCorrelations[col]),
			Description: "Pearson r against tip_amount",
		})
	}
	return domain.ReportSection{
		Title:   "Tip Correlations",
		Details: details,
	}
}
