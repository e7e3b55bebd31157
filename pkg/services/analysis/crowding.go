package analysis

import (
	"sort"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
)

// CrowdingCell is the trip count for one (zone, hour-of-day) pair.
type CrowdingCell struct {
	ZoneID int
	Zone   string
	Hour   int // 0-23
	Count  int
}

// CrowdingTable counts trips per (zone, hour-of-day). Cells with a zero
// count are omitted from Cells; Count returns 0 for them, so every hour
// 0-23 is representable for every zone.
type CrowdingTable struct {
	// Cells is ordered by zone id, then hour, for deterministic output.
	Cells []CrowdingCell

	index map[zoneHour]int
}

type zoneHour struct {
	zone, hour int
}

// Count returns the trips observed for (zoneID, hour), zero when the cell
// was never seen.
func (t *CrowdingTable) Count(zoneID, hour int) int {
	if i, ok := t.index[zoneHour{zone: zoneID, hour: hour}]; ok {
		return t.Cells[i].Count
	}
	return 0
}

// HourlyTotals sums the table across zones, one total per hour of day.
func (t *CrowdingTable) HourlyTotals() [24]int {
	var totals [24]int
	for _, c := range t.Cells {
		totals[c.Hour] += c.Count
	}
	return totals
}

// HourlyCrowding builds two crowding tables, one keyed by pickup zone and
// pickup hour, one keyed by drop-off zone and drop-off hour. Hours come
// straight from the source timestamps; no timezone conversion is applied.
func HourlyCrowding(trips []domain.EnrichedTrip) (pickup, dropoff *CrowdingTable) {
	puCounts := make(map[zoneHour]*CrowdingCell)
	doCounts := make(map[zoneHour]*CrowdingCell)

	for _, t := range trips {
		bump(puCounts, t.PickupZoneID, t.PickupZone, t.PickupTime.Hour())
		bump(doCounts, t.DropoffZoneID, t.DropoffZone, t.DropoffTime.Hour())
	}

	return buildTable(puCounts), buildTable(doCounts)
}

func bump(counts map[zoneHour]*CrowdingCell, zoneID int, zone string, hour int) {
	k := zoneHour{zone: zoneID, hour: hour}
	c, ok := counts[k]
	if !ok {
		c = &CrowdingCell{ZoneID: zoneID, Zone: zone, Hour: hour}
		counts[k] = c
	}
	c.Count++
}

func buildTable(counts map[zoneHour]*CrowdingCell) *CrowdingTable {
	cells := make([]CrowdingCell, 0, len(counts))
	for _, c := range counts {
		cells = append(cells, *c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].ZoneID != cells[j].ZoneID {
			return cells[i].ZoneID < cells[j].ZoneID
		}
		return cells[i].Hour < cells[j].Hour
	})

	index := make(map[zoneHour]int, len(cells))
	for i, c := range cells {
		index[zoneHour{zone: c.ZoneID, hour: c.Hour}] = i
	}
	return &CrowdingTable{Cells: cells, index: index}
}
