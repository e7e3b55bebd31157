package zones

import (
	"github.com/de-tools/trip-atlas/pkg/models/domain"
)

// UnknownName is the sentinel zone/borough name attached to trips whose
// zone id is absent from the lookup. Trip feeds regularly carry ids that
// were never assigned a zone (out-of-service and N/A codes), so a miss is
// not an error.
const UnknownName = "Unknown"

// Unknown returns the sentinel ZoneInfo for an unresolved zone id.
func Unknown(id int) domain.ZoneInfo {
	return domain.ZoneInfo{ID: id, Zone: UnknownName, Borough: UnknownName}
}

// Lookup maps zone ids to zone metadata. It is immutable after
// construction and safe for concurrent readers.
type Lookup struct {
	zones map[int]domain.ZoneInfo
}

// Build constructs a Lookup from the loaded zone rows. Duplicate ids are
// resolved last-write-wins; use BuildStrict when duplicates should fail.
func Build(rows []domain.ZoneInfo) *Lookup {
	zones := make(map[int]domain.ZoneInfo, len(rows))
	for _, z := range rows {
		zones[z.ID] = z
	}
	return &Lookup{zones: zones}
}

// BuildStrict constructs a Lookup and returns a DuplicateZoneError if any
// zone id appears more than once.
func BuildStrict(rows []domain.ZoneInfo) (*Lookup, error) {
	zones := make(map[int]domain.ZoneInfo, len(rows))
	for _, z := range rows {
		if _, exists := zones[z.ID]; exists {
			return nil, &domain.DuplicateZoneError{ZoneID: z.ID}
		}
		zones[z.ID] = z
	}
	return &Lookup{zones: zones}, nil
}

// Resolve returns the ZoneInfo for id, or the Unknown sentinel when the id
// is not in the lookup. It never fails.
func (l *Lookup) Resolve(id int) domain.ZoneInfo {
	if z, ok := l.zones[id]; ok {
		return z
	}
	return Unknown(id)
}

// Len reports the number of distinct zones in the lookup.
func (l *Lookup) Len() int {
	return len(l.zones)
}
