package domain

import "fmt"

// SchemaError reports a required column missing from an input table.
// It is fatal for the category being loaded; other categories keep running.
type SchemaError struct {
	Source string // "yellow", "green" or "zone_lookup"
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input %q: required column %q is missing", e.Source, e.Column)
}

// DuplicateZoneError reports a zone id seen more than once while building
// the lookup in strict mode.
type DuplicateZoneError struct {
	ZoneID int
}

func (e *DuplicateZoneError) Error() string {
	return fmt.Sprintf("zone lookup: duplicate zone id %d", e.ZoneID)
}
