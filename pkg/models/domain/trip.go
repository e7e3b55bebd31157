package domain

import "time"

// Category identifies which raw trip feed a record came from.
type Category string

const (
	CategoryYellow Category = "yellow"
	CategoryGreen  Category = "green"
)

// TripRecord is one taxi trip normalized to the shape shared by both feeds.
// Feed-specific extra columns are never loaded.
type TripRecord struct {
	Category       Category
	PickupTime     time.Time
	DropoffTime    time.Time
	PickupZoneID   int
	DropoffZoneID  int
	PassengerCount int
	TripDistance   float64 // miles
	FareAmount     float64
	TipAmount      float64
	TotalAmount    float64
}

// Duration is the elapsed time between pickup and drop-off.
func (t TripRecord) Duration() time.Duration {
	return t.DropoffTime.Sub(t.PickupTime)
}

// ZoneInfo describes one taxi dispatch zone. Immutable once loaded.
type ZoneInfo struct {
	ID      int
	Zone    string
	Borough string
}

// EnrichedTrip is a TripRecord with resolved pickup/drop-off zone and
// borough names attached. Read-only for everything downstream.
type EnrichedTrip struct {
	TripRecord
	PickupZone     string
	PickupBorough  string
	DropoffZone    string
	DropoffBorough string
}
