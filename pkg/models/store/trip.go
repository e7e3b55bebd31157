package store

import (
	"database/sql"
	"time"
)

// TripRow is one raw trip record as scanned from DuckDB, before mapping to
// the domain shape. Numeric columns are nullable in the source Parquet
// files (passenger_count in particular), so they scan through sql.Null
// types; the adapter decides what nulls become.
type TripRow struct {
	PickupTime     time.Time
	DropoffTime    time.Time
	PickupZoneID   sql.NullInt64
	DropoffZoneID  sql.NullInt64
	PassengerCount sql.NullFloat64
	TripDistance   sql.NullFloat64
	FareAmount     sql.NullFloat64
	TipAmount      sql.NullFloat64
	TotalAmount    sql.NullFloat64
}
