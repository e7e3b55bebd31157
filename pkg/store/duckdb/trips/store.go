package trips

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/trip-atlas/pkg/adapters"
	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/de-tools/trip-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

// Store loads raw trip records for one category from a Parquet file.
type Store interface {
	Load(ctx context.Context, category domain.Category, path string) ([]domain.TripRecord, error)
}

type tripStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &tripStore{db: db}, nil
}

// feedSchema captures where the two feeds diverge: the timestamp column
// prefixes (tpep_ for yellow, lpep_ for green). Every other column the
// pipeline needs carries the same name in both files.
type feedSchema struct {
	pickupCol  string
	dropoffCol string
}

var feedSchemas = map[domain.Category]feedSchema{
	domain.CategoryYellow: {pickupCol: "tpep_pickup_datetime", dropoffCol: "tpep_dropoff_datetime"},
	domain.CategoryGreen:  {pickupCol: "lpep_pickup_datetime", dropoffCol: "lpep_dropoff_datetime"},
}

var commonColumns = []string{
	"PULocationID",
	"DOLocationID",
	"passenger_count",
	"trip_distance",
	"fare_amount",
	"tip_amount",
	"total_amount",
}

func (s *tripStore) Load(ctx context.Context, category domain.Category, path string) ([]domain.TripRecord, error) {
	logger := zerolog.Ctx(ctx)

	sc, ok := feedSchemas[category]
	if !ok {
		return nil, fmt.Errorf("unknown trip category: %q", category)
	}

	if err := s.verifySchema(ctx, category, path, sc); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			%s,
			%s,
			"PULocationID",
			"DOLocationID",
			passenger_count,
			trip_distance,
			fare_amount,
			tip_amount,
			total_amount
		FROM read_parquet(?)
	`, sc.pickupCol, sc.dropoffCol)

	rows, err := s.db.QueryContext(ctx, query, path)
	if err != nil {
		return nil, fmt.Errorf("load %s trips: %w", category, err)
	}
	defer rows.Close()

	trips, err := scanTripRows(category, rows)
	if err != nil {
		return nil, fmt.Errorf("scan %s trips: %w", category, err)
	}

	logger.Info().
		Str("category", string(category)).
		Str("path", path).
		Int("records", len(trips)).
		Msg("loaded trip records")

	return trips, nil
}

// verifySchema probes the file with a zero-row select and checks that every
// required column is present. A missing column is a SchemaError, fatal for
// this category only.
func (s *tripStore) verifySchema(ctx context.Context, category domain.Category, path string, sc feedSchema) error {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM read_parquet(?) LIMIT 0`, path)
	if err != nil {
		return fmt.Errorf("probe %s schema: %w", category, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("probe %s schema: %w", category, err)
	}

	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}

	required := append([]string{sc.pickupCol, sc.dropoffCol}, commonColumns...)
	for _, c := range required {
		if _, ok := present[c]; !ok {
			return &domain.SchemaError{Source: string(category), Column: c}
		}
	}
	return nil
}

func scanTripRows(category domain.Category, rows *sql.Rows) ([]domain.TripRecord, error) {
	trips := make([]domain.TripRecord, 0)
	for rows.Next() {
		var row store.TripRow
		if err := rows.Scan(
			&row.PickupTime,
			&row.DropoffTime,
			&row.PickupZoneID,
			&row.DropoffZoneID,
			&row.PassengerCount,
			&row.TripDistance,
			&row.FareAmount,
			&row.TipAmount,
			&row.TotalAmount,
		); err != nil {
			return nil, err
		}
		trips = append(trips, adapters.MapStoreTripToDomain(category, row))
	}
	return trips, rows.Err()
}
