package zones

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const source = "zone_lookup"

var requiredColumns = []string{"LocationID", "Zone", "Borough"}

// Store loads the taxi zone lookup table from a delimited text file.
type Store interface {
	Load(ctx context.Context, path string) ([]domain.ZoneInfo, error)
}

type zoneStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &zoneStore{db: db}, nil
}

func (s *zoneStore) Load(ctx context.Context, path string) ([]domain.ZoneInfo, error) {
	logger := zerolog.Ctx(ctx)

	if err := s.verifySchema(ctx, path); err != nil {
		return nil, err
	}

	query := `
		SELECT "LocationID", "Zone", "Borough"
		FROM read_csv(?, header = true)
	`
	rows, err := s.db.QueryContext(ctx, query, path)
	if err != nil {
		return nil, fmt.Errorf("load zone lookup: %w", err)
	}
	defer rows.Close()

	zones := make([]domain.ZoneInfo, 0)
	for rows.Next() {
		var (
			id            int
			zone, borough sql.NullString
		)
		if err := rows.Scan(&id, &zone, &borough); err != nil {
			return nil, fmt.Errorf("scan zone lookup: %w", err)
		}
		zones = append(zones, domain.ZoneInfo{
			ID:      id,
			Zone:    zone.String,
			Borough: borough.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan zone lookup: %w", err)
	}

	logger.Info().
		Str("path", path).
		Int("zones", len(zones)).
		Msg("loaded zone lookup")

	return zones, nil
}

func (s *zoneStore) verifySchema(ctx context.Context, path string) error {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM read_csv(?, header = true) LIMIT 0`, path)
	if err != nil {
		return fmt.Errorf("probe zone lookup schema: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("probe zone lookup schema: %w", err)
	}

	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c] = struct{}{}
	}
	for _, c := range requiredColumns {
		if _, ok := present[c]; !ok {
			return &domain.SchemaError{Source: source, Column: c}
		}
	}
	return nil
}
