package zones

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var probeQuery = regexp.QuoteMeta(`SELECT * FROM read_csv(?, header = true) LIMIT 0`)

func TestZoneStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"LocationID", "Borough", "Zone", "service_zone"}
	mock.ExpectQuery(probeQuery).
		WithArgs("zones.csv").
		WillReturnRows(sqlmock.NewRows(cols))

	rows := sqlmock.NewRows([]string{"LocationID", "Zone", "Borough"}).
		AddRow(int64(7), "Astoria", "Queens").
		AddRow(int64(264), nil, nil)

	mock.ExpectQuery(`SELECT "LocationID", "Zone", "Borough"`).
		WithArgs("zones.csv").
		WillReturnRows(rows)

	store, err := NewStore(db)
	require.NoError(t, err)

	zones, err := store.Load(context.Background(), "zones.csv")
	require.NoError(t, err)
	require.Len(t, zones, 2)

	assert.Equal(t, domain.ZoneInfo{ID: 7, Zone: "Astoria", Borough: "Queens"}, zones[0])

	// Null names scan as empty strings rather than failing the load.
	assert.Equal(t, 264, zones[1].ID)
	assert.Empty(t, zones[1].Zone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneStore_Load_MissingColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(probeQuery).
		WithArgs("zones.csv").
		WillReturnRows(sqlmock.NewRows([]string{"LocationID", "Zone"}))

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "zones.csv")
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "zone_lookup", schemaErr.Source)
	assert.Equal(t, "Borough", schemaErr.Column)

	assert.NoError(t, mock.ExpectationsWereMet())
}
