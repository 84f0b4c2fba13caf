package persistence

import (
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDB_Pool(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	// A nil pool is enough here; opening a real one needs a live server
	var nilPool *pgxpool.Pool
	db := &PostgresDB{
		pool:   nilPool,
		logger: logger,
	}
	assert.Equal(t, nilPool, db.Pool(), "Pool() should hand back the pool the wrapper was built with")
}

func TestQuerier_SatisfiedByMockPool(t *testing.T) {
	// The repositories accept Querier so pgxmock pools can stand in for the
	// real pool in their tests
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	var q Querier = mockPool
	assert.NotNil(t, q)
}
