package cmd

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stubDatabase(t *testing.T, connectErr error) *[]string {
	t.Helper()

	var calls []string
	origConnect, origMigrate := connectDB, migrateUp
	t.Cleanup(func() { connectDB, migrateUp = origConnect, origMigrate })

	connectDB = func(ctx context.Context, databaseURL string, logger *zap.SugaredLogger) (*sqlx.DB, error) {
		calls = append(calls, "connect")
		if connectErr != nil {
			return nil, connectErr
		}

		db, _, err := sqlmock.New()
		require.NoError(t, err)

		return sqlx.NewDb(db, "postgres"), nil
	}
	migrateUp = func(databaseURL string, logger *zap.SugaredLogger) error {
		calls = append(calls, "migrate")

		return nil
	}

	return &calls
}

func TestOpenStoreMigratesAfterConnect(t *testing.T) {
	calls := stubDatabase(t, nil)

	s, err := openStore(context.Background(), zap.NewNop().Sugar(), true)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	assert.Equal(t, []string{"connect", "migrate"}, *calls)
}

func TestOpenStoreSkipsMigrations(t *testing.T) {
	calls := stubDatabase(t, nil)

	s, err := openStore(context.Background(), zap.NewNop().Sugar(), false)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	assert.Equal(t, []string{"connect"}, *calls)
}

func TestOpenStoreConnectFailureSkipsMigrations(t *testing.T) {
	calls := stubDatabase(t, errors.New("connection refused"))

	_, err := openStore(context.Background(), zap.NewNop().Sugar(), true)
	assert.Error(t, err)
	assert.Equal(t, []string{"connect"}, *calls)
}
