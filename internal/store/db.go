// Package store is the Postgres persistence layer: connection, migrations,
// seeding and the per-resource queries.
package store

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/jpillora/backoff"
	_ "github.com/lib/pq" // postgres driver
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxConnectAttempts = 10

type Store struct {
	db *sqlx.DB
	sq squirrel.StatementBuilderType
}

func New(db *sqlx.DB) *Store {
	return &Store{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Connect opens the pool, retrying with backoff while the database is not
// accepting connections yet.
func Connect(ctx context.Context, databaseURL string, logger *zap.SugaredLogger) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	b := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    5 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	for attempt := 1; ; attempt++ {
		db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
		if err == nil {
			db.SetMaxOpenConns(10)
			db.SetMaxIdleConns(5)
			logger.Infow("connected to database", "attempt", attempt)

			return db, nil
		}

		if attempt == maxConnectAttempts {
			return nil, errors.Wrapf(err, "connect to database after %d attempts", attempt)
		}

		wait := b.Duration()
		logger.Warnw("database not ready", "attempt", attempt, "retry_in", wait.String(), "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}
