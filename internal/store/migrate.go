package store

import (
	"embed"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // migrate driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrate(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "create migration instance")
	}

	return m, nil
}

// MigrateUp applies every pending migration.
func MigrateUp(databaseURL string, logger *zap.SugaredLogger) error {
	m, err := newMigrate(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Infow("migration state is up to date")

			return nil
		}

		return errors.Wrap(err, "run migrations")
	}

	logger.Infow("ran migrations successfully")

	return nil
}

// MigrateDown reverts every migration, dropping all tables.
func MigrateDown(databaseURL string, logger *zap.SugaredLogger) error {
	m, err := newMigrate(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Infow("no migrations to run down")

			return nil
		}

		return errors.Wrap(err, "run down migrations")
	}

	logger.Infow("ran down migrations")

	return nil
}
