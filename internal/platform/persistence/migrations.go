package persistence

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // PostgreSQL driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // File source driver
	"github.com/venturelink-platform/internal/config"
)

// RunMigrations brings the entity schema up to date before the pool opens.
// The migrations directory comes from POSTGRES_MIGRATIONS_PATH and is
// resolved relative to the working directory.
func RunMigrations(logger *slog.Logger, cfg *config.PostgresConfig) error {
	if cfg.MigrationsPath == "" {
		return errors.New("migrations path cannot be empty")
	}
	if cfg.URL == "" {
		return errors.New("database URL cannot be empty")
	}

	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	switch err := m.Up(); {
	case err == nil:
		version, dirty, verr := m.Version()
		if verr != nil {
			return fmt.Errorf("failed to read migration version: %w", verr)
		}
		logger.Info("Applied schema migrations", "version", version, "dirty", dirty)
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("Schema already up to date")
	default:
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	return nil
}
