package database

import (
	"errors"
	"fmt"

	"clinica-dental-api/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

var ErrUnknownMigrationDirection = errors.New("migration direction must be 'up' or 'down'")

// ParseMigrationDirection validates a direction given on the command line
func ParseMigrationDirection(s string) (MigrationDirection, error) {
	switch MigrationDirection(s) {
	case MigrateUp, MigrateDown:
		return MigrationDirection(s), nil
	}
	return "", fmt.Errorf("%w: got %q", ErrUnknownMigrationDirection, s)
}

// RunMigrations applies the embedded SQL migrations through the pool held by db.
// The migrate instance is not closed: closing it would close the shared *sql.DB.
func RunMigrations(db *gorm.DB, direction MigrationDirection) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownMigrationDirection, direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("Database schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", verr)
	}
	logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Infof("Migrations applied (%s)", direction)

	return nil
}
