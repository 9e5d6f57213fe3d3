package sqlite

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending schema migrations to the database at dbPath
func Migrate(dbPath string) error {
	// A separate connection keeps the migrator from closing the repository's handle
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return goerr.Wrap(err, "failed to open migration database", goerr.V("path", dbPath))
	}
	defer db.Close()

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return goerr.Wrap(err, "failed to create sqlite migration driver")
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to create migration source")
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return goerr.Wrap(err, "failed to create migrate instance")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerr.Wrap(err, "failed to run migrations", goerr.V("path", dbPath))
	}

	return nil
}
