package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// ErrNotFound is returned when a row does not exist
var ErrNotFound = interfaces.ErrNotFound

type SQLite struct {
	db      *sql.DB
	entry   *entryRepository
	counter *counterRepository
}

var _ interfaces.Repository = &SQLite{}

// New opens the database at dbPath, creating parent directories and applying
// migrations as needed
func New(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("path", dbPath))
	}

	if err := Migrate(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", dbPath))
	}
	// SQLite allows a single writer; serializing connections avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ping sqlite database", goerr.V("path", dbPath))
	}

	return &SQLite{
		db:      db,
		entry:   &entryRepository{db: db},
		counter: &counterRepository{db: db},
	}, nil
}

func (s *SQLite) Entry() interfaces.EntryRepository {
	return s.entry
}

func (s *SQLite) Counter() interfaces.CounterRepository {
	return s.counter
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
