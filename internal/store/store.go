// Package store keeps the command history in a SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/roped/internal/log"
	"github.com/footprint-tools/roped/internal/store/migrations"
)

const memoryPath = ":memory:"

// Store wraps a SQLite database connection for the command history.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path and runs any pending migrations.
func New(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if path == memoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug("store: database ready")
	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing, migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configureSQLite enables WAL journaling for file databases and waits on
// locks held by other consoles instead of failing immediately.
func configureSQLite(db *sql.DB, path string) error {
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return err
	}
	if path == memoryPath {
		return nil
	}
	_, err := db.Exec("PRAGMA journal_mode = WAL")
	return err
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == memoryPath {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}
