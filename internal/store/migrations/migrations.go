// Package migrations brings the history database schema up to date from
// the SQL files embedded under sql/, named NN_description.sql.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one schema file.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Name returns the file name the migration was loaded from, without extension.
func (m Migration) Name() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const schemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations sorted by version.
func Load() ([]Migration, error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(names))
	for _, name := range names {
		m, err := loadFile(name)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })

	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("duplicate version %d: %s and %s",
				all[i].Version, all[i-1].Name(), all[i].Name())
		}
	}
	return all, nil
}

func loadFile(name string) (Migration, error) {
	base := strings.TrimSuffix(path.Base(name), ".sql")

	prefix, description, ok := strings.Cut(base, "_")
	if !ok || description == "" {
		return Migration{}, fmt.Errorf("%s: expected NN_description.sql", name)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return Migration{}, fmt.Errorf("%s: invalid version: %w", name, err)
	}

	content, err := sqlFiles.ReadFile(name)
	if err != nil {
		return Migration{}, fmt.Errorf("read %s: %w", name, err)
	}

	return Migration{Version: version, Description: description, SQL: string(content)}, nil
}

// Run applies every pending migration, each in its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name(), err)
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}

// CurrentVersion returns the highest applied version, 0 for a new database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(schemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the migrations newer than the current version.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	i, _ := slices.BinarySearchFunc(all, current+1, func(m Migration, v int) int {
		return cmp.Compare(m.Version, v)
	})
	return all[i:], nil
}
