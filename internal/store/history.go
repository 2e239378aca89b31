package store

import (
	"database/sql"
	"slices"
	"time"

	"github.com/footprint-tools/roped/internal/domain"
)

// Record appends one dispatched command.
func (s *Store) Record(entry domain.HistoryEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO command_history
		 (session, line, position, command, status_id, error_kind, message, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Session,
		entry.Line,
		entry.Position,
		entry.Command,
		int(entry.Status),
		entry.ErrorKind,
		entry.Message,
		entry.Timestamp.Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns up to limit entries, newest first. A limit of zero or
// less returns every entry.
func (s *Store) Recent(limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT
			id,
			session,
			line,
			position,
			command,
			status_id,
			error_kind,
			message,
			timestamp
		FROM command_history
		ORDER BY id DESC
	`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Lines returns up to limit distinct input lines, oldest first, as recalled
// by the interactive prompt. A repeated line counts at its latest use.
func (s *Store) Lines(limit int) ([]string, error) {
	query := `
		SELECT line
		FROM command_history
		GROUP BY line
		ORDER BY MAX(id) DESC
	`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(lines)
	return lines, nil
}

// Prune keeps the newest keep entries and deletes the rest.
func (s *Store) Prune(keep int) (int64, error) {
	result, err := s.db.Exec(
		`DELETE FROM command_history
		 WHERE id NOT IN (SELECT id FROM command_history ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// scanEntry scans a single row into a domain.HistoryEntry.
func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e        domain.HistoryEntry
		statusID int
		ts       string
	)

	if err := rows.Scan(
		&e.ID,
		&e.Session,
		&e.Line,
		&e.Position,
		&e.Command,
		&statusID,
		&e.ErrorKind,
		&e.Message,
		&ts,
	); err != nil {
		return domain.HistoryEntry{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	e.Status = domain.HistoryStatus(statusID)
	e.Timestamp = t

	return e, nil
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
