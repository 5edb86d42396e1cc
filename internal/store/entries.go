package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"archistat/internal/dossier"
)

// CreateEntry inserts a processing entry. The caller assigns the identifier
// and creation timestamp.
func (s *Store) CreateEntry(ctx context.Context, e *dossier.Entry) error {
	query := `
		INSERT INTO entries (id, date, archivist, count, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.Date, e.Archivist, e.Count, e.Comment, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating entry: %w", err)
	}
	return nil
}

// GetEntry retrieves one entry by identifier.
func (s *Store) GetEntry(ctx context.Context, id string) (*dossier.Entry, error) {
	query := `
		SELECT id, date, archivist, count, comment, created_at
		FROM entries WHERE id = ?
	`
	var e dossier.Entry
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Date, &e.Archivist, &e.Count, &e.Comment, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting entry: %w", err)
	}
	return &e, nil
}

// UpdateEntry rewrites every field except the identifier and the creation
// timestamp.
func (s *Store) UpdateEntry(ctx context.Context, e *dossier.Entry) error {
	query := `
		UPDATE entries SET date = ?, archivist = ?, count = ?, comment = ?
		WHERE id = ?
	`
	res, err := s.db.ExecContext(ctx, query, e.Date, e.Archivist, e.Count, e.Comment, e.ID)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEntry removes one entry by identifier.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEntriesByDate removes every entry with an exact date match and
// returns the number of deleted rows.
func (s *Store) DeleteEntriesByDate(ctx context.Context, date string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE date = ?`, date)
	if err != nil {
		return 0, fmt.Errorf("deleting entries by date: %w", err)
	}
	return res.RowsAffected()
}

// DeleteEntriesByArchivist removes every entry authored under the given
// literal name and returns the number of deleted rows.
func (s *Store) DeleteEntriesByArchivist(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE archivist = ?`, name)
	if err != nil {
		return 0, fmt.Errorf("deleting entries by archivist: %w", err)
	}
	return res.RowsAffected()
}

// QueryEntries returns entries filtered by an optional inclusive date range
// and an optional exact archivist name. Empty bounds are open. Dates are
// canonical YYYY-MM-DD strings, so the range comparison is lexicographic.
func (s *Store) QueryEntries(ctx context.Context, from, to, archivist string) ([]dossier.Entry, error) {
	var conds []string
	var args []any
	if from != "" {
		conds = append(conds, "date >= ?")
		args = append(args, from)
	}
	if to != "" {
		conds = append(conds, "date <= ?")
		args = append(args, to)
	}
	if archivist != "" {
		conds = append(conds, "archivist = ?")
		args = append(args, archivist)
	}

	query := `SELECT id, date, archivist, count, comment, created_at FROM entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date, created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []dossier.Entry
	for rows.Next() {
		var e dossier.Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Archivist, &e.Count, &e.Comment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ReassignOrphanEntries rewrites the archivist name of every entry whose
// author is no longer in the roster, and returns the number of rows
// touched. Used by the roster reset to tag legacy entries with the
// sentinel name.
func (s *Store) ReassignOrphanEntries(ctx context.Context, to string) (int64, error) {
	query := `
		UPDATE entries SET archivist = ?
		WHERE archivist NOT IN (SELECT name FROM archivists)
	`
	res, err := s.db.ExecContext(ctx, query, to)
	if err != nil {
		return 0, fmt.Errorf("reassigning orphan entries: %w", err)
	}
	return res.RowsAffected()
}
