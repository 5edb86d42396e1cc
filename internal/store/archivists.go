package store

import (
	"context"
	"fmt"
	"strings"

	"archistat/internal/dossier"
)

// ListArchivists returns the roster ordered by name. With activeOnly set,
// deactivated members are filtered out.
func (s *Store) ListArchivists(ctx context.Context, activeOnly bool) ([]dossier.Archivist, error) {
	query := `SELECT name, active, created_at FROM archivists`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing archivists: %w", err)
	}
	defer rows.Close()

	var roster []dossier.Archivist
	for rows.Next() {
		var a dossier.Archivist
		if err := rows.Scan(&a.Name, &a.Active, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning archivist: %w", err)
		}
		roster = append(roster, a)
	}
	return roster, rows.Err()
}

// AddArchivist inserts a roster member. Name uniqueness is enforced by the
// primary key; duplicates surface as ErrDuplicate.
func (s *Store) AddArchivist(ctx context.Context, a *dossier.Archivist) error {
	query := `INSERT INTO archivists (name, active, created_at) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, a.Name, a.Active, a.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "constraint failed") {
			return ErrDuplicate
		}
		return fmt.Errorf("adding archivist: %w", err)
	}
	return nil
}

// SetArchivistActive flips the soft-activation flag.
func (s *Store) SetArchivistActive(ctx context.Context, name string, active bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE archivists SET active = ? WHERE name = ?`, active, name)
	if err != nil {
		return fmt.Errorf("updating archivist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating archivist: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteArchivist hard-deletes a roster member. Entries authored under the
// name are left untouched; the statistics engine keeps aggregating them by
// the literal string.
func (s *Store) DeleteArchivist(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM archivists WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting archivist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting archivist: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllArchivists wipes the roster (entries are untouched). Returns the
// number of removed members.
func (s *Store) DeleteAllArchivists(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM archivists`)
	if err != nil {
		return 0, fmt.Errorf("deleting roster: %w", err)
	}
	return res.RowsAffected()
}
