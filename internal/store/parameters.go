package store

import (
	"context"
	"database/sql"
	"fmt"

	"archistat/internal/dossier"
)

// GetParam returns the stored value for a key, or ErrNotFound.
func (s *Store) GetParam(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM parameters WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting parameter %s: %w", key, err)
	}
	return value, nil
}

// SetParam upserts a parameter. Parameters are never deleted.
func (s *Store) SetParam(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO parameters (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("setting parameter %s: %w", key, err)
	}
	return nil
}

// SeedDefaults inserts the documented defaults for any parameter not yet
// present. Existing values are left untouched, so it is safe on every
// startup.
func (s *Store) SeedDefaults(ctx context.Context) error {
	defaults := dossier.DefaultSettings()
	seed := map[string]string{
		dossier.ParamInitialStock:  fmt.Sprintf("%d", defaults.InitialStock),
		dossier.ParamDailyTarget:   fmt.Sprintf("%d", defaults.DailyTarget),
		dossier.ParamThreshold:     fmt.Sprintf("%g", defaults.Threshold),
		dossier.ParamAdminPassword: "admin",
		dossier.ParamAppPassword:   "cna",
	}

	for key, value := range seed {
		query := `INSERT INTO parameters (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`
		if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("seeding parameter %s: %w", key, err)
		}
	}
	return nil
}
