package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"archistat/internal/dossier"
	"archistat/internal/store"

	"github.com/rs/zerolog/log"
)

// AddArchivist adds a roster member. Names are trimmed and uppercased; the
// store enforces uniqueness.
func (s *Service) AddArchivist(ctx context.Context, name string) (*dossier.Archivist, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrEmptyName
	}

	a := &dossier.Archivist{Name: name, Active: true, CreatedAt: time.Now().UTC()}
	if err := s.store.AddArchivist(ctx, a); err != nil {
		return nil, err
	}
	log.Info().Str("archivist", name).Msg("Archivist added")
	return a, nil
}

// DeactivateArchivist soft-removes a member from the selectable roster.
func (s *Service) DeactivateArchivist(ctx context.Context, name string) error {
	return s.store.SetArchivistActive(ctx, strings.ToUpper(strings.TrimSpace(name)), false)
}

// DeleteArchivist hard-deletes a member. Their entries are kept under the
// now-orphaned name.
func (s *Service) DeleteArchivist(ctx context.Context, name string) error {
	return s.store.DeleteArchivist(ctx, strings.ToUpper(strings.TrimSpace(name)))
}

// ListRoster returns the roster, optionally limited to active members.
func (s *Service) ListRoster(ctx context.Context, activeOnly bool) ([]dossier.Archivist, error) {
	return s.store.ListArchivists(ctx, activeOnly)
}

// ResetRoster replaces the whole roster with the given names. Entries
// authored by anyone no longer on the roster are reassigned to the
// inactive sentinel, which is auto-created when needed.
func (s *Service) ResetRoster(ctx context.Context, names []string) error {
	if _, err := s.store.DeleteAllArchivists(ctx); err != nil {
		return err
	}

	for _, name := range names {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		a := &dossier.Archivist{Name: name, Active: true, CreatedAt: time.Now().UTC()}
		if err := s.store.AddArchivist(ctx, a); err != nil && !errors.Is(err, store.ErrDuplicate) {
			return err
		}
	}

	reassigned, err := s.store.ReassignOrphanEntries(ctx, dossier.UnknownArchivist)
	if err != nil {
		return err
	}
	if reassigned > 0 {
		sentinel := &dossier.Archivist{Name: dossier.UnknownArchivist, Active: false, CreatedAt: time.Now().UTC()}
		if err := s.store.AddArchivist(ctx, sentinel); err != nil && !errors.Is(err, store.ErrDuplicate) {
			return err
		}
	}

	log.Info().Int("roster_size", len(names)).Int64("reassigned", reassigned).Msg("Roster reset")
	return nil
}
