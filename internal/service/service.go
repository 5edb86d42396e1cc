// Package service implements the data-entry and configuration operations
// sitting between the UI glue and the record store. All mutation goes
// through here; the statistics engine only ever reads.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"archistat/internal/dossier"
	"archistat/internal/stats"
	"archistat/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange     = errors.New("range start must not be after range end")
	ErrNegativeCount    = errors.New("count must not be negative")
	ErrNotPositive      = errors.New("value must be strictly positive")
	ErrPasswordTooShort = errors.New("password must be at least 3 characters")
	ErrEmptyName        = errors.New("archivist name must not be empty")
	ErrNoWorkingDays    = errors.New("range contains no working day")
)

// Service wraps the store with the validation rules of the configuration
// and data-entry surfaces.
type Service struct {
	store *store.Store
}

// New creates a Service over the given store.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// CreateEntry logs one day of work for one archivist. The archivist name is
// stored verbatim; it does not have to exist in the roster.
func (s *Service) CreateEntry(ctx context.Context, date, archivist string, count int, comment string) (*dossier.Entry, error) {
	if _, err := dossier.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}

	e := &dossier.Entry{
		ID:        uuid.NewString(),
		Date:      date,
		Archivist: archivist,
		Count:     count,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	log.Info().Str("date", date).Str("archivist", archivist).Int("count", count).Msg("Entry created")
	return e, nil
}

// CreateRangeEntries distributes a total across the working days of an
// inclusive date range: an even split, with the remainder spread one
// dossier at a time over the earliest days. Weekends get no entry.
func (s *Service) CreateRangeEntries(ctx context.Context, from, to, archivist string, total int, comment string) ([]dossier.Entry, error) {
	start, err := dossier.ParseDate(from)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := dossier.ParseDate(to)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	if total < 0 {
		return nil, ErrNegativeCount
	}

	var days []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if stats.IsWorkingDay(day) {
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return nil, ErrNoWorkingDays
	}

	base := total / len(days)
	remainder := total % len(days)

	entries := make([]dossier.Entry, 0, len(days))
	for i, day := range days {
		count := base
		if i < remainder {
			count++
		}
		e := dossier.Entry{
			ID:        uuid.NewString(),
			Date:      dossier.FormatDate(day),
			Archivist: archivist,
			Count:     count,
			Comment:   comment,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.CreateEntry(ctx, &e); err != nil {
			return nil, fmt.Errorf("creating entry for %s: %w", e.Date, err)
		}
		entries = append(entries, e)
	}

	log.Info().Str("from", from).Str("to", to).Str("archivist", archivist).
		Int("total", total).Int("days", len(days)).Msg("Range entries created")
	return entries, nil
}

// UpdateEntry edits any field of an existing entry except its identifier.
func (s *Service) UpdateEntry(ctx context.Context, e *dossier.Entry) error {
	if _, err := dossier.ParseDate(e.Date); err != nil {
		return ErrInvalidDate
	}
	if e.Count < 0 {
		return ErrNegativeCount
	}
	return s.store.UpdateEntry(ctx, e)
}

// DeleteEntry removes a single entry.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	return s.store.DeleteEntry(ctx, id)
}

// DeleteEntriesByDate removes every entry on an exact date.
func (s *Service) DeleteEntriesByDate(ctx context.Context, date string) (int64, error) {
	if _, err := dossier.ParseDate(date); err != nil {
		return 0, ErrInvalidDate
	}
	return s.store.DeleteEntriesByDate(ctx, date)
}

// DeleteEntriesByArchivist removes every entry under a literal name.
func (s *Service) DeleteEntriesByArchivist(ctx context.Context, name string) (int64, error) {
	return s.store.DeleteEntriesByArchivist(ctx, name)
}
