package store

import (
	"context"
	"errors"

	"archistat/internal/dossier"
)

// The statistics engine consumes the store through two context-free read
// methods (stats.Source). The engine is synchronous and CPU-bound; nothing
// in it blocks long enough to warrant cancellation.

// FetchEntries implements the engine's entry read surface.
func (s *Store) FetchEntries(from, to, archivist string) ([]dossier.Entry, error) {
	return s.QueryEntries(context.Background(), from, to, archivist)
}

// GetParameter implements the engine's parameter read surface. An unset key
// reads as an empty string; the engine substitutes its documented default.
func (s *Store) GetParameter(key string) (string, error) {
	value, err := s.GetParam(context.Background(), key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return value, err
}
