package store

import (
	"context"
	"testing"
	"time"

	"archistat/internal/dossier"

	"github.com/stretchr/testify/require"
)

func addArchivist(t *testing.T, s *Store, name string, active bool) {
	t.Helper()
	err := s.AddArchivist(context.Background(), &dossier.Archivist{
		Name: name, Active: active, CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestArchivists_AddListUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addArchivist(t, s, "MARTIN", true)
	addArchivist(t, s, "DUPONT", true)
	addArchivist(t, s, "BERNARD", false)

	err := s.AddArchivist(ctx, &dossier.Archivist{Name: "DUPONT", Active: true, CreatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, ErrDuplicate)

	all, err := s.ListArchivists(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by name.
	require.Equal(t, "BERNARD", all[0].Name)
	require.Equal(t, "DUPONT", all[1].Name)
	require.Equal(t, "MARTIN", all[2].Name)

	active, err := s.ListArchivists(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
}

func TestArchivists_Deactivate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addArchivist(t, s, "DUPONT", true)
	require.NoError(t, s.SetArchivistActive(ctx, "DUPONT", false))

	active, err := s.ListArchivists(ctx, true)
	require.NoError(t, err)
	require.Empty(t, active)

	require.ErrorIs(t, s.SetArchivistActive(ctx, "GHOST", false), ErrNotFound)
}

func TestArchivists_DeleteDoesNotCascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addArchivist(t, s, "DUPONT", true)
	insertEntry(t, s, "e1", "2025-01-06", "DUPONT", 100)

	require.NoError(t, s.DeleteArchivist(ctx, "DUPONT"))
	require.ErrorIs(t, s.DeleteArchivist(ctx, "DUPONT"), ErrNotFound)

	// The entry keeps its now-orphaned name.
	e, err := s.GetEntry(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "DUPONT", e.Archivist)
}

func TestArchivists_DeleteAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	addArchivist(t, s, "DUPONT", true)
	addArchivist(t, s, "MARTIN", true)

	n, err := s.DeleteAllArchivists(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
