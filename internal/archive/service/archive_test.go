package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchiveSearchAndCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ArchiveService{Store: st}

	author := seedUser(t, st, "gale@example.com", "pw")

	titles := []string{"Quarterly report", "Annual report", "Meeting minutes"}
	for _, title := range titles {
		_, err := svc.Create(ctx, title, "", author.ID)
		require.NoError(t, err)
	}

	t.Run("substring search", func(t *testing.T) {
		got, err := svc.Search(ctx, "report", 1, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("pagination clamps", func(t *testing.T) {
		got, err := svc.Search(ctx, "", 0, -5)
		require.NoError(t, err)
		require.Len(t, got, 3)

		got, err = svc.Search(ctx, "", 2, 2)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("get and delete map not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "missing-id")
		require.ErrorIs(t, err, ErrNotFound)

		require.ErrorIs(t, svc.Delete(ctx, "missing-id"), ErrNotFound)
	})

	t.Run("delete removes the archive", func(t *testing.T) {
		a, err := svc.Create(ctx, "Disposable", "", author.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, a.ID))
		_, err = svc.Get(ctx, a.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWorkspaceSlugs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := &WorkspaceService{Store: st}

	w, err := svc.Create(ctx, "  Legal & Compliance 2024 ", "contracts", "")
	require.NoError(t, err)
	require.Equal(t, "legal-compliance-2024", w.Slug)

	got, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, w.Slug, got.Slug)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
