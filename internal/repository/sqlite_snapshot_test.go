package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/wellow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	started := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s := &Snapshot{ID: "s1", StartedAt: started, ExportedAt: started.Add(5 * time.Minute)}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.True(t, started.Equal(got.StartedAt))
	assert.True(t, s.ExportedAt.Equal(got.ExportedAt))
}

func TestSnapshotRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotRepo_ListAndDelete(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &Snapshot{ID: "later", StartedAt: base, ExportedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &Snapshot{ID: "earlier", StartedAt: base, ExportedAt: base}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "earlier", all[0].ID)
	assert.Equal(t, "later", all[1].ID)

	require.NoError(t, repo.Delete(ctx, "earlier"))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "later", all[0].ID)
}
