package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/skydial/internal/database"
	"github.com/jask/skydial/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.SlotRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.Migrate(path))
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSlotRepo(db)
}

func TestSlotRepoGetMissing(t *testing.T) {
	repo := openTestDB(t)
	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSlotRepoPutOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	require.NoError(t, repo.Put(ctx, "k", []byte("one")))
	require.NoError(t, repo.Put(ctx, "k", []byte("two")))
	require.NoError(t, repo.Put(ctx, "a", nil))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	slots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "a", slots[0].Key)
	assert.Empty(t, slots[0].Value)
	assert.False(t, slots[1].UpdatedAt.IsZero())

	require.NoError(t, repo.Delete(ctx, "k"))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}
