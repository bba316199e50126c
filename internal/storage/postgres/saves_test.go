package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/colony/internal/storage"
	"github.com/cory-johannsen/colony/internal/storage/postgres"
	"github.com/cory-johannsen/colony/internal/testutil"
)

const minimalGame = "#s:1|Hall|1|\n#o:10|Key|1|Small|0|1|-1|-1|\n#p:1|mouse|m|1|5|3|1||\n#t:0\n"

func setupRepo(t *testing.T) *postgres.SaveRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewSaveRepository(pc.Pool.DB(), zaptest.NewLogger(t))
}

func TestSaveRepository_SaveLoadOverwrite(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	def, err := storage.DecodeBytes([]byte(minimalGame))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "slot1", def))

	loaded, err := repo.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, "Hall", loaded.Spaces[0].Name)

	def.Spaces[0].Name = "Atrium"
	require.NoError(t, repo.Save(ctx, "slot1", def))
	loaded, err = repo.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, "Atrium", loaded.Spaces[0].Name)

	slots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "slot1", slots[0].Slot)

	require.NoError(t, repo.Delete(ctx, "slot1"))
	assert.ErrorIs(t, repo.Delete(ctx, "slot1"), storage.ErrSlotNotFound)
}

func TestSaveRepository_LoadMissing(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
}

func TestSaveRepository_RejectsBadSlot(t *testing.T) {
	repo := postgres.NewSaveRepository(nil, zaptest.NewLogger(t))
	err := repo.Save(context.Background(), strings.Repeat("x", storage.MaxSlotLen+1), nil)
	assert.ErrorIs(t, err, storage.ErrInvalidSlot)
	_, err = repo.Load(context.Background(), "a/b")
	assert.ErrorIs(t, err, storage.ErrInvalidSlot)
}
