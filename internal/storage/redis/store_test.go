package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/config"
	"github.com/cory-johannsen/colony/internal/storage"
	redisstore "github.com/cory-johannsen/colony/internal/storage/redis"
	"github.com/cory-johannsen/colony/internal/testutil"
)

const minimalGame = "#s:1|Hall|1|\n#o:10|Key|1|Small|0|1|-1|-1|\n#p:1|mouse|m|1|5|3|1||\n#t:0\n"

func TestStore_SaveLoad(t *testing.T) {
	rs := testutil.NewRedisServer(t)
	store := redisstore.NewStoreWithClient(rs.Client, "colony:save:", 0, zap.NewNop())
	ctx := context.Background()

	def, err := storage.DecodeBytes([]byte(minimalGame))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "slot1", def))

	raw, err := rs.Server.Get("colony:save:slot1")
	require.NoError(t, err)
	assert.Contains(t, raw, "#s:1|Hall|1|")

	loaded, err := store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, "Hall", loaded.Spaces[0].Name)
	assert.Equal(t, "mouse", loaded.Players[0].Name)
}

func TestStore_LoadMissing(t *testing.T) {
	rs := testutil.NewRedisServer(t)
	store := redisstore.NewStoreWithClient(rs.Client, "p:", 0, zap.NewNop())
	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
}

func TestStore_Expiry(t *testing.T) {
	rs := testutil.NewRedisServer(t)
	store := redisstore.NewStoreWithClient(rs.Client, "p:", time.Minute, zap.NewNop())
	ctx := context.Background()

	def, err := storage.DecodeBytes([]byte(minimalGame))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "slot", def))
	assert.Equal(t, time.Minute, rs.Server.TTL("p:slot"))

	rs.Server.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, "slot")
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
}

func TestStore_RejectsBadSlot(t *testing.T) {
	rs := testutil.NewRedisServer(t)
	store := redisstore.NewStoreWithClient(rs.Client, "p:", 0, zap.NewNop())
	assert.ErrorIs(t, store.Save(context.Background(), "", nil), storage.ErrInvalidSlot)
}

func TestNewStore_DialsConfiguredServer(t *testing.T) {
	rs := testutil.NewRedisServer(t)
	store, err := redisstore.NewStore(context.Background(), config.RedisConfig{
		Addr:      rs.Server.Addr(),
		KeyPrefix: "x:",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	assert.Equal(t, "x:s", store.Key("s"))
}

func TestNewStore_Unreachable(t *testing.T) {
	rs := testutil.NewRedisServer(t)
	addr := rs.Server.Addr()
	rs.Server.Close()
	_, err := redisstore.NewStore(context.Background(), config.RedisConfig{Addr: addr}, zap.NewNop())
	assert.Error(t, err)
}
