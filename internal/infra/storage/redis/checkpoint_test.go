package redis

import (
	"os"
	"testing"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointKey(t *testing.T) {
	key := checkpoint.Key{
		Network:   "base-mainnet",
		Interface: "IVestingScheduler",
		Contract:  "0x0000000000000000000000000000000000000001",
		Event:     "VestingScheduleCreated",
	}

	assert.Equal(t,
		"web3hooks:checkpoint:base-mainnet-IVestingScheduler-0x0000000000000000000000000000000000000001-VestingScheduleCreated",
		checkpointKey(key),
	)
}

// TestClient_Checkpoint runs against a live Redis when REDIS_TEST_ADDR is set.
func TestClient_Checkpoint(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	c, err := NewClient(t.Context(), addr, "", "", 0)
	require.NoError(t, err)
	defer c.Close()

	key := checkpoint.Key{Network: "test", Interface: "ISuperfluid", Contract: "host", Event: t.Name()}
	defer c.conn.Del(t.Context(), checkpointKey(key))

	t.Run("missing key", func(t *testing.T) {
		_, err := c.Load(t.Context(), key)
		assert.ErrorIs(t, err, checkpoint.ErrNoCheckpointFound)
	})

	t.Run("save then load", func(t *testing.T) {
		require.NoError(t, c.Save(t.Context(), key, 988))

		got, err := c.Load(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, uint64(988), got)
	})

	t.Run("corrupt value", func(t *testing.T) {
		require.NoError(t, c.conn.Set(t.Context(), checkpointKey(key), "garbage", 0).Err())

		_, err := c.Load(t.Context(), key)
		assert.ErrorIs(t, err, checkpoint.ErrCorruptCheckpoint)
	})
}
