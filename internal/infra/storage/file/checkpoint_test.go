package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = checkpoint.Key{
	Network:   "polygon-mainnet",
	Interface: "ISuperfluid",
	Contract:  "host",
	Event:     "Jail",
}

func TestCheckpointStore(t *testing.T) {
	t.Run("missing file is reported as no checkpoint", func(t *testing.T) {
		store, err := NewCheckpointStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Load(t.Context(), testKey)
		assert.ErrorIs(t, err, checkpoint.ErrNoCheckpointFound)
	})

	t.Run("save then load", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewCheckpointStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save(t.Context(), testKey, 988))

		got, err := store.Load(t.Context(), testKey)
		require.NoError(t, err)
		assert.Equal(t, uint64(988), got)

		raw, err := os.ReadFile(filepath.Join(dir, "blocknr_polygon-mainnet-ISuperfluid-host-Jail.txt"))
		require.NoError(t, err)
		assert.Equal(t, "988", string(raw))
	})

	t.Run("save overwrites and leaves no temporary files", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewCheckpointStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save(t.Context(), testKey, 100))
		require.NoError(t, store.Save(t.Context(), testKey, 200))

		got, err := store.Load(t.Context(), testKey)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), got)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		store, err := NewCheckpointStore(t.TempDir())
		require.NoError(t, err)

		other := testKey
		other.Event = "AppRegistered"

		require.NoError(t, store.Save(t.Context(), testKey, 10))
		require.NoError(t, store.Save(t.Context(), other, 20))

		got, err := store.Load(t.Context(), other)
		require.NoError(t, err)
		assert.Equal(t, uint64(20), got)
	})

	t.Run("corrupt file is reported", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewCheckpointStore(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, testKey.FileName()), []byte("NaN"), 0o644))

		_, err = store.Load(t.Context(), testKey)
		assert.ErrorIs(t, err, checkpoint.ErrCorruptCheckpoint)
	})

	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "checkpoints")

		store, err := NewCheckpointStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Save(t.Context(), testKey, 1))

		_, err = os.Stat(filepath.Join(dir, testKey.FileName()))
		assert.NoError(t, err)
	})
}
