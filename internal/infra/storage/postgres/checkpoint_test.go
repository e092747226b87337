package postgres

import (
	"os"
	"testing"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore runs against a live database when POSTGRES_TEST_DSN is set.
func TestStore(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	s, err := Open(t.Context(), dsn)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	key := checkpoint.Key{Network: "test", Interface: "ISuperToken", Contract: "usdcx", Event: t.Name()}
	_, err = s.pool.Exec(t.Context(), `DELETE FROM scan_checkpoints WHERE scan_key = $1`, key.String())
	require.NoError(t, err)

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Load(t.Context(), key)
		assert.ErrorIs(t, err, checkpoint.ErrNoCheckpointFound)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		require.NoError(t, s.Save(t.Context(), key, 988))
		require.NoError(t, s.Save(t.Context(), key, 1488))

		got, err := s.Load(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, uint64(1488), got)
	})

	t.Run("schema is idempotent", func(t *testing.T) {
		assert.NoError(t, s.EnsureSchema(t.Context()))
	})
}
