// Package postgres stores scan checkpoints in a PostgreSQL table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS scan_checkpoints (
  scan_key     TEXT PRIMARY KEY,
  block_number BIGINT NOT NULL CHECK (block_number >= 0),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type store struct {
	pool *pgxpool.Pool
}

// Compile-time assertion to ensure store implements checkpoint.Storage.
var _ checkpoint.Storage = (*store)(nil)

// Open connects to dsn and makes sure the checkpoint table exists.
func Open(ctx context.Context, dsn string) (*store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	s := &store{pool: pool}
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// EnsureSchema creates the checkpoint table if needed.
func (s *store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure checkpoint schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *store) Close() {
	s.pool.Close()
}

func (s *store) Load(ctx context.Context, key checkpoint.Key) (uint64, error) {
	var blockNumber int64
	err := s.pool.QueryRow(ctx,
		`SELECT block_number FROM scan_checkpoints WHERE scan_key = $1`,
		key.String(),
	).Scan(&blockNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, checkpoint.ErrNoCheckpointFound
		}
		return 0, fmt.Errorf("select checkpoint: %w", err)
	}

	if blockNumber < 0 {
		return 0, fmt.Errorf("%w: negative block number %d", checkpoint.ErrCorruptCheckpoint, blockNumber)
	}

	return uint64(blockNumber), nil
}

func (s *store) Save(ctx context.Context, key checkpoint.Key, blockNumber uint64) error {
	if blockNumber > math.MaxInt64 {
		return fmt.Errorf("block number %d overflows BIGINT", blockNumber)
	}

	_, err := s.pool.Exec(ctx, `
INSERT INTO scan_checkpoints (scan_key, block_number)
VALUES ($1, $2)
ON CONFLICT (scan_key) DO UPDATE SET
  block_number = EXCLUDED.block_number,
  updated_at = now()`,
		key.String(), int64(blockNumber),
	)
	if err != nil {
		return fmt.Errorf("upsert checkpoint: %w", err)
	}

	return nil
}
