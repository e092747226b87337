// Package pebble persists scan checkpoints in an embedded Pebble key-value
// store, for single-host deployments that want crash-safe storage without
// running a database server.
package pebble

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"

	"github.com/cockroachdb/pebble"
)

// checkpointKeyPrefix namespaces checkpoint entries.
const checkpointKeyPrefix = "checkpoint/"

type store struct {
	db *pebble.DB
}

// Compile-time assertion to ensure store implements checkpoint.Storage.
var _ checkpoint.Storage = (*store)(nil)

// Open opens (or creates) the Pebble database at path.
func Open(path string) (*store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble at %s: %w", path, err)
	}

	return &store{db: db}, nil
}

// Close flushes and closes the database.
func (s *store) Close() error {
	return s.db.Close()
}

func checkpointKey(key checkpoint.Key) []byte {
	return []byte(checkpointKeyPrefix + key.String())
}

// Load returns the stored block number. Values are 8-byte big-endian integers;
// anything else is reported as checkpoint.ErrCorruptCheckpoint.
func (s *store) Load(_ context.Context, key checkpoint.Key) (uint64, error) {
	value, closer, err := s.db.Get(checkpointKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return 0, checkpoint.ErrNoCheckpointFound
		}
		return 0, fmt.Errorf("get checkpoint: %w", err)
	}
	defer closer.Close()

	if len(value) != 8 {
		return 0, fmt.Errorf("%w: %d byte value", checkpoint.ErrCorruptCheckpoint, len(value))
	}

	return binary.BigEndian.Uint64(value), nil
}

// Save writes blockNumber with a synced write.
func (s *store) Save(_ context.Context, key checkpoint.Key, blockNumber uint64) error {
	value := binary.BigEndian.AppendUint64(nil, blockNumber)

	if err := s.db.Set(checkpointKey(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("set checkpoint: %w", err)
	}

	return nil
}
