// Package file stores scan checkpoints as one plain-text file per key,
// holding the block number in base 10. Files are replaced atomically through
// a temporary file and a rename, so a crash never leaves a half-written value.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"
)

// checkpointStore keeps checkpoint files under dir.
type checkpointStore struct {
	dir string
}

// Compile-time assertion to ensure checkpointStore implements checkpoint.Storage.
var _ checkpoint.Storage = (*checkpointStore)(nil)

// NewCheckpointStore returns a store writing into dir, creating it if needed.
func NewCheckpointStore(dir string) (*checkpointStore, error) {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create checkpoint dir: %w", err)
	}

	return &checkpointStore{dir: dir}, nil
}

func (s *checkpointStore) path(key checkpoint.Key) string {
	return filepath.Join(s.dir, key.FileName())
}

// Load reads the checkpoint file for key.
func (s *checkpointStore) Load(_ context.Context, key checkpoint.Key) (uint64, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, checkpoint.ErrNoCheckpointFound
		}
		return 0, fmt.Errorf("read checkpoint: %w", err)
	}

	return checkpoint.ParseBlockNumber(string(data))
}

// Save writes blockNumber to a temporary file, syncs it and renames it over
// the checkpoint file.
func (s *checkpointStore) Save(_ context.Context, key checkpoint.Key, blockNumber uint64) error {
	target := s.path(key)

	tmp, err := os.CreateTemp(s.dir, key.FileName()+".*.tmp")
	if err != nil {
		return fmt.Errorf("create checkpoint tmp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(checkpoint.FormatBlockNumber(blockNumber)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write checkpoint tmp: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync checkpoint tmp: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close checkpoint tmp: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("rename checkpoint: %w", err)
	}

	return nil
}
