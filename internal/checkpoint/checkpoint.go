// Package checkpoint defines the persisted progress marker of a scan: the
// last block number whose whole range of events was delivered, keyed by
// network, contract interface, contract and event.
package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoCheckpointFound is returned by Load when nothing was saved for the key yet.
	ErrNoCheckpointFound = errors.New("no checkpoint found")

	// ErrCorruptCheckpoint is returned by Load when the stored value cannot be
	// parsed as a block number. Callers treat it like ErrNoCheckpointFound.
	ErrCorruptCheckpoint = errors.New("corrupt checkpoint")
)

// Key identifies the scan a checkpoint belongs to.
type Key struct {
	Network   string // e.g. "polygon-mainnet"
	Interface string // ABI name, e.g. "ISuperfluid"
	Contract  string // contract name or address exactly as given by the operator
	Event     string // e.g. "Jail"
}

// String returns "<network>-<interface>-<contract>-<event>".
func (k Key) String() string {
	return strings.Join([]string{k.Network, k.Interface, k.Contract, k.Event}, "-")
}

// FileName returns the name of the flat file holding the checkpoint:
// "blocknr_<network>-<interface>-<contract>-<event>.txt".
func (k Key) FileName() string {
	return "blocknr_" + k.String() + ".txt"
}

// Storage persists and retrieves checkpoints.
type Storage interface {
	// Load returns the last saved block number for key. It returns
	// ErrNoCheckpointFound when nothing was saved yet and ErrCorruptCheckpoint
	// when the stored value is unreadable.
	Load(ctx context.Context, key Key) (uint64, error)

	// Save records blockNumber for key, overwriting any previous value.
	// Implementations must make the value durable before returning.
	Save(ctx context.Context, key Key, blockNumber uint64) error
}

// ParseBlockNumber decodes a stored checkpoint value. Surrounding whitespace
// is ignored; anything that is not a base-10 unsigned integer yields
// ErrCorruptCheckpoint.
func ParseBlockNumber(raw string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorruptCheckpoint, raw)
	}
	return n, nil
}

// FormatBlockNumber encodes a checkpoint value for storage.
func FormatBlockNumber(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// Nop is a Storage that never persists anything. Every Load reports
// ErrNoCheckpointFound, so scans always start from their default block.
type Nop struct{}

var _ Storage = Nop{}

func (Nop) Load(context.Context, Key) (uint64, error) {
	return 0, ErrNoCheckpointFound
}

func (Nop) Save(context.Context, Key, uint64) error {
	return nil
}
