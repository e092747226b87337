// Package ethereum implements scanner.Blockchain for EVM nodes over JSON-RPC.
package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/superfluid-finance/web3-hooks/internal/contracts"
	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/resilience/retry"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/transport/jsonrpc"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/types"
	"github.com/superfluid-finance/web3-hooks/internal/scanner"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

// client talks to an EVM node through a JSON-RPC connection.
type client struct {
	conn  jsonrpc.Client
	retry retry.Retry
}

// Ensure client implements the scanner.Blockchain interface at compile time.
var _ scanner.Blockchain = (*client)(nil)

// logFilter is the eth_getLogs filter object.
type logFilter struct {
	Address   common.Address  `json:"address"`
	Topics    [][]common.Hash `json:"topics"`
	FromBlock types.Hex       `json:"fromBlock"`
	ToBlock   types.Hex       `json:"toBlock"`
}

// call runs op through the configured retry policy, or once without one.
func (c *client) call(ctx context.Context, op func() error) error {
	if c.retry == nil {
		return op()
	}
	return c.retry.Execute(ctx, op)
}

// LatestBlockNumber returns the node's current head via eth_blockNumber.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var blockNumber types.Hex
	err := c.call(ctx, func() error {
		data, err := c.conn.Fetch(ctx, "eth_blockNumber")
		if err != nil {
			return err
		}
		return json.Unmarshal(data, &blockNumber)
	})
	if err != nil {
		return 0, err
	}

	return blockNumber.Uint64(), nil
}

// FetchLogs queries eth_getLogs for q.Event emitted by q.Contract and decodes
// each log against the event ABI. Logs flagged as removed are dropped.
func (c *client) FetchLogs(ctx context.Context, q scanner.LogQuery) ([]event.RawEvent, error) {
	filter := logFilter{
		Address:   q.Contract,
		Topics:    [][]common.Hash{{q.Event.ID}},
		FromBlock: types.HexFromUint64(q.FromBlock),
		ToBlock:   types.HexFromUint64(q.ToBlock),
	}

	var logs []gethtypes.Log
	err := c.call(ctx, func() error {
		data, err := c.conn.Fetch(ctx, "eth_getLogs", filter)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, &logs)
	})
	if err != nil {
		return nil, err
	}

	events := make([]event.RawEvent, 0, len(logs))
	for _, log := range logs {
		if log.Removed {
			continue
		}

		args, err := contracts.DecodeLog(q.Event, log)
		if err != nil {
			return nil, fmt.Errorf("block %d tx %s log %d: %w", log.BlockNumber, log.TxHash.Hex(), log.Index, err)
		}

		events = append(events, event.RawEvent{
			Kind:            event.Kind(q.Event.Name),
			Address:         log.Address.Hex(),
			BlockNumber:     log.BlockNumber,
			TransactionHash: log.TxHash.Hex(),
			LogIndex:        log.Index,
			Args:            args,
		})
	}

	return events, nil
}

type config struct {
	retry retry.Retry
}

type Option func(*config)

// WithRetry retries failed RPC calls with r. Only transport-level failures
// of a single call are retried; callers still see the final error.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// NewClient creates an EVM blockchain client on top of conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:  conn,
		retry: cfg.retry,
	}
}
