package ethereum

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/contracts"
	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/resilience/retry"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/transport/jsonrpc"
	jsonrpctest "github.com/superfluid-finance/web3-hooks/internal/pkg/transport/jsonrpc/mocks"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/types"
	"github.com/superfluid-finance/web3-hooks/internal/scanner"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	superToken = "0x1305F6B6Df9Dc47159D12Eb7aC2804d4A33173c2"
	account    = "0x00000000000000000000000000000000000000Aa"
	txHash     = "0x7a1f9d2f5c3b4e6a8d0c1b2a39485766a5b4c3d2e1f0a9b8c7d6e5f4a3b2c1d0"
)

func downgradeLog(t *testing.T, blockNumber uint64, logIndex uint, removed bool) string {
	t.Helper()

	ev, err := contracts.Lookup("ISuperToken", "TokenDowngraded")
	require.NoError(t, err)

	return fmt.Sprintf(`{
		"address": %q,
		"topics": [%q, %q],
		"data": "0x00000000000000000000000000000000000000000000000d8d726b7177a80000",
		"blockNumber": %q,
		"transactionHash": %q,
		"transactionIndex": "0x1",
		"blockHash": "0x0000000000000000000000000000000000000000000000000000000000000001",
		"logIndex": %q,
		"removed": %t
	}`,
		superToken,
		ev.ID.Hex(),
		common.BytesToHash(common.HexToAddress(account).Bytes()).Hex(),
		types.HexFromUint64(blockNumber),
		txHash,
		fmt.Sprintf("0x%x", logIndex),
		removed,
	)
}

func logQuery(t *testing.T) scanner.LogQuery {
	t.Helper()

	ev, err := contracts.Lookup("ISuperToken", "TokenDowngraded")
	require.NoError(t, err)

	return scanner.LogQuery{
		Contract:  common.HexToAddress(superToken),
		Event:     ev,
		FromBlock: 488,
		ToBlock:   988,
	}
}

func TestNewClient(t *testing.T) {
	conn := jsonrpctest.NewClient(t)
	r := retry.New()

	c := NewClient(conn, WithRetry(r))

	assert.Equal(t, conn, c.conn)
	assert.Equal(t, r, c.retry)
}

func TestClient_LatestBlockNumber(t *testing.T) {
	t.Run("decodes hex quantity", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_blockNumber").Return(json.RawMessage(`"0x3e8"`), nil)

		n, err := NewClient(conn).LatestBlockNumber(t.Context())

		require.NoError(t, err)
		assert.Equal(t, uint64(1000), n)
	})

	t.Run("provider error", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_blockNumber").Return(nil, jsonrpc.ErrProviderReturnedError)

		_, err := NewClient(conn).LatestBlockNumber(t.Context())

		assert.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
	})

	t.Run("invalid payload", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_blockNumber").Return(json.RawMessage(`"1000"`), nil)

		_, err := NewClient(conn).LatestBlockNumber(t.Context())

		assert.Error(t, err)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_blockNumber").Return(nil, errors.New("EOF")).Once()
		conn.EXPECT().Fetch(mock.Anything, "eth_blockNumber").Return(json.RawMessage(`"0x10"`), nil).Once()

		r := retry.New(retry.WithAttempts(3), retry.WithDelay(time.Millisecond), retry.WithMaxDelay(time.Millisecond))
		n, err := NewClient(conn, WithRetry(r)).LatestBlockNumber(t.Context())

		require.NoError(t, err)
		assert.Equal(t, uint64(16), n)
	})
}

func TestClient_FetchLogs(t *testing.T) {
	t.Run("sends filter and decodes logs", func(t *testing.T) {
		q := logQuery(t)
		conn := jsonrpctest.NewClient(t)

		conn.EXPECT().
			Fetch(mock.Anything, "eth_getLogs", mock.MatchedBy(func(f logFilter) bool {
				return f.Address == q.Contract &&
					len(f.Topics) == 1 && len(f.Topics[0]) == 1 && f.Topics[0][0] == q.Event.ID &&
					f.FromBlock == types.Hex("0x1e8") &&
					f.ToBlock == types.Hex("0x3dc")
			})).
			Return(json.RawMessage("["+downgradeLog(t, 500, 3, false)+"]"), nil)

		events, err := NewClient(conn).FetchLogs(t.Context(), q)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, event.RawEvent{
			Kind:            event.KindTokenDowngraded,
			Address:         common.HexToAddress(superToken).Hex(),
			BlockNumber:     500,
			TransactionHash: txHash,
			LogIndex:        3,
			Args: []event.Arg{
				event.Arg(common.HexToAddress(account).Hex()),
				"250000000000000000000",
			},
		}, events[0])
	})

	t.Run("filter encodes as eth_getLogs object", func(t *testing.T) {
		q := logQuery(t)
		data, err := json.Marshal(logFilter{
			Address:   q.Contract,
			Topics:    [][]common.Hash{{q.Event.ID}},
			FromBlock: types.HexFromUint64(q.FromBlock),
			ToBlock:   types.HexFromUint64(q.ToBlock),
		})
		require.NoError(t, err)

		assert.JSONEq(t, fmt.Sprintf(
			`{"address":%q,"topics":[[%q]],"fromBlock":"0x1e8","toBlock":"0x3dc"}`,
			common.HexToAddress(superToken).Hex(), q.Event.ID.Hex(),
		), string(data))
	})

	t.Run("drops removed logs", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_getLogs", mock.Anything).
			Return(json.RawMessage("["+downgradeLog(t, 500, 0, true)+","+downgradeLog(t, 501, 1, false)+"]"), nil)

		events, err := NewClient(conn).FetchLogs(t.Context(), logQuery(t))

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, uint64(501), events[0].BlockNumber)
	})

	t.Run("empty range", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_getLogs", mock.Anything).Return(json.RawMessage(`[]`), nil)

		events, err := NewClient(conn).FetchLogs(t.Context(), logQuery(t))

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("log of another event", func(t *testing.T) {
		q := logQuery(t)
		q.Event, _ = contracts.Lookup("ISuperToken", "TokenUpgraded")

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_getLogs", mock.Anything).
			Return(json.RawMessage("["+downgradeLog(t, 500, 0, false)+"]"), nil)

		_, err := NewClient(conn).FetchLogs(t.Context(), q)

		assert.ErrorIs(t, err, contracts.ErrEventMismatch)
	})

	t.Run("provider error", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "eth_getLogs", mock.Anything).
			Return(nil, fmt.Errorf("%w: [-32005] - query returned more than 10000 results", jsonrpc.ErrProviderReturnedError))

		_, err := NewClient(conn).FetchLogs(t.Context(), logQuery(t))

		assert.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
	})
}
