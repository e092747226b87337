package scanner

import (
	"context"

	"github.com/superfluid-finance/web3-hooks/internal/event"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// LogQuery selects the logs of one event emitted by one contract within an
// inclusive block range.
type LogQuery struct {
	Contract  common.Address
	Event     abi.Event
	FromBlock uint64
	ToBlock   uint64
}

// Blockchain is the node RPC the scanner reads from.
type Blockchain interface {
	// LatestBlockNumber returns the current chain head.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// FetchLogs returns the decoded events matching q in block and log order.
	// Network and ChainID of the returned events are left empty; the scanner
	// stamps them.
	FetchLogs(ctx context.Context, q LogQuery) ([]event.RawEvent, error)
}

// Deliverer hands a discovered event to the ingestion boundary. A nil error
// means the event was accepted downstream.
type Deliverer interface {
	Deliver(ctx context.Context, e event.RawEvent) error
}
