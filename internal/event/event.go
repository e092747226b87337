// Package event defines the records that flow through the relay pipeline:
// raw on-chain occurrences discovered by the scanner or received by the
// webhook boundary, their queued form, and the enriched form produced for
// notification.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoHandler is returned when no enrichment handler is registered for an event kind.
	ErrNoHandler = errors.New("no handler registered for event kind")

	// ErrNoFormatter is returned when no formatter is registered for an event kind.
	ErrNoFormatter = errors.New("no formatter registered for event kind")

	// ErrMalformedEvent is returned when an event lacks the fields its kind
	// requires. Retrying cannot fix it.
	ErrMalformedEvent = errors.New("malformed event")
)

// IsSkippable reports whether err classifies an event as one the pipeline
// deliberately ignores. Skippable outcomes remove the event from the queue
// without being treated as failures.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrNoHandler) || errors.Is(err, ErrNoFormatter) || errors.Is(err, ErrMalformedEvent)
}

// Kind is the Solidity event name, e.g. "Jail" or "TokenDowngraded".
type Kind string

const (
	KindAppRegistered          Kind = "AppRegistered"
	KindJail                   Kind = "Jail"
	KindVestingScheduleCreated Kind = "VestingScheduleCreated"
	KindFlowScheduleCreated    Kind = "FlowScheduleCreated"
	KindTokenUpgraded          Kind = "TokenUpgraded"
	KindTokenDowngraded        Kind = "TokenDowngraded"
)

// Path returns the lowercase form used in webhook routes ("/v2/jail").
func (k Kind) Path() string {
	return strings.ToLower(string(k))
}

// RawEvent is a decoded on-chain log. It is immutable once captured.
type RawEvent struct {
	Network         string // network name as listed in the catalog, e.g. "polygon-mainnet"
	ChainID         uint64
	Kind            Kind
	Address         string // emitting contract
	BlockNumber     uint64
	TransactionHash string
	LogIndex        uint
	Args            []Arg // decoded arguments in ABI declaration order
}

// IndexerID returns the deterministic id under which the subgraph stores the
// entity for this event: "<Kind>-<txHash>-<logIndex>".
func (e RawEvent) IndexerID() string {
	return fmt.Sprintf("%s-%s-%d", e.Kind, e.TransactionHash, e.LogIndex)
}

// Arg returns the i-th argument or false when the event carries fewer arguments.
func (e RawEvent) Arg(i int) (Arg, bool) {
	if i < 0 || i >= len(e.Args) {
		return "", false
	}
	return e.Args[i], true
}

// QueuedEvent is a RawEvent waiting in the delay queue.
type QueuedEvent struct {
	RawEvent

	ID         string    // processing id (UUIDv7), stable across retries
	ReceivedAt time.Time // enqueue time, used for the delay check
	Attempts   uint      // failed processing attempts so far
	LastError  error     // error of the most recent failed attempt
}

// NewQueuedEvent stamps e with receivedAt and a fresh processing id.
func NewQueuedEvent(e RawEvent, receivedAt time.Time) QueuedEvent {
	return QueuedEvent{
		RawEvent:   e,
		ID:         uuid.Must(uuid.NewV7()).String(),
		ReceivedAt: receivedAt,
	}
}

// Age returns how long the event has been waiting at now.
func (q QueuedEvent) Age(now time.Time) time.Duration {
	return now.Sub(q.ReceivedAt)
}
