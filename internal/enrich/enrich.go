// Package enrich augments raw events with data from the protocol subgraph.
// Each event kind has a registered handler; kinds without one are reported
// as event.ErrNoHandler so the queue can drop them.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/network"
)

var (
	// ErrIndexerNotFound is returned when the subgraph has no entity for the
	// event yet. It is recoverable: the subgraph usually catches up.
	ErrIndexerNotFound = errors.New("entity not found in indexer")

	// ErrMalformedEvent is returned when an event lacks the arguments its
	// handler needs. The queue drops such events.
	ErrMalformedEvent = event.ErrMalformedEvent
)

// DefaultMinAmount is the smallest token movement (100 tokens, in wei) that
// produces a notification.
var DefaultMinAmount = new(big.Int).Mul(big.NewInt(100), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// Indexer runs read-only queries against the subgraph of a network.
type Indexer interface {
	Query(ctx context.Context, network, query string, vars map[string]any, out any) error
}

// Networks resolves a network name to its catalog entry.
type Networks interface {
	ByName(name string) (network.Network, error)
}

// Lookup is what a handler resolves for an event.
type Lookup struct {
	Timestamp time.Time // zero when the indexer does not report one
	Details   event.Details
}

// HandlerFunc resolves the kind-specific data of e.
type HandlerFunc func(ctx context.Context, idx Indexer, e event.RawEvent) (Lookup, error)

type resolver struct {
	indexer   Indexer
	networks  Networks
	handlers  map[event.Kind]HandlerFunc
	minAmount *big.Int
}

// Register installs fn as the handler of kind, replacing any previous one.
// It is meant to be called during startup only.
func (r *resolver) Register(kind event.Kind, fn HandlerFunc) {
	r.handlers[kind] = fn
}

// Kinds returns the kinds with a registered handler, sorted.
func (r *resolver) Kinds() []event.Kind {
	kinds := make([]event.Kind, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Resolve enriches e. Unknown kinds yield event.ErrNoHandler without any
// indexer query. Token movements below the minimum amount come back with
// Suppressed set.
func (r *resolver) Resolve(ctx context.Context, e event.RawEvent) (event.EnrichedEvent, error) {
	handle, ok := r.handlers[e.Kind]
	if !ok {
		return event.EnrichedEvent{}, fmt.Errorf("%w: %s", event.ErrNoHandler, e.Kind)
	}

	n, err := r.networks.ByName(e.Network)
	if err != nil {
		return event.EnrichedEvent{}, err
	}

	lookup, err := handle(ctx, r.indexer, e)
	if err != nil {
		return event.EnrichedEvent{}, fmt.Errorf("resolve %s %s: %w", e.Kind, e.IndexerID(), err)
	}

	enriched := event.EnrichedEvent{
		Network:         e.Network,
		ChainID:         e.ChainID,
		Kind:            e.Kind,
		BlockNumber:     e.BlockNumber,
		TransactionHash: e.TransactionHash,
		LogIndex:        e.LogIndex,
		Timestamp:       lookup.Timestamp,
		ExplorerURL:     n.Explorer,
		Details:         lookup.Details,
	}

	if d, ok := lookup.Details.(event.TokenMovementDetails); ok && r.minAmount != nil {
		enriched.Suppressed = d.Amount == nil || d.Amount.Cmp(r.minAmount) < 0
	}

	return enriched, nil
}

type config struct {
	minAmount *big.Int
}

type Option func(*config)

// WithMinAmount sets the token movement threshold in wei. A nil amount
// disables suppression.
func WithMinAmount(amount *big.Int) Option {
	return func(c *config) {
		c.minAmount = amount
	}
}

// New creates a resolver with the default handler set.
func New(idx Indexer, networks Networks, opts ...Option) *resolver {
	cfg := config{
		minAmount: DefaultMinAmount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &resolver{
		indexer:   idx,
		networks:  networks,
		handlers:  make(map[event.Kind]HandlerFunc),
		minAmount: cfg.minAmount,
	}

	r.Register(event.KindAppRegistered, AppRegistered)
	r.Register(event.KindJail, Jail)
	r.Register(event.KindVestingScheduleCreated, ScheduleCreated)
	r.Register(event.KindFlowScheduleCreated, ScheduleCreated)
	r.Register(event.KindTokenUpgraded, TokenMovement)
	r.Register(event.KindTokenDowngraded, TokenMovement)

	return r
}
