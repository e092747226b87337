// Package scanner implements a checkpointed block-range scan: it walks the
// chain from the last saved checkpoint up to a safe head in bounded
// sub-ranges, delivers every matching event and saves progress only after a
// sub-range was fully delivered.
package scanner

import (
	"context"
	"errors"
	"fmt"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/telemetry"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrStartAfterHead is returned when the first block to scan lies beyond the
// safe head. It is not retryable: the start override or checkpoint is ahead
// of the chain.
var ErrStartAfterHead = errors.New("start block is after head block")

// DefaultHeadOffset is the number of blocks kept between the chain head and
// the last scanned block.
const DefaultHeadOffset = 12

// Target describes what a scanner watches.
type Target struct {
	Network  string
	ChainID  uint64
	Contract common.Address
	Event    abi.Event
	Key      checkpoint.Key // checkpoint slot owned by this scan
	MaxSpan  uint64         // largest to-from the node accepts in one log query
}

// Result summarizes a run.
type Result struct {
	Head       uint64 // safe head the run scanned up to
	From       uint64
	To         uint64
	SubRanges  int
	Events     int
	Checkpoint uint64 // last saved checkpoint
	UpToDate   bool   // nothing to scan; checkpoint already at head
}

type scanner struct {
	chain     Blockchain
	deliverer Deliverer
	target    Target

	headOffset        uint64
	startBlock        *uint64
	checkpointStorage checkpoint.Storage
}

// Run performs one scan pass. It either scans everything up to the safe head
// or stops at the first failing sub-range, leaving the checkpoint at the last
// fully delivered boundary. Nothing is retried here.
//
// A sub-range that has started runs to completion even if ctx is canceled;
// cancellation is honored between sub-ranges.
func (s *scanner) Run(ctx context.Context) (Result, error) {
	ctx = logger.Derive(ctx,
		"scan.network", s.target.Network,
		"scan.contract", s.target.Contract.Hex(),
		"scan.event", s.target.Event.Name,
	)

	latest, err := s.chain.LatestBlockNumber(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("get latest block: %w", err)
	}

	head := uint64(0)
	if latest > s.headOffset {
		head = latest - s.headOffset
	}

	res := Result{Head: head}

	saved, hasSaved, err := s.loadCheckpoint(ctx)
	if err != nil {
		return res, err
	}

	start, upToDate, err := s.resolveStart(head, saved, hasSaved)
	if err != nil {
		return res, err
	}
	if upToDate {
		res.UpToDate = true
		res.Checkpoint = head
		logger.Info(ctx, "scan up to date", "scan.head", head)
		return res, nil
	}

	res.From, res.To = start, head
	logger.Info(ctx, "scan started",
		"scan.from", start,
		"scan.head", head,
		"scan.blocks", head-start+1,
		"scan.max_span", s.target.MaxSpan,
	)

	for _, r := range SplitRange(start, head, s.target.MaxSpan) {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("scan interrupted before %s: %w", r, err)
		}

		// A start override below the checkpoint rescans without moving the
		// checkpoint back.
		save := !hasSaved || r.To > saved

		n, err := s.scanSubRange(context.WithoutCancel(ctx), r, save)
		res.Events += n
		if err != nil {
			return res, fmt.Errorf("scan %s: %w", r, err)
		}

		res.SubRanges++
		if save {
			res.Checkpoint = r.To
		} else {
			res.Checkpoint = saved
		}
	}

	logger.Info(ctx, "scan finished",
		"scan.sub_ranges", res.SubRanges,
		"scan.events", res.Events,
		"scan.checkpoint", res.Checkpoint,
	)

	return res, nil
}

// loadCheckpoint returns the saved checkpoint. ok is false when there is
// none or it is corrupt.
func (s *scanner) loadCheckpoint(ctx context.Context) (saved uint64, ok bool, err error) {
	saved, err = s.checkpointStorage.Load(ctx, s.target.Key)
	switch {
	case err == nil:
		return saved, true, nil

	case errors.Is(err, checkpoint.ErrCorruptCheckpoint):
		logger.Warn(ctx, "ignoring corrupt checkpoint", "scan.key", s.target.Key.String(), "error", err)
		return 0, false, nil

	case errors.Is(err, checkpoint.ErrNoCheckpointFound):
		return 0, false, nil

	default:
		return 0, false, fmt.Errorf("load checkpoint: %w", err)
	}
}

// resolveStart picks the first block of the run: the explicit override, the
// block after the checkpoint, or head-MaxSpan. upToDate is reported when the
// checkpoint already equals head and there is no override.
func (s *scanner) resolveStart(head, saved uint64, hasSaved bool) (start uint64, upToDate bool, err error) {
	switch {
	case s.startBlock != nil:
		start = *s.startBlock

	case hasSaved:
		if saved == head {
			return 0, true, nil
		}
		start = saved + 1

	default:
		start = defaultStart(head, s.target.MaxSpan)
	}

	if start > head {
		return 0, false, fmt.Errorf("%w: start %d, head %d", ErrStartAfterHead, start, head)
	}

	return start, false, nil
}

func defaultStart(head, maxSpan uint64) uint64 {
	if head < maxSpan {
		return 0
	}
	return head - maxSpan
}

// scanSubRange fetches and delivers the events of r, then saves r.To when
// save is set. It returns the number of events delivered.
func (s *scanner) scanSubRange(ctx context.Context, r Range, save bool) (int, error) {
	ctx, span := telemetry.Tracer("scanner").Start(ctx, "scanner.subrange",
		trace.WithAttributes(
			attribute.String("network", s.target.Network),
			attribute.Int64("from", int64(r.From)),
			attribute.Int64("to", int64(r.To)),
		),
	)
	defer span.End()

	delivered, err := s.deliverSubRange(ctx, r, save)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return delivered, err
}

func (s *scanner) deliverSubRange(ctx context.Context, r Range, save bool) (int, error) {
	logger.Debug(ctx, "querying range", "scan.from", r.From, "scan.to", r.To)

	events, err := s.chain.FetchLogs(ctx, LogQuery{
		Contract:  s.target.Contract,
		Event:     s.target.Event,
		FromBlock: r.From,
		ToBlock:   r.To,
	})
	if err != nil {
		return 0, fmt.Errorf("fetch logs: %w", err)
	}

	logger.Debug(ctx, "range queried", "scan.from", r.From, "scan.to", r.To, "scan.events", len(events))

	for i, e := range events {
		e.Network = s.target.Network
		e.ChainID = s.target.ChainID

		if err := s.deliverer.Deliver(ctx, e); err != nil {
			return i, fmt.Errorf("deliver %s tx %s log %d: %w", e.Kind, e.TransactionHash, e.LogIndex, err)
		}
	}

	if !save {
		return len(events), nil
	}

	if err := s.checkpointStorage.Save(ctx, s.target.Key, r.To); err != nil {
		return len(events), fmt.Errorf("save checkpoint %d: %w", r.To, err)
	}

	return len(events), nil
}

type config struct {
	headOffset        uint64
	startBlock        *uint64
	checkpointStorage checkpoint.Storage
}

type Option func(*config)

// New returns a scanner for target. Without WithCheckpointStorage progress
// is not persisted.
func New(chain Blockchain, deliverer Deliverer, target Target, opts ...Option) *scanner {
	cfg := config{
		headOffset:        DefaultHeadOffset,
		checkpointStorage: checkpoint.Nop{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &scanner{
		chain:             chain,
		deliverer:         deliverer,
		target:            target,
		headOffset:        cfg.headOffset,
		startBlock:        cfg.startBlock,
		checkpointStorage: cfg.checkpointStorage,
	}
}

// WithHeadOffset sets how many blocks behind the chain head the scan stops.
func WithHeadOffset(offset uint64) Option {
	return func(c *config) {
		c.headOffset = offset
	}
}

// WithStartBlock forces the first scanned block, ignoring any checkpoint.
func WithStartBlock(block uint64) Option {
	return func(c *config) {
		c.startBlock = &block
	}
}

func WithCheckpointStorage(cs checkpoint.Storage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}
