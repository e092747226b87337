// Package relay runs one pipeline pass for a queued event: enrichment,
// formatting and notification. It implements queue.Handler.
package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/format"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/telemetry"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/types"
	"github.com/superfluid-finance/web3-hooks/internal/queue"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrMissingFormatter is returned by New when the resolver handles a kind the
// formatter cannot render.
var ErrMissingFormatter = errors.New("resolver kinds without formatter")

type Resolver interface {
	Resolve(ctx context.Context, e event.RawEvent) (event.EnrichedEvent, error)
	Kinds() []event.Kind
}

type Formatter interface {
	Format(e event.EnrichedEvent) (format.Message, error)
	Kinds() []event.Kind
}

// Notifier delivers a rendered message. Implementations must not retry.
type Notifier interface {
	Send(ctx context.Context, msg format.Message) error
}

type pipeline struct {
	resolver  Resolver
	formatter Formatter
	notifier  Notifier
}

var _ queue.Handler = (*pipeline)(nil)

// Handle runs e through the pipeline. Errors are returned unchanged so the
// queue can tell skippable outcomes from failures.
func (p *pipeline) Handle(ctx context.Context, e event.RawEvent) error {
	ctx, span := telemetry.Tracer("relay").Start(ctx, "relay.handle",
		trace.WithAttributes(
			attribute.String("network", e.Network),
			attribute.String("event.kind", string(e.Kind)),
			attribute.String("event.tx", e.TransactionHash),
			attribute.Int64("event.log_index", int64(e.LogIndex)),
		),
	)
	defer span.End()

	err := p.handle(ctx, e)
	if err != nil && !event.IsSkippable(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (p *pipeline) handle(ctx context.Context, e event.RawEvent) error {
	enriched, err := p.resolver.Resolve(ctx, e)
	if err != nil {
		return err
	}

	if enriched.Suppressed {
		logger.Info(ctx, "event below notification threshold", "event.kind", e.Kind, "event.tx", e.TransactionHash)
		return nil
	}

	msg, err := p.formatter.Format(enriched)
	if err != nil {
		return err
	}

	if err := p.notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	logger.Info(ctx, "notification sent", "event.kind", e.Kind, "event.tx", e.TransactionHash)
	return nil
}

// New wires a pipeline and checks that every kind the resolver handles can
// also be rendered.
func New(resolver Resolver, formatter Formatter, notifier Notifier) (*pipeline, error) {
	missing := types.NewSet(resolver.Kinds()...).Difference(types.NewSet(formatter.Kinds()...))
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingFormatter, types.Sorted(missing))
	}

	return &pipeline{
		resolver:  resolver,
		formatter: formatter,
		notifier:  notifier,
	}, nil
}
