package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/x/chflow"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	// DefaultDelay is how long an event waits before it is processed.
	DefaultDelay = 30 * time.Second

	// DefaultInterval is the pause between processing cycles.
	DefaultInterval = time.Second
)

// Handler runs one pipeline pass for an event. Errors classified by
// event.IsSkippable drop the event; any other error keeps it at the head.
type Handler interface {
	Handle(ctx context.Context, e event.RawEvent) error
}

type Service interface {
	Start(ctx context.Context) error
	Close()
}

// CycleResult summarizes one ProcessCycle call.
type CycleResult struct {
	Processed int   // entries handled successfully
	Skipped   int   // entries dropped as skippable
	Err       error // error that stopped the cycle, nil if it drained every due entry
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	cycleMu sync.Mutex

	queue    *Queue
	handler  Handler
	delay    time.Duration
	interval time.Duration
	metrics  *metrics
}

var _ Service = (*service)(nil)

// Start runs ProcessCycle every interval in the background until Close is
// called or ctx is canceled.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		chflow.Every(ctx, s.interval, func(ctx context.Context) {
			s.ProcessCycle(ctx)
		})
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true

	logger.Info(ctx, "queue processor started", "queue.delay", s.delay.String(), "queue.interval", s.interval.String())
	return nil
}

// Close stops the background loop and waits for a running cycle to finish.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// ProcessCycle handles due entries from the head of the queue until the
// queue is empty, the head is younger than the delay, or handling fails.
// A failed head is left in place for the next cycle. Concurrent calls are
// serialized.
func (s *service) ProcessCycle(ctx context.Context) CycleResult {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	var res CycleResult
	for ctx.Err() == nil {
		head, ok := s.queue.Head()
		if !ok || head.Age(s.queue.now()) < s.delay {
			return res
		}

		err := s.handle(ctx, head)
		switch {
		case err == nil:
			s.queue.Pop(head.ID)
			s.metrics.processed.WithLabelValues(string(head.Kind)).Inc()
			res.Processed++

		case event.IsSkippable(err):
			s.queue.Pop(head.ID)
			s.metrics.skipped.WithLabelValues(string(head.Kind)).Inc()
			logger.Info(ctx, "skipping event", "event.id", head.ID, "event.kind", head.Kind, "reason", err.Error())
			res.Skipped++

		default:
			failed, _ := s.queue.RecordFailure(head.ID, err)
			s.metrics.failed.WithLabelValues(string(head.Kind)).Inc()
			logger.Error(ctx, "event processing failed, will retry",
				"event.id", head.ID,
				"event.kind", head.Kind,
				"event.tx", head.TransactionHash,
				"event.attempts", failed.Attempts,
				"error", err,
			)
			res.Err = err
			return res
		}
	}

	return res
}

func (s *service) handle(ctx context.Context, qe event.QueuedEvent) error {
	ctx = logger.Derive(ctx,
		"event.id", qe.ID,
		"event.network", qe.Network,
		"event.kind", qe.Kind,
	)
	return s.handler.Handle(ctx, qe.RawEvent)
}

type config struct {
	delay      time.Duration
	interval   time.Duration
	registerer prometheus.Registerer
}

type Option func(*config)

// New creates a processing service for q. Event ages are measured with the
// clock q was created with.
func New(q *Queue, h Handler, opts ...Option) *service {
	cfg := config{
		delay:      DefaultDelay,
		interval:   DefaultInterval,
		registerer: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		queue:    q,
		handler:  h,
		delay:    cfg.delay,
		interval: cfg.interval,
		metrics:  newMetrics(cfg.registerer, q),
	}
}

// WithDelay sets the minimum age of an event before it is processed.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithInterval sets the pause between processing cycles.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithRegisterer registers the queue metrics on r instead of the default registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = r
	}
}
