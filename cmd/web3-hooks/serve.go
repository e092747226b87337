package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/superfluid-finance/web3-hooks/internal/config"
	"github.com/superfluid-finance/web3-hooks/internal/enrich"
	"github.com/superfluid-finance/web3-hooks/internal/format"
	"github.com/superfluid-finance/web3-hooks/internal/handlers/cli"
	handlershttp "github.com/superfluid-finance/web3-hooks/internal/handlers/http"
	lognotifier "github.com/superfluid-finance/web3-hooks/internal/infra/notifier/log"
	"github.com/superfluid-finance/web3-hooks/internal/infra/notifier/slack"
	"github.com/superfluid-finance/web3-hooks/internal/infra/subgraph"
	"github.com/superfluid-finance/web3-hooks/internal/network"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
	"github.com/superfluid-finance/web3-hooks/internal/queue"
	"github.com/superfluid-finance/web3-hooks/internal/relay"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// server runs the webhook HTTP server and the delay queue processor side by
// side. Both are built on Start so the scan command never pays for them.
type server struct {
	cfg     config.Config
	catalog *network.Catalog

	mu        sync.Mutex
	closeFunc func()
	done      chan struct{}
	err       error // written before done is closed
}

var _ cli.Service = (*server)(nil)

func newServer(cfg config.Config, catalog *network.Catalog) *server {
	return &server{cfg: cfg, catalog: catalog}
}

func (s *server) notifier(ctx context.Context) relay.Notifier {
	if s.cfg.SlackWebhookURL == "" {
		logger.Warn(ctx, "SLACK_WEBHOOK_URL not set, notifications are only logged")
		return lognotifier.NewNotifier()
	}
	return slack.NewClient(s.cfg.SlackWebhookURL)
}

// Start wires the pipeline, binds the listen address and starts serving.
// Bind failures are returned here; later failures close Done.
func (s *server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		return queue.ErrServiceAlreadyStarted
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	resolver := enrich.New(subgraph.NewIndexer(s.catalog), s.catalog, enrich.WithMinAmount(s.cfg.MinAmount.Int))

	pipeline, err := relay.New(resolver, format.New(), s.notifier(ctx))
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("webhook server: %w", err)
	}

	q := queue.NewQueue(nil)
	processor := queue.New(q, pipeline,
		queue.WithDelay(s.cfg.QueueDelay),
		queue.WithInterval(s.cfg.QueueInterval),
		queue.WithRegisterer(reg),
	)
	webhooks := handlershttp.NewServer(q, s.catalog, handlershttp.WithRegistry(reg))

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	if err := processor.Start(gctx); err != nil {
		cancel()
		_ = ln.Close()
		return err
	}

	g.Go(func() error {
		err := webhooks.Serve(gctx, ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "webhook server stopped", "error", err)
			return err
		}
		return nil
	})

	done := make(chan struct{})
	go func() {
		s.err = g.Wait()
		close(done)
	}()

	s.done = done
	s.closeFunc = func() {
		cancel()
		processor.Close()
		<-done
	}

	logger.Info(ctx, "serving", "addr", ln.Addr().String(), "queue.delay", s.cfg.QueueDelay.String())
	return nil
}

// Done is closed once the HTTP server has stopped, either through Close or
// on a serve failure. It is nil before Start.
func (s *server) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// Err returns the failure that stopped the server, or nil while it runs or
// after a clean Close.
func (s *server) Err() error {
	done := s.Done()
	if done == nil {
		return nil
	}

	select {
	case <-done:
		return s.err
	default:
		return nil
	}
}

// Close stops the server and the queue processor. Events still queued are
// dropped.
func (s *server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
		s.closeFunc = nil
	}
}
