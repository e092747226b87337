// Package http is the inbound webhook boundary. It accepts events pushed by
// the scanner (or any compatible producer), validates them and places them on
// the delay queue. Requests never wait for enrichment or delivery.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/enrich"
	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/network"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrKindMismatch is returned when the route kind and the payload event differ.
var ErrKindMismatch = errors.New("event does not match route")

// maxBodySize bounds inbound payloads.
const maxBodySize = 1 << 20

// Enqueuer is the part of the delay queue the server uses.
type Enqueuer interface {
	Enqueue(e event.RawEvent) event.QueuedEvent
	Len() int
}

// Networks resolves network names against the catalog.
type Networks interface {
	ByName(name string) (network.Network, error)
}

type server struct {
	router   chi.Router
	queue    Enqueuer
	networks Networks
	metrics  *metrics
}

// ServeHTTP dispatches to the router.
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe binds addr and serves on it until ctx is cancelled, then
// shuts down gracefully.
func (s *server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("webhook server: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. ln is closed on return.
func (s *server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "webhook server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("webhook server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("webhook server shutdown: %w", err)
	}

	return nil
}

func (s *server) routes(gatherer prometheus.Gatherer) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	s.router.Post("/", s.handleEvent)
	s.router.Post("/v2/{kind}", s.handleEvent)
}

func (s *server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("GM"))
}

type healthResponse struct {
	Status     string `json:"status"`
	QueueDepth int    `json:"queueDepth"`
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:     "ok",
		QueueDepth: s.queue.Len(),
	})
}

// handleEvent decodes, validates and enqueues one event. Malformed payloads
// and unknown networks answer 500 so the producer keeps the event and retries.
func (s *server) handleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	e, err := s.decode(r)
	if err != nil {
		s.metrics.failed.Inc()
		logger.Warn(ctx, "rejected webhook", "path", r.URL.Path, "error", err)
		http.Error(w, "Error processing webhook", http.StatusInternalServerError)
		return
	}

	qe := s.queue.Enqueue(e)
	s.metrics.successful.WithLabelValues(string(e.Kind)).Inc()

	logger.Info(ctx, "event queued",
		"event.id", qe.ID,
		"event.kind", e.Kind,
		"event.network", e.Network,
		"event.block", e.BlockNumber,
		"event.tx", e.TransactionHash,
	)

	w.WriteHeader(http.StatusOK)
}

func (s *server) decode(r *http.Request) (event.RawEvent, error) {
	var payload event.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return event.RawEvent{}, fmt.Errorf("decode payload: %w", err)
	}

	if err := validator.Validate(payload); err != nil {
		return event.RawEvent{}, err
	}

	e := payload.RawEvent()

	if kind := chi.URLParam(r, "kind"); kind != "" && kind != e.Kind.Path() {
		return event.RawEvent{}, fmt.Errorf("%w: route %q, event %q", ErrKindMismatch, kind, e.Kind)
	}

	// Accepting an event its handler cannot read would stall the queue head.
	if err := enrich.Validate(e); err != nil {
		return event.RawEvent{}, err
	}

	n, err := s.networks.ByName(e.Network)
	if err != nil {
		return event.RawEvent{}, err
	}
	if e.ChainID == 0 {
		e.ChainID = n.ChainID
	}

	return e, nil
}

type config struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

type Option func(*config)

// WithRegistry registers the webhook counters on reg and serves it on
// /metrics. Default: the Prometheus default registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *config) {
		c.registerer = reg
		c.gatherer = reg
	}
}

// NewServer creates the webhook server.
func NewServer(q Enqueuer, networks Networks, opts ...Option) *server {
	cfg := config{
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &server{
		router:   chi.NewRouter(),
		queue:    q,
		networks: networks,
		metrics:  newMetrics(cfg.registerer),
	}
	s.routes(cfg.gatherer)

	return s
}
