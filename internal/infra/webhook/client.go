// Package webhook delivers scanned events to the webhook server over HTTP.
// It implements scanner.Deliverer.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/event"
	transporthttp "github.com/superfluid-finance/web3-hooks/internal/pkg/transport/http"
	"github.com/superfluid-finance/web3-hooks/internal/scanner"

	"github.com/hashicorp/go-retryablehttp"
)

type client struct {
	baseURL string
	http    *retryablehttp.Client
}

var _ scanner.Deliverer = (*client)(nil)

// URL returns the endpoint an event of kind is posted to: "<base>/v2/<kind>".
func (c *client) URL(kind event.Kind) string {
	return c.baseURL + "/v2/" + kind.Path()
}

// Deliver posts e and returns once the server accepted it. Transport errors
// and non-2xx responses are returned to the caller.
func (c *client) Deliver(ctx context.Context, e event.RawEvent) error {
	body, err := json.Marshal(event.NewPayload(e))
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	url := c.URL(e.Kind)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}

	if err := transporthttp.CheckStatus(res); err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}

	return nil
}

type config struct {
	http *retryablehttp.Client
}

type Option func(*config)

// WithHTTPClient overrides the default retrying HTTP client.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.http = c
	}
}

// NewClient creates a delivery client for the webhook server at baseURL.
func NewClient(baseURL string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.http == nil {
		cfg.http = transporthttp.NewClient(transporthttp.WithTimeout(10 * time.Second))
	}

	return &client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    cfg.http,
	}
}
