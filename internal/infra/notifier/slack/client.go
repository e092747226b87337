// Package slack posts formatted messages to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/format"
	transporthttp "github.com/superfluid-finance/web3-hooks/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// DefaultRate is the sustained message rate Slack accepts per incoming webhook.
const DefaultRate = rate.Limit(1)

type client struct {
	webhookURL string
	http       *retryablehttp.Client
	limiter    *rate.Limiter
}

// Send posts msg once. Failed posts are not retried here; the queue retries
// the whole event.
func (c *client) Send(ctx context.Context, msg format.Message) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("slack rate limit: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode slack message: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post slack message: %w", err)
	}

	if err := transporthttp.CheckStatus(res); err != nil {
		return fmt.Errorf("post slack message: %w", err)
	}

	return nil
}

type config struct {
	http  *retryablehttp.Client
	rate  rate.Limit
	burst int
}

type Option func(*config)

// WithHTTPClient overrides the default HTTP client, which performs no
// transport retries.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.http = c
	}
}

// WithRate sets the sustained message rate and burst. Default: 1 message per
// second, burst 1.
func WithRate(r rate.Limit, burst int) Option {
	return func(cfg *config) {
		cfg.rate = r
		cfg.burst = burst
	}
}

// NewClient creates a notifier for the incoming webhook at webhookURL.
func NewClient(webhookURL string, opts ...Option) *client {
	cfg := config{
		rate:  DefaultRate,
		burst: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.http == nil {
		cfg.http = transporthttp.NewClient(
			transporthttp.WithTimeout(10*time.Second),
			transporthttp.WithRetryMax(0),
		)
	}

	return &client{
		webhookURL: webhookURL,
		http:       cfg.http,
		limiter:    rate.NewLimiter(cfg.rate, cfg.burst),
	}
}
