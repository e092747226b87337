// Package graphql is a minimal GraphQL-over-HTTP client: it posts a query
// document with variables and decodes the "data" member of the response.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	transporthttp "github.com/superfluid-finance/web3-hooks/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrServerReturnedErrors indicates a response carrying a non-empty "errors" array.
var ErrServerReturnedErrors = errors.New("graphql server returned errors")

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Err joins the messages of the "errors" array under ErrServerReturnedErrors.
func (r response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return fmt.Errorf("%w: %s", ErrServerReturnedErrors, strings.Join(msgs, "; "))
}

// Client executes GraphQL queries.
type Client interface {
	// Query runs query with vars and decodes the response data into out.
	Query(ctx context.Context, query string, vars map[string]any, out any) error
}

type client struct {
	endpoint string
	http     *retryablehttp.Client
}

var _ Client = (*client)(nil)

func (c *client) Query(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}

	// CheckStatus drains and closes the body.
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return transporthttp.CheckStatus(res)
	}
	defer res.Body.Close()

	var gqlRes response
	if err := json.NewDecoder(res.Body).Decode(&gqlRes); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	if err := gqlRes.Err(); err != nil {
		return err
	}

	if out == nil || len(gqlRes.Data) == 0 {
		return nil
	}
	return json.Unmarshal(gqlRes.Data, out)
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

// NewClient creates a client for the GraphQL endpoint at endpoint.
func NewClient(endpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.http == nil {
		cfg.http = transporthttp.NewClient()
	}

	return &client{
		endpoint: endpoint,
		http:     cfg.http,
	}
}
