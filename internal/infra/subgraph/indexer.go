// Package subgraph runs enrichment queries against the Superfluid protocol
// subgraph of each network.
package subgraph

import (
	"context"
	"sync"

	"github.com/superfluid-finance/web3-hooks/internal/network"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/transport/graphql"

	"github.com/hashicorp/go-retryablehttp"
)

// Networks resolves a network name to its catalog entry.
type Networks interface {
	ByName(name string) (network.Network, error)
}

type indexer struct {
	networks Networks
	http     *retryablehttp.Client

	mu      sync.Mutex
	clients map[string]graphql.Client
}

// Query runs query on the subgraph of networkName.
func (i *indexer) Query(ctx context.Context, networkName, query string, vars map[string]any, out any) error {
	c, err := i.client(networkName)
	if err != nil {
		return err
	}
	return c.Query(ctx, query, vars, out)
}

// client returns the cached GraphQL client of a network, creating it on first use.
func (i *indexer) client(networkName string) (graphql.Client, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if c, ok := i.clients[networkName]; ok {
		return c, nil
	}

	n, err := i.networks.ByName(networkName)
	if err != nil {
		return nil, err
	}

	var opts []graphql.Option
	if i.http != nil {
		opts = append(opts, graphql.WithHTTPClient(i.http))
	}

	c := graphql.NewClient(n.SubgraphURL(), opts...)
	i.clients[networkName] = c
	return c, nil
}

type config struct {
	http *retryablehttp.Client
}

type Option func(*config)

// WithHTTPClient shares c between all network clients.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.http = c
	}
}

// NewIndexer creates an indexer resolving subgraph endpoints through networks.
func NewIndexer(networks Networks, opts ...Option) *indexer {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &indexer{
		networks: networks,
		http:     cfg.http,
		clients:  make(map[string]graphql.Client),
	}
}
