package cli

import (
	"context"
	"os"

	"github.com/superfluid-finance/web3-hooks/internal/network"

	"github.com/urfave/cli/v3"
)

// Catalog lists the known networks.
type Catalog interface {
	All() []network.Network
}

// Run initializes and executes the web3-hooks CLI application with os.Args.
func Run(ctx context.Context, sc Scanner, svc Service, catalog Catalog) error {
	return NewApp(sc, svc, catalog).Run(ctx, os.Args)
}

// NewApp builds the command tree:
//
//   - `scan`: Runs one checkpointed scan pass and exits.
//   - `serve`: Runs the webhook server and the delay queue until interrupted.
//   - `networks`: Lists the network catalog.
func NewApp(sc Scanner, svc Service, catalog Catalog) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "web3-hooks",
		Description:           "Watches contract events, enriches them from the subgraph and notifies Slack.",
		Usage:                 "web3-hooks [command] [flags]",
		Commands: []*cli.Command{
			scanCommand(sc),
			serveCommand(svc),
			networksCommand(catalog),
		},
	}
}
