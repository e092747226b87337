// Command web3-hooks watches Superfluid contract events and relays them to
// Slack. See `web3-hooks --help`.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/superfluid-finance/web3-hooks/internal/config"
	"github.com/superfluid-finance/web3-hooks/internal/handlers/cli"
	"github.com/superfluid-finance/web3-hooks/internal/network"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/telemetry"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdown := telemetry.Disabled()
	if cfg.OtelEnabled {
		shutdown, err = telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			fmt.Fprintln(os.Stderr, "telemetry shutdown:", err)
		}
	}()

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := network.Load(cfg.NetworksFile)
	if err != nil {
		return err
	}

	return cli.Run(ctx, newScanRunner(cfg, catalog), newServer(cfg, catalog), catalog)
}
