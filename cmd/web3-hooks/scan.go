package main

import (
	"context"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/checkpoint"
	"github.com/superfluid-finance/web3-hooks/internal/config"
	"github.com/superfluid-finance/web3-hooks/internal/contracts"
	"github.com/superfluid-finance/web3-hooks/internal/handlers/cli"
	"github.com/superfluid-finance/web3-hooks/internal/infra/blockchain/ethereum"
	"github.com/superfluid-finance/web3-hooks/internal/infra/webhook"
	"github.com/superfluid-finance/web3-hooks/internal/network"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/resilience/retry"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/transport/jsonrpc"
	"github.com/superfluid-finance/web3-hooks/internal/scanner"
)

// scanRunner builds the collaborators of one scan pass from the request and
// the process configuration.
type scanRunner struct {
	cfg     config.Config
	catalog *network.Catalog
}

var _ cli.Scanner = scanRunner{}

func newScanRunner(cfg config.Config, catalog *network.Catalog) scanRunner {
	return scanRunner{cfg: cfg, catalog: catalog}
}

func (r scanRunner) Scan(ctx context.Context, req cli.ScanRequest) (scanner.Result, error) {
	n, err := r.catalog.ByName(req.Network)
	if err != nil {
		return scanner.Result{}, err
	}

	ev, err := contracts.Lookup(req.Interface, req.Event)
	if err != nil {
		return scanner.Result{}, err
	}

	contract := req.Contract
	if req.ContractAddress != "" {
		contract = req.ContractAddress
	}
	addr, err := n.ResolveContract(contract)
	if err != nil {
		return scanner.Result{}, err
	}

	rpcURL := req.RPC
	if rpcURL == "" {
		rpcURL = n.RPCURL()
	}

	storage, release, err := openCheckpointStorage(ctx, r.cfg)
	if err != nil {
		return scanner.Result{}, err
	}
	defer release()

	chain := ethereum.NewClient(
		jsonrpc.NewClient(rpcURL),
		ethereum.WithRetry(retry.New(
			retry.WithName("rpc"),
			retry.WithAttempts(3),
			retry.WithDelay(time.Second),
		)),
	)

	target := scanner.Target{
		Network:  n.Name,
		ChainID:  n.ChainID,
		Contract: addr,
		Event:    ev,
		Key: checkpoint.Key{
			Network:   req.Network,
			Interface: req.Interface,
			Contract:  req.Contract,
			Event:     req.Event,
		},
		MaxSpan: n.LogsQueryRange,
	}

	opts := []scanner.Option{
		scanner.WithHeadOffset(req.HeadOffset),
		scanner.WithCheckpointStorage(storage),
	}
	if req.FromBlock != nil {
		opts = append(opts, scanner.WithStartBlock(*req.FromBlock))
	}

	res, err := scanner.New(chain, webhook.NewClient(req.WebhookBaseURL), target, opts...).Run(ctx)
	if err != nil {
		logger.Error(ctx, "scan failed", "scan.key", target.Key.String(), "error", err)
		return res, err
	}

	logger.Info(ctx, "scan finished",
		"scan.key", target.Key.String(),
		"scan.from", res.From,
		"scan.to", res.To,
		"scan.events", res.Events,
		"scan.checkpoint", res.Checkpoint,
	)
	return res, nil
}
