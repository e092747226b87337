package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/superfluid-finance/web3-hooks/internal/scanner"

	"github.com/urfave/cli/v3"
)

// ErrScanUsage is returned when the scan command is not given exactly its
// four positional arguments.
var ErrScanUsage = errors.New("usage: web3-hooks scan <network> <interface> <contract name or address> <event>")

// ScanRequest describes one scan pass as requested on the command line.
type ScanRequest struct {
	Network   string
	Interface string // ABI name, e.g. "ISuperfluid"
	Contract  string // name from the catalog or an address; part of the checkpoint key as given
	Event     string

	ContractAddress string  // when set, used instead of resolving Contract
	FromBlock       *uint64 // overrides the checkpoint when set
	HeadOffset      uint64
	RPC             string // empty means the catalog endpoint of Network
	WebhookBaseURL  string
}

// Scanner runs one scan pass.
type Scanner interface {
	Scan(ctx context.Context, req ScanRequest) (scanner.Result, error)
}

// scanCommand returns a CLI command that scans a contract event from the last
// checkpoint up to the safe head and posts every match to the webhook server.
//
// Usage example:
//
//	web3-hooks scan polygon-mainnet ISuperfluid host Jail
//
// Meant to be run periodically (cron). It exits non-zero when the pass fails.
func scanCommand(sc Scanner) *cli.Command {
	return &cli.Command{
		Name:        "scan",
		Description: "Scans a contract event from the last checkpoint up to the safe head and delivers every match to the webhook server.",
		Usage:       "Runs one scan pass: scan <network> <interface> <contract name or address> <event>",
		ArgsUsage:   "<network> <interface> <contract> <event>",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "from-block",
				Usage:   "First block to scan, ignoring the checkpoint",
				Sources: cli.EnvVars("FROMBLOCK"),
			},
			&cli.Uint64Flag{
				Name:    "head-offset",
				Usage:   "Blocks kept between the chain head and the last scanned block",
				Value:   scanner.DefaultHeadOffset,
				Sources: cli.EnvVars("BLOCK_HEAD_OFFSET"),
			},
			&cli.StringFlag{
				Name:    "contract-address",
				Usage:   "Contract address to scan instead of resolving the contract argument",
				Sources: cli.EnvVars("CONTRACT_ADDRESS"),
			},
			&cli.StringFlag{
				Name:    "rpc",
				Usage:   "JSON-RPC endpoint (default: https://<network>.rpc.x.superfluid.dev)",
				Sources: cli.EnvVars("RPC"),
			},
			&cli.StringFlag{
				Name:    "webhook-base-url",
				Usage:   "Base URL of the webhook server",
				Value:   "http://localhost:3000",
				Sources: cli.EnvVars("WEBHOOK_BASE_URL"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 4 {
				return ErrScanUsage
			}

			req := ScanRequest{
				Network:         c.Args().Get(0),
				Interface:       c.Args().Get(1),
				Contract:        c.Args().Get(2),
				Event:           c.Args().Get(3),
				ContractAddress: c.String("contract-address"),
				HeadOffset:      c.Uint64("head-offset"),
				RPC:             c.String("rpc"),
				WebhookBaseURL:  c.String("webhook-base-url"),
			}

			if c.IsSet("from-block") {
				from := c.Uint64("from-block")
				req.FromBlock = &from
			}

			res, err := sc.Scan(ctx, req)
			if err != nil {
				return err
			}

			if res.UpToDate {
				fmt.Fprintf(c.Root().Writer, "up to date at block %d\n", res.Checkpoint)
				return nil
			}

			fmt.Fprintf(c.Root().Writer, "scanned [%d,%d] in %d ranges, %d events, checkpoint %d\n",
				res.From, res.To, res.SubRanges, res.Events, res.Checkpoint)
			return nil
		},
	}
}
