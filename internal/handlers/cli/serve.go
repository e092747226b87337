package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// ErrServiceStopped is returned when the service stops on its own without
// reporting a cause.
var ErrServiceStopped = errors.New("service stopped unexpectedly")

// Service is a long-running component started by the serve command. Done is
// closed when the service stops on its own; Err then reports why.
type Service interface {
	Start(ctx context.Context) error
	Done() <-chan struct{}
	Err() error
	Close()
}

// serveCommand returns a CLI command that starts the webhook server and the
// delay queue processor.
//
// Usage example:
//
//	web3-hooks serve
//
// The process runs until it receives SIGINT or SIGTERM, or until ctx is done.
// A service that stops on its own makes the command fail.
func serveCommand(svc Service) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the webhook server and the delay queue processor.",
		Usage:       "Accepts events over HTTP and relays them to Slack. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			case <-svc.Done():
				if err := svc.Err(); err != nil {
					return err
				}
				return ErrServiceStopped
			}
			return nil
		},
	}
}
