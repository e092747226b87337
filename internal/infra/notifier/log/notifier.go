// Package log is a notifier that writes messages to the application log. It
// stands in for Slack when no webhook URL is configured.
package log

import (
	"context"

	"github.com/superfluid-finance/web3-hooks/internal/format"
	"github.com/superfluid-finance/web3-hooks/internal/pkg/logger"
)

type notifier struct{}

// Send logs msg at info level. It never fails.
func (notifier) Send(ctx context.Context, msg format.Message) error {
	logger.Info(ctx, "notification", "text", msg.Text, "blocks", msg.Blocks)
	return nil
}

func NewNotifier() notifier {
	return notifier{}
}
