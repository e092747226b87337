// Package format renders enriched events into Slack messages. Rendering is
// pure: the same EnrichedEvent always yields the same Message.
package format

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/network"
)

// ErrUnexpectedDetails is returned when an event carries details of a type its
// renderer does not handle.
var ErrUnexpectedDetails = errors.New("unexpected event details")

// DateLayout matches the RFC 7231 form used in message headers.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// RenderFunc renders one event kind.
type RenderFunc func(e event.EnrichedEvent) (Message, error)

type formatter struct {
	renderers map[event.Kind]RenderFunc
}

// New creates a formatter with a renderer for every kind the default
// enrichment resolver handles.
func New() *formatter {
	f := &formatter{
		renderers: make(map[event.Kind]RenderFunc),
	}

	f.Register(event.KindAppRegistered, AppRegistered)
	f.Register(event.KindJail, Jail)
	f.Register(event.KindVestingScheduleCreated, ScheduleCreated)
	f.Register(event.KindFlowScheduleCreated, ScheduleCreated)
	f.Register(event.KindTokenUpgraded, TokenMovement)
	f.Register(event.KindTokenDowngraded, TokenMovement)

	return f
}

// Register installs fn for kind, replacing any previous renderer.
func (f *formatter) Register(kind event.Kind, fn RenderFunc) {
	f.renderers[kind] = fn
}

// Kinds returns the kinds with a renderer, sorted.
func (f *formatter) Kinds() []event.Kind {
	kinds := make([]event.Kind, 0, len(f.renderers))
	for k := range f.renderers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Format renders e, or returns event.ErrNoFormatter for kinds without a renderer.
func (f *formatter) Format(e event.EnrichedEvent) (Message, error) {
	render, ok := f.renderers[e.Kind]
	if !ok {
		return Message{}, fmt.Errorf("%w: %s", event.ErrNoFormatter, e.Kind)
	}

	return render(e)
}

// Date formats t for message headers.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Header returns the first line shared by the plain text messages:
//
//	*polygon-mainnet* - Block `42` - Event *Jail* at Tue, 14 Nov 2023 22:13:20 GMT
//
// The date is left out when the indexer reported no timestamp.
func Header(e event.EnrichedEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s* - Block `%d` - Event *%s*", e.Network, e.BlockNumber, e.Kind)
	if !e.Timestamp.IsZero() {
		b.WriteString(" at ")
		b.WriteString(Date(e.Timestamp))
	}
	b.WriteString("\n")

	return b.String()
}

// TxLink returns a Slack link to the transaction on the explorer.
func TxLink(explorer, hash string) string {
	return fmt.Sprintf("<%s|%s>", network.ExplorerTxURL(explorer, hash), hash)
}

// AddressLink returns a Slack link to the address on the explorer.
func AddressLink(explorer, addr string) string {
	return fmt.Sprintf("<%s|%s>", network.ExplorerAddressURL(explorer, addr), addr)
}

func unexpected(e event.EnrichedEvent) error {
	return fmt.Errorf("%w: %T for %s", ErrUnexpectedDetails, e.Details, e.Kind)
}

func AppRegistered(e event.EnrichedEvent) (Message, error) {
	d, ok := e.Details.(event.AppRegisteredDetails)
	if !ok {
		return Message{}, unexpected(e)
	}

	return Message{
		Text: Header(e) +
			"App address: " + AddressLink(e.ExplorerURL, d.App) + "\n" +
			"Tx: " + TxLink(e.ExplorerURL, e.TransactionHash),
	}, nil
}

func Jail(e event.EnrichedEvent) (Message, error) {
	d, ok := e.Details.(event.JailDetails)
	if !ok {
		return Message{}, unexpected(e)
	}

	reason := d.Reason
	if reason == "" {
		reason = fmt.Sprintf("unknown (%d)", d.ReasonCode)
	}

	return Message{
		Text: Header(e) +
			"App address: " + AddressLink(e.ExplorerURL, d.App) + "\n" +
			"Reason: " + reason + "\n" +
			"Tx: " + TxLink(e.ExplorerURL, e.TransactionHash),
	}, nil
}

// ScheduleCreated renders vesting and flow schedule creations.
func ScheduleCreated(e event.EnrichedEvent) (Message, error) {
	d, ok := e.Details.(event.ScheduleDetails)
	if !ok {
		return Message{}, unexpected(e)
	}

	return Message{
		Text: Header(e) +
			"Token: " + d.TokenSymbol + " " + AddressLink(e.ExplorerURL, d.TokenAddress) + "\n" +
			"Sender: " + AddressLink(e.ExplorerURL, d.Sender) + "\n" +
			"Receiver: " + AddressLink(e.ExplorerURL, d.Receiver) + "\n" +
			"Tx: " + TxLink(e.ExplorerURL, e.TransactionHash),
	}, nil
}

// TokenMovement renders upgrades and downgrades as a Block Kit message.
func TokenMovement(e event.EnrichedEvent) (Message, error) {
	d, ok := e.Details.(event.TokenMovementDetails)
	if !ok {
		return Message{}, unexpected(e)
	}

	title := "Upgrade Token Event"
	if e.Kind == event.KindTokenDowngraded {
		title = "Downgrade Token Event"
	}

	amount := "0"
	if d.Amount != nil {
		amount = d.Amount.String()
	}

	date := "unknown"
	if !e.Timestamp.IsZero() {
		date = Date(e.Timestamp)
	}

	return Message{
		Text: title,
		Blocks: []Block{
			Section(fmt.Sprintf("*Network:* %s\n*Block Number:* `%d`\n*Date:* %s", e.Network, e.BlockNumber, date)),
			Fields(
				"*Transaction Hash:* "+TxLink(e.ExplorerURL, e.TransactionHash),
				"*Event Name:* "+string(e.Kind),
				"*Token Address:* "+AddressLink(e.ExplorerURL, d.TokenAddress),
				"*Token Name:* "+d.TokenName,
				"*Token Symbol:* "+d.TokenSymbol,
				"*Account:* "+AddressLink(e.ExplorerURL, d.Account),
				"*Amount:* "+amount,
				"*Formatted Amount:* "+d.WholeTokens().String(),
			),
		},
	}, nil
}
