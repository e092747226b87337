package enrich

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/event"
)

// Jail reason codes as defined by the Superfluid host (SuperAppDefinitions).
var jailReasons = map[int]string{
	1:  "APP_RULE_REGISTRATION_ONLY_IN_CONSTRUCTOR",
	2:  "APP_RULE_NO_REGISTRATION_FOR_EOA",
	10: "APP_RULE_NO_REVERT_ON_TERMINATION_CALLBACK",
	11: "APP_RULE_NO_CRITICAL_SENDER_ACCOUNT",
	12: "APP_RULE_NO_CRITICAL_RECEIVER_ACCOUNT",
	20: "APP_RULE_CTX_IS_READONLY",
	21: "APP_RULE_CTX_IS_NOT_CLEAN",
	22: "APP_RULE_CTX_IS_MALFORMATED",
	30: "APP_RULE_COMPOSITE_APP_IS_NOT_WHITELISTED",
	31: "APP_RULE_COMPOSITE_APP_IS_JAILED",
	40: "APP_RULE_MAX_APP_LEVEL_REACHED",
}

// JailReason returns the symbolic name of a jail reason code, or "" when unknown.
func JailReason(code int) string {
	return jailReasons[code]
}

const (
	appRegisteredQuery = `query AppRegistered($id: ID!) {
  appRegisteredEvent(id: $id) { app timestamp }
}`

	jailQuery = `query Jail($id: ID!) {
  jailEvent(id: $id) { app reason timestamp }
}`

	tokenQuery = `query Token($token: ID!) {
  token(id: $token) { id name symbol }
}`

	tokenUpgradedQuery = `query TokenUpgraded($id: ID!, $token: ID!) {
  event: tokenUpgradedEvent(id: $id) { timestamp }
  token(id: $token) { id name symbol }
}`

	tokenDowngradedQuery = `query TokenDowngraded($id: ID!, $token: ID!) {
  event: tokenDowngradedEvent(id: $id) { timestamp }
  token(id: $token) { id name symbol }
}`
)

// bigIntString decodes subgraph BigInt values, which arrive as JSON strings
// (and occasionally as numbers).
type bigIntString string

func (b *bigIntString) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if _, ok := new(big.Int).SetString(s, 10); !ok {
		return fmt.Errorf("invalid BigInt %s", data)
	}
	*b = bigIntString(s)
	return nil
}

func (b bigIntString) time() time.Time {
	secs, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil || secs == 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

type tokenEntity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func requireArg(e event.RawEvent, i int, name string) (event.Arg, error) {
	arg, ok := e.Arg(i)
	if !ok || arg == "" {
		return "", fmt.Errorf("%w: %s has no %s argument", ErrMalformedEvent, e.Kind, name)
	}
	return arg, nil
}

// Validate checks that e carries the fields the handler of its kind reads.
// Kinds without a handler or without argument requirements pass.
func Validate(e event.RawEvent) error {
	switch e.Kind {
	case event.KindVestingScheduleCreated, event.KindFlowScheduleCreated:
		_, err := scheduleArgs(e)
		return err
	case event.KindTokenUpgraded, event.KindTokenDowngraded:
		_, err := movementArgs(e)
		return err
	}
	return nil
}

type schedule struct {
	token, sender, receiver event.Arg
}

func scheduleArgs(e event.RawEvent) (schedule, error) {
	var (
		s   schedule
		err error
	)
	if s.token, err = requireArg(e, 0, "superToken"); err != nil {
		return schedule{}, err
	}
	if s.sender, err = requireArg(e, 1, "sender"); err != nil {
		return schedule{}, err
	}
	if s.receiver, err = requireArg(e, 2, "receiver"); err != nil {
		return schedule{}, err
	}
	return s, nil
}

type movement struct {
	account event.Arg
	amount  *big.Int
}

func movementArgs(e event.RawEvent) (movement, error) {
	account, err := requireArg(e, 0, "account")
	if err != nil {
		return movement{}, err
	}
	rawAmount, err := requireArg(e, 1, "amount")
	if err != nil {
		return movement{}, err
	}
	amount, ok := rawAmount.BigInt()
	if !ok {
		return movement{}, fmt.Errorf("%w: amount %q is not an integer", ErrMalformedEvent, rawAmount)
	}
	if e.Address == "" {
		return movement{}, fmt.Errorf("%w: %s has no token address", ErrMalformedEvent, e.Kind)
	}
	return movement{account: account, amount: amount}, nil
}

// AppRegistered looks up the registered app and the block time.
func AppRegistered(ctx context.Context, idx Indexer, e event.RawEvent) (Lookup, error) {
	var data struct {
		Entity *struct {
			App       string       `json:"app"`
			Timestamp bigIntString `json:"timestamp"`
		} `json:"appRegisteredEvent"`
	}

	if err := idx.Query(ctx, e.Network, appRegisteredQuery, map[string]any{"id": e.IndexerID()}, &data); err != nil {
		return Lookup{}, err
	}
	if data.Entity == nil {
		return Lookup{}, fmt.Errorf("%w: appRegisteredEvent %s", ErrIndexerNotFound, e.IndexerID())
	}

	return Lookup{
		Timestamp: data.Entity.Timestamp.time(),
		Details:   event.AppRegisteredDetails{App: data.Entity.App},
	}, nil
}

// Jail looks up the jailed app and translates the reason code.
func Jail(ctx context.Context, idx Indexer, e event.RawEvent) (Lookup, error) {
	var data struct {
		Entity *struct {
			App       string       `json:"app"`
			Reason    bigIntString `json:"reason"`
			Timestamp bigIntString `json:"timestamp"`
		} `json:"jailEvent"`
	}

	if err := idx.Query(ctx, e.Network, jailQuery, map[string]any{"id": e.IndexerID()}, &data); err != nil {
		return Lookup{}, err
	}
	if data.Entity == nil {
		return Lookup{}, fmt.Errorf("%w: jailEvent %s", ErrIndexerNotFound, e.IndexerID())
	}

	code, err := strconv.Atoi(string(data.Entity.Reason))
	if err != nil {
		return Lookup{}, fmt.Errorf("jail reason %q: %w", data.Entity.Reason, err)
	}

	return Lookup{
		Timestamp: data.Entity.Timestamp.time(),
		Details: event.JailDetails{
			App:        data.Entity.App,
			ReasonCode: code,
			Reason:     JailReason(code),
		},
	}, nil
}

// ScheduleCreated handles vesting and flow schedule creations, which share
// their leading arguments (superToken, sender, receiver).
func ScheduleCreated(ctx context.Context, idx Indexer, e event.RawEvent) (Lookup, error) {
	args, err := scheduleArgs(e)
	if err != nil {
		return Lookup{}, err
	}
	tokenAddr := args.token

	var data struct {
		Token *tokenEntity `json:"token"`
	}

	vars := map[string]any{"token": strings.ToLower(tokenAddr.String())}
	if err := idx.Query(ctx, e.Network, tokenQuery, vars, &data); err != nil {
		return Lookup{}, err
	}
	if data.Token == nil {
		return Lookup{}, fmt.Errorf("%w: token %s", ErrIndexerNotFound, tokenAddr)
	}

	return Lookup{
		Details: event.ScheduleDetails{
			TokenAddress: tokenAddr.String(),
			TokenSymbol:  data.Token.Symbol,
			Sender:       args.sender.String(),
			Receiver:     args.receiver.String(),
		},
	}, nil
}

// TokenMovement handles TokenUpgraded and TokenDowngraded emitted by a super
// token: the token is the emitting contract, args are (account, amount).
func TokenMovement(ctx context.Context, idx Indexer, e event.RawEvent) (Lookup, error) {
	args, err := movementArgs(e)
	if err != nil {
		return Lookup{}, err
	}

	query := tokenUpgradedQuery
	if e.Kind == event.KindTokenDowngraded {
		query = tokenDowngradedQuery
	}

	var data struct {
		Event *struct {
			Timestamp bigIntString `json:"timestamp"`
		} `json:"event"`
		Token *tokenEntity `json:"token"`
	}

	vars := map[string]any{
		"id":    e.IndexerID(),
		"token": strings.ToLower(e.Address),
	}
	if err := idx.Query(ctx, e.Network, query, vars, &data); err != nil {
		return Lookup{}, err
	}
	if data.Token == nil {
		return Lookup{}, fmt.Errorf("%w: token %s", ErrIndexerNotFound, e.Address)
	}

	var ts time.Time
	if data.Event != nil {
		ts = data.Event.Timestamp.time()
	}

	return Lookup{
		Timestamp: ts,
		Details: event.TokenMovementDetails{
			TokenAddress: e.Address,
			TokenName:    data.Token.Name,
			TokenSymbol:  data.Token.Symbol,
			Account:      args.account.String(),
			Amount:       args.amount,
		},
	}, nil
}
