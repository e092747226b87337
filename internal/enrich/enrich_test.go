package enrich_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/enrich"
	"github.com/superfluid-finance/web3-hooks/internal/enrich/mocks"
	"github.com/superfluid-finance/web3-hooks/internal/event"
	"github.com/superfluid-finance/web3-hooks/internal/network"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	txHash     = "0x5b0f7b2f0d7c1b4e8f6a3d2c1b0a99887766554433221100ffeeddccbbaa9988"
	superToken = "0xCAa7349CEA390F89641fe306D93591f87595dc1F"
	appAddr    = "0x1111111111111111111111111111111111111111"
	sender     = "0x2222222222222222222222222222222222222222"
	receiver   = "0x3333333333333333333333333333333333333333"
)

func catalog(t *testing.T) *network.Catalog {
	t.Helper()

	c, err := network.Default()
	require.NoError(t, err)
	return c
}

func wei(tokens int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(tokens), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

// respond fills out with the JSON fixture, as the subgraph transport would.
func respond(t *testing.T, fixture string) func(context.Context, string, string, map[string]any, any) {
	return func(_ context.Context, _, _ string, _ map[string]any, out any) {
		require.NoError(t, json.Unmarshal([]byte(fixture), out))
	}
}

func rawEvent(kind event.Kind, args ...event.Arg) event.RawEvent {
	return event.RawEvent{
		Network:         "polygon-mainnet",
		ChainID:         137,
		Kind:            kind,
		Address:         superToken,
		BlockNumber:     42,
		TransactionHash: txHash,
		LogIndex:        3,
		Args:            args,
	}
}

func TestResolver_Kinds(t *testing.T) {
	r := enrich.New(mocks.NewIndexer(t), catalog(t))

	assert.Equal(t, []event.Kind{
		event.KindAppRegistered,
		event.KindFlowScheduleCreated,
		event.KindJail,
		event.KindTokenDowngraded,
		event.KindTokenUpgraded,
		event.KindVestingScheduleCreated,
	}, r.Kinds())

	r.Register("Custom", func(context.Context, enrich.Indexer, event.RawEvent) (enrich.Lookup, error) {
		return enrich.Lookup{}, nil
	})
	assert.Contains(t, r.Kinds(), event.Kind("Custom"))
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("unknown kind never touches the indexer", func(t *testing.T) {
		idx := mocks.NewIndexer(t)
		r := enrich.New(idx, catalog(t))

		_, err := r.Resolve(t.Context(), rawEvent("Transfer"))
		assert.ErrorIs(t, err, event.ErrNoHandler)
		assert.True(t, event.IsSkippable(err))
		idx.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown network", func(t *testing.T) {
		r := enrich.New(mocks.NewIndexer(t), catalog(t))

		e := rawEvent(event.KindJail)
		e.Network = "nowhere"

		_, err := r.Resolve(t.Context(), e)
		assert.ErrorIs(t, err, network.ErrUnknownNetwork)
	})

	t.Run("app registered", func(t *testing.T) {
		idx := mocks.NewIndexer(t)
		e := rawEvent(event.KindAppRegistered, appAddr)

		idx.EXPECT().
			Query(mock.Anything, "polygon-mainnet", mock.Anything, map[string]any{"id": "AppRegistered-" + txHash + "-3"}, mock.Anything).
			Run(respond(t, `{"appRegisteredEvent":{"app":"`+appAddr+`","timestamp":"1700000000"}}`)).
			Return(nil)

		got, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), e)
		require.NoError(t, err)

		assert.Equal(t, event.EnrichedEvent{
			Network:         "polygon-mainnet",
			ChainID:         137,
			Kind:            event.KindAppRegistered,
			BlockNumber:     42,
			TransactionHash: txHash,
			LogIndex:        3,
			Timestamp:       time.Unix(1700000000, 0).UTC(),
			ExplorerURL:     "https://polygonscan.com",
			Details:         event.AppRegisteredDetails{App: appAddr},
		}, got)
	})

	t.Run("jail translates the reason code", func(t *testing.T) {
		idx := mocks.NewIndexer(t)

		idx.EXPECT().
			Query(mock.Anything, "polygon-mainnet", mock.Anything, mock.Anything, mock.Anything).
			Run(respond(t, `{"jailEvent":{"app":"`+appAddr+`","reason":"10","timestamp":"1700000000"}}`)).
			Return(nil)

		got, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), rawEvent(event.KindJail, appAddr, "10"))
		require.NoError(t, err)

		assert.Equal(t, event.JailDetails{
			App:        appAddr,
			ReasonCode: 10,
			Reason:     "APP_RULE_NO_REVERT_ON_TERMINATION_CALLBACK",
		}, got.Details)
	})

	t.Run("missing entity is recoverable", func(t *testing.T) {
		idx := mocks.NewIndexer(t)

		idx.EXPECT().
			Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(respond(t, `{"jailEvent":null}`)).
			Return(nil)

		_, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), rawEvent(event.KindJail))
		assert.ErrorIs(t, err, enrich.ErrIndexerNotFound)
		assert.False(t, event.IsSkippable(err))
	})

	t.Run("indexer failure propagates", func(t *testing.T) {
		idx := mocks.NewIndexer(t)
		boom := errors.New("subgraph unavailable")

		idx.EXPECT().
			Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(boom)

		_, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), rawEvent(event.KindAppRegistered))
		assert.ErrorIs(t, err, boom)
	})

	for _, kind := range []event.Kind{event.KindVestingScheduleCreated, event.KindFlowScheduleCreated} {
		t.Run(string(kind), func(t *testing.T) {
			idx := mocks.NewIndexer(t)
			e := rawEvent(kind, superToken, sender, receiver, "1700000000")

			idx.EXPECT().
				Query(mock.Anything, "polygon-mainnet", mock.Anything, map[string]any{"token": "0xcaa7349cea390f89641fe306d93591f87595dc1f"}, mock.Anything).
				Run(respond(t, `{"token":{"id":"0xcaa7349cea390f89641fe306d93591f87595dc1f","name":"Super USDC","symbol":"USDCx"}}`)).
				Return(nil)

			got, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), e)
			require.NoError(t, err)

			assert.True(t, got.Timestamp.IsZero())
			assert.Equal(t, event.ScheduleDetails{
				TokenAddress: superToken,
				TokenSymbol:  "USDCx",
				Sender:       sender,
				Receiver:     receiver,
			}, got.Details)
		})
	}

	t.Run("schedule with missing args is malformed", func(t *testing.T) {
		idx := mocks.NewIndexer(t)

		_, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), rawEvent(event.KindVestingScheduleCreated, superToken))
		assert.ErrorIs(t, err, enrich.ErrMalformedEvent)
	})
}

func TestResolver_TokenMovement(t *testing.T) {
	tokenFixture := `{"event":{"timestamp":"1700000000"},"token":{"id":"0xcaa7349cea390f89641fe306d93591f87595dc1f","name":"Super USDC","symbol":"USDCx"}}`

	t.Run("above the minimum amount", func(t *testing.T) {
		idx := mocks.NewIndexer(t)
		e := rawEvent(event.KindTokenDowngraded, sender, event.Arg(wei(250).String()))

		idx.EXPECT().
			Query(mock.Anything, "polygon-mainnet", mock.Anything, map[string]any{
				"id":    "TokenDowngraded-" + txHash + "-3",
				"token": "0xcaa7349cea390f89641fe306d93591f87595dc1f",
			}, mock.Anything).
			Run(respond(t, tokenFixture)).
			Return(nil)

		got, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), e)
		require.NoError(t, err)

		assert.False(t, got.Suppressed)
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), got.Timestamp)

		details, ok := got.Details.(event.TokenMovementDetails)
		require.True(t, ok)
		assert.Equal(t, "Super USDC", details.TokenName)
		assert.Equal(t, "USDCx", details.TokenSymbol)
		assert.Equal(t, sender, details.Account)
		assert.Equal(t, 0, wei(250).Cmp(details.Amount))
		assert.Equal(t, "250", details.WholeTokens().String())
	})

	t.Run("below the minimum amount is suppressed", func(t *testing.T) {
		idx := mocks.NewIndexer(t)

		idx.EXPECT().
			Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(respond(t, tokenFixture)).
			Return(nil)

		got, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), rawEvent(event.KindTokenUpgraded, sender, event.Arg(wei(99).String())))
		require.NoError(t, err)
		assert.True(t, got.Suppressed)
	})

	t.Run("nil minimum disables suppression", func(t *testing.T) {
		idx := mocks.NewIndexer(t)

		idx.EXPECT().
			Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(respond(t, tokenFixture)).
			Return(nil)

		got, err := enrich.New(idx, catalog(t), enrich.WithMinAmount(nil)).
			Resolve(t.Context(), rawEvent(event.KindTokenUpgraded, sender, "1"))
		require.NoError(t, err)
		assert.False(t, got.Suppressed)
	})

	t.Run("unknown token", func(t *testing.T) {
		idx := mocks.NewIndexer(t)

		idx.EXPECT().
			Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(respond(t, `{"event":null,"token":null}`)).
			Return(nil)

		_, err := enrich.New(idx, catalog(t)).Resolve(t.Context(), rawEvent(event.KindTokenUpgraded, sender, "1"))
		assert.ErrorIs(t, err, enrich.ErrIndexerNotFound)
	})

	t.Run("non-integer amount", func(t *testing.T) {
		_, err := enrich.New(mocks.NewIndexer(t), catalog(t)).
			Resolve(t.Context(), rawEvent(event.KindTokenUpgraded, sender, "lots"))
		assert.ErrorIs(t, err, enrich.ErrMalformedEvent)
	})

	t.Run("same input resolves identically", func(t *testing.T) {
		idx := mocks.NewIndexer(t)

		idx.EXPECT().
			Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(respond(t, tokenFixture)).
			Return(nil).
			Times(2)

		r := enrich.New(idx, catalog(t))
		e := rawEvent(event.KindTokenUpgraded, sender, event.Arg(wei(500).String()))

		first, err := r.Resolve(t.Context(), e)
		require.NoError(t, err)
		second, err := r.Resolve(t.Context(), e)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestJailReason(t *testing.T) {
	assert.Equal(t, "APP_RULE_MAX_APP_LEVEL_REACHED", enrich.JailReason(40))
	assert.Empty(t, enrich.JailReason(99))
}

func TestValidate(t *testing.T) {
	noAddress := rawEvent(event.KindTokenDowngraded, sender, "1")
	noAddress.Address = ""

	malformed := map[string]event.RawEvent{
		"schedule without receiver":       rawEvent(event.KindFlowScheduleCreated, superToken, sender),
		"schedule with empty sender":      rawEvent(event.KindVestingScheduleCreated, superToken, "", receiver),
		"token movement without amount":   rawEvent(event.KindTokenUpgraded, sender),
		"token movement with text amount": rawEvent(event.KindTokenUpgraded, sender, "lots"),
		"token movement without address":  noAddress,
	}

	for name, e := range malformed {
		t.Run("should reject "+name, func(t *testing.T) {
			err := enrich.Validate(e)
			assert.ErrorIs(t, err, enrich.ErrMalformedEvent)
			assert.True(t, event.IsSkippable(err))
		})
	}

	valid := map[string]event.RawEvent{
		"schedule":       rawEvent(event.KindVestingScheduleCreated, superToken, sender, receiver),
		"token movement": rawEvent(event.KindTokenUpgraded, sender, "250000000000000000000"),
		"jail":           rawEvent(event.KindJail),
		"unknown kind":   rawEvent("Minted"),
	}

	for name, e := range valid {
		t.Run("should accept "+name, func(t *testing.T) {
			assert.NoError(t, enrich.Validate(e))
		})
	}
}
