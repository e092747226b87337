package contracts

import (
	"math/big"
	"testing"

	"github.com/superfluid-finance/web3-hooks/internal/event"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterfaces(t *testing.T) {
	assert.Equal(t,
		[]string{"IFlowScheduler", "ISuperToken", "ISuperfluid", "IVestingScheduler"},
		Interfaces(),
	)
}

func TestLookup(t *testing.T) {
	t.Run("known event", func(t *testing.T) {
		ev, err := Lookup("ISuperfluid", "Jail")
		require.NoError(t, err)
		assert.Equal(t, "Jail(address,uint256)", ev.Sig)
	})

	t.Run("unknown interface", func(t *testing.T) {
		_, err := Lookup("IUniswapV2Pair", "Swap")
		assert.ErrorIs(t, err, ErrUnknownInterface)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := Lookup("ISuperToken", "Minted")
		assert.ErrorIs(t, err, ErrUnknownEvent)
	})
}

func TestDecodeLog(t *testing.T) {
	t.Run("indexed address and uint256 data", func(t *testing.T) {
		ev, err := Lookup("ISuperToken", "TokenDowngraded")
		require.NoError(t, err)

		account := common.HexToAddress("0x1305F6B6Df9Dc47159D12Eb7aC2804d4A33173c2")
		amount, _ := new(big.Int).SetString("250000000000000000000", 10)

		args, err := DecodeLog(ev, types.Log{
			Topics: []common.Hash{ev.ID, common.BytesToHash(account.Bytes())},
			Data:   common.LeftPadBytes(amount.Bytes(), 32),
		})
		require.NoError(t, err)
		assert.Equal(t, []event.Arg{
			event.Arg(account.Hex()),
			"250000000000000000000",
		}, args)
	})

	t.Run("three indexed addresses and mixed data", func(t *testing.T) {
		ev, err := Lookup("IVestingScheduler", "VestingScheduleCreated")
		require.NoError(t, err)

		token := common.HexToAddress("0x00000000000000000000000000000000000000aa")
		sender := common.HexToAddress("0x00000000000000000000000000000000000000bb")
		receiver := common.HexToAddress("0x00000000000000000000000000000000000000cc")

		data, err := ev.Inputs.NonIndexed().Pack(
			uint32(1700000000), uint32(1700100000), big.NewInt(-5), uint32(1800000000), big.NewInt(42),
		)
		require.NoError(t, err)

		args, err := DecodeLog(ev, types.Log{
			Topics: []common.Hash{
				ev.ID,
				common.BytesToHash(token.Bytes()),
				common.BytesToHash(sender.Bytes()),
				common.BytesToHash(receiver.Bytes()),
			},
			Data: data,
		})
		require.NoError(t, err)
		assert.Equal(t, []event.Arg{
			event.Arg(token.Hex()),
			event.Arg(sender.Hex()),
			event.Arg(receiver.Hex()),
			"1700000000",
			"1700100000",
			"-5",
			"1800000000",
			"42",
		}, args)
	})

	t.Run("dynamic bytes", func(t *testing.T) {
		ev, err := Lookup("IFlowScheduler", "FlowScheduleCreated")
		require.NoError(t, err)

		data, err := ev.Inputs.NonIndexed().Pack(
			uint32(1), uint32(2), big.NewInt(3), uint32(4), big.NewInt(5), []byte{0xca, 0xfe},
		)
		require.NoError(t, err)

		args, err := DecodeLog(ev, types.Log{
			Topics: []common.Hash{ev.ID, {}, {}, {}},
			Data:   data,
		})
		require.NoError(t, err)
		require.Len(t, args, 9)
		assert.Equal(t, event.Arg("0xcafe"), args[8])
	})

	t.Run("other event", func(t *testing.T) {
		ev, err := Lookup("ISuperfluid", "Jail")
		require.NoError(t, err)
		other, err := Lookup("ISuperfluid", "AppRegistered")
		require.NoError(t, err)

		_, err = DecodeLog(ev, types.Log{Topics: []common.Hash{other.ID}})
		assert.ErrorIs(t, err, ErrEventMismatch)

		_, err = DecodeLog(ev, types.Log{})
		assert.ErrorIs(t, err, ErrEventMismatch)
	})

	t.Run("truncated data", func(t *testing.T) {
		ev, err := Lookup("ISuperfluid", "Jail")
		require.NoError(t, err)

		_, err = DecodeLog(ev, types.Log{
			Topics: []common.Hash{ev.ID, {}},
			Data:   []byte{0x01},
		})
		assert.Error(t, err)
	})
}
