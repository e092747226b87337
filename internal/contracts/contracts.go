// Package contracts is the registry of contract ABIs the scanner can decode
// events for.
package contracts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/superfluid-finance/web3-hooks/internal/event"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrUnknownInterface is returned for an interface name without an embedded ABI.
	ErrUnknownInterface = errors.New("unknown interface")

	// ErrUnknownEvent is returned when the interface declares no such event.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrEventMismatch is returned when a log was not emitted by the expected event.
	ErrEventMismatch = errors.New("log does not match event")
)

//go:embed abis/*.json
var abiFS embed.FS

// registry parses every embedded ABI on first use.
var registry = sync.OnceValues(func() (map[string]abi.ABI, error) {
	files, err := fs.Glob(abiFS, "abis/*.json")
	if err != nil {
		return nil, err
	}

	out := make(map[string]abi.ABI, len(files))
	for _, file := range files {
		data, err := abiFS.ReadFile(file)
		if err != nil {
			return nil, err
		}

		parsed, err := abi.JSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}

		out[strings.TrimSuffix(path.Base(file), ".json")] = parsed
	}

	return out, nil
})

// Interfaces returns the names of all known interfaces, sorted.
func Interfaces() []string {
	abis, err := registry()
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(abis))
	for name := range abis {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the ABI definition of eventName on iface.
func Lookup(iface, eventName string) (abi.Event, error) {
	abis, err := registry()
	if err != nil {
		return abi.Event{}, fmt.Errorf("load abis: %w", err)
	}

	parsed, ok := abis[iface]
	if !ok {
		return abi.Event{}, fmt.Errorf("%w: %q", ErrUnknownInterface, iface)
	}

	ev, ok := parsed.Events[eventName]
	if !ok {
		return abi.Event{}, fmt.Errorf("%w: %q on %s", ErrUnknownEvent, eventName, iface)
	}

	return ev, nil
}

// DecodeLog decodes the indexed topics and data of log into arguments in
// declaration order. Indexed dynamic values (strings, bytes, arrays) are
// only available as their keccak hash and are returned as such.
func DecodeLog(ev abi.Event, log types.Log) ([]event.Arg, error) {
	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return nil, fmt.Errorf("%w: %s", ErrEventMismatch, ev.Name)
	}

	var indexed abi.Arguments
	for _, in := range ev.Inputs {
		if in.Indexed {
			indexed = append(indexed, in)
		}
	}

	values := make(map[string]any, len(ev.Inputs))
	if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("decode %s topics: %w", ev.Name, err)
	}
	if err := ev.Inputs.UnpackIntoMap(values, log.Data); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", ev.Name, err)
	}

	args := make([]event.Arg, 0, len(ev.Inputs))
	for _, in := range ev.Inputs {
		v, ok := values[in.Name]
		if !ok {
			return nil, fmt.Errorf("decode %s: missing argument %q", ev.Name, in.Name)
		}
		args = append(args, formatValue(v))
	}

	return args, nil
}

func formatValue(v any) event.Arg {
	switch v := v.(type) {
	case common.Address:
		return event.Arg(v.Hex())
	case common.Hash:
		return event.Arg(v.Hex())
	case *big.Int:
		return event.Arg(v.String())
	case []byte:
		return event.Arg(hexutil.Encode(v))
	case [32]byte:
		return event.Arg(hexutil.Encode(v[:]))
	case string:
		return event.Arg(v)
	default:
		return event.Arg(fmt.Sprint(v))
	}
}
