package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Arg is a decoded event argument in canonical text form: checksummed hex
// for addresses, base-10 for integers, 0x-hex for bytes and "true"/"false"
// for booleans.
type Arg string

// bigNumber is the object shape ethers.js uses when serializing integers.
type bigNumber struct {
	Type string `json:"type"`
	Hex  string `json:"hex"`
}

// UnmarshalJSON accepts a JSON string, number, boolean or an ethers
// {"type":"BigNumber","hex":"0x..."} object. Integers are normalized to base 10.
func (a *Arg) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty argument")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Arg(s)
		return nil

	case '{':
		var bn bigNumber
		if err := json.Unmarshal(data, &bn); err != nil {
			return err
		}

		n, ok := new(big.Int).SetString(strings.TrimPrefix(strings.ToLower(bn.Hex), "0x"), 16)
		if !ok {
			return fmt.Errorf("invalid BigNumber hex %q", bn.Hex)
		}
		*a = Arg(n.String())
		return nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*a = Arg(fmt.Sprint(b))
		return nil

	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unsupported argument %s: %w", data, err)
		}
		*a = Arg(n.String())
		return nil
	}
}

// String returns the canonical text.
func (a Arg) String() string {
	return string(a)
}

// BigInt parses the argument as a base-10 (or 0x-prefixed) integer.
func (a Arg) BigInt() (*big.Int, bool) {
	s := string(a)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return new(big.Int).SetString(s[2:], 16)
	}
	return new(big.Int).SetString(s, 10)
}
