// Package network holds the static catalog of supported networks: chain
// ids, explorers, query limits, endpoints and well-known contract addresses.
package network

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownNetwork is returned when a network name is not in the catalog.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrUnknownContract is returned when a contract is neither a valid
	// address nor a name listed for the network.
	ErrUnknownContract = errors.New("unknown contract")

	// ErrInvalidCatalog is returned when a catalog file cannot be used.
	ErrInvalidCatalog = errors.New("invalid network catalog")
)

const (
	defaultRPCTemplate      = "https://%s.rpc.x.superfluid.dev"
	defaultSubgraphTemplate = "https://%s.subgraph.x.superfluid.dev"
)

//go:embed networks.yaml
var embeddedCatalog []byte

// Network describes one chain.
type Network struct {
	Name           string            `yaml:"name"`
	ChainID        uint64            `yaml:"chainId"`
	Explorer       string            `yaml:"explorer"`
	LogsQueryRange uint64            `yaml:"logsQueryRange"`
	Subgraph       string            `yaml:"subgraph"`
	RPC            string            `yaml:"rpc"`
	Contracts      map[string]string `yaml:"contracts"`
}

// RPCURL returns the configured RPC endpoint or the canonical Superfluid one.
func (n Network) RPCURL() string {
	if n.RPC != "" {
		return n.RPC
	}
	return fmt.Sprintf(defaultRPCTemplate, n.Name)
}

// SubgraphURL returns the configured subgraph endpoint or the canonical one.
func (n Network) SubgraphURL() string {
	if n.Subgraph != "" {
		return n.Subgraph
	}
	return fmt.Sprintf(defaultSubgraphTemplate, n.Name)
}

// ResolveContract returns nameOrAddress itself when it is a hex address,
// otherwise the catalog address registered under that name.
func (n Network) ResolveContract(nameOrAddress string) (common.Address, error) {
	if common.IsHexAddress(nameOrAddress) {
		return common.HexToAddress(nameOrAddress), nil
	}

	addr, ok := n.Contracts[nameOrAddress]
	if !ok || !common.IsHexAddress(addr) {
		return common.Address{}, fmt.Errorf("%w: %q on %s", ErrUnknownContract, nameOrAddress, n.Name)
	}

	return common.HexToAddress(addr), nil
}

// TxURL links a transaction on the explorer.
func (n Network) TxURL(hash string) string {
	return ExplorerTxURL(n.Explorer, hash)
}

// AddressURL links an address on the explorer.
func (n Network) AddressURL(addr string) string {
	return ExplorerAddressURL(n.Explorer, addr)
}

// ExplorerTxURL builds "<base>/tx/<hash>".
func ExplorerTxURL(base, hash string) string {
	return strings.TrimSuffix(base, "/") + "/tx/" + hash
}

// ExplorerAddressURL builds "<base>/address/<addr>".
func ExplorerAddressURL(base, addr string) string {
	return strings.TrimSuffix(base, "/") + "/address/" + addr
}

// Catalog is an immutable set of networks indexed by name.
type Catalog struct {
	byName map[string]Network
	names  []string
}

type catalogFile struct {
	Networks []Network `yaml:"networks"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Load reads a catalog from path, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog. Names must be unique and every network needs
// a chain id, an explorer and a positive logs query range.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{byName: make(map[string]Network, len(file.Networks))}
	for _, n := range file.Networks {
		switch {
		case n.Name == "":
			return nil, fmt.Errorf("%w: network without name", ErrInvalidCatalog)
		case n.ChainID == 0:
			return nil, fmt.Errorf("%w: %s has no chainId", ErrInvalidCatalog, n.Name)
		case n.Explorer == "":
			return nil, fmt.Errorf("%w: %s has no explorer", ErrInvalidCatalog, n.Name)
		case n.LogsQueryRange == 0:
			return nil, fmt.Errorf("%w: %s has no logsQueryRange", ErrInvalidCatalog, n.Name)
		}

		if _, dup := c.byName[n.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate network %s", ErrInvalidCatalog, n.Name)
		}

		n.Explorer = strings.TrimSuffix(n.Explorer, "/")
		c.byName[n.Name] = n
		c.names = append(c.names, n.Name)
	}

	slices.Sort(c.names)
	return c, nil
}

// ByName returns the network called name.
func (c *Catalog) ByName(name string) (Network, error) {
	n, ok := c.byName[name]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return n, nil
}

// All returns every network sorted by name.
func (c *Catalog) All() []Network {
	out := make([]Network, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}
