package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TestNetwork selects the offline EVM mode, no RPC endpoint is dialed.
const TestNetwork = "TEST"

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Registry is the static network/asset registry loaded from config.yaml.
// It is read once at process start and never mutated afterwards, every
// accessor that hands out a map returns a copy.
type Registry struct {
	CurrentNetwork string                       `yaml:"current_network"`
	NativeAsset    string                       `yaml:"native_asset"`
	Networks       map[string]string            `yaml:"networks"`
	Assets         map[string]map[string]string `yaml:"assets"`
}

// Load reads and validates the registry at path.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	reg := &Registry{}
	if err = yaml.Unmarshal(raw, reg); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config file %s", path)
	}
	if err = reg.validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *Registry) validate() error {
	if len(r.Networks) == 0 {
		return errors.New("config: networks must not be empty")
	}
	if r.NativeAsset == "" {
		return errors.New("config: native_asset must not be empty")
	}
	if _, ok := r.Networks[r.CurrentNetwork]; !ok {
		return fmt.Errorf("config: current_network %q not found in networks", r.CurrentNetwork)
	}
	for symbol, byNetwork := range r.Assets {
		for network, address := range byNetwork {
			if _, ok := r.Networks[network]; !ok {
				return fmt.Errorf("config: asset %q references unknown network %q", symbol, network)
			}
			if !addressPattern.MatchString(address) {
				return fmt.Errorf("config: asset %q has malformed address %q on network %q", symbol, address, network)
			}
		}
	}
	return nil
}

// RPCURL returns the endpoint of the given network.
func (r *Registry) RPCURL(network string) (string, error) {
	url, ok := r.Networks[network]
	if !ok {
		return "", fmt.Errorf("config: network %q not found", network)
	}
	return url, nil
}

// CurrentRPCURL returns the endpoint of the selected network.
func (r *Registry) CurrentRPCURL() string {
	return r.Networks[r.CurrentNetwork]
}

// Offline reports whether the selected network runs without an RPC endpoint.
func (r *Registry) Offline() bool {
	return r.CurrentNetwork == TestNetwork
}

// NetworkNames returns the configured network names, sorted.
func (r *Registry) NetworkNames() []string {
	names := make([]string, 0, len(r.Networks))
	for name := range r.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AssetSymbols returns the configured asset symbols, sorted.
func (r *Registry) AssetSymbols() []string {
	symbols := make([]string, 0, len(r.Assets))
	for symbol := range r.Assets {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Asset returns a copy of the per-network address map of symbol.
func (r *Registry) Asset(symbol string) (map[string]string, error) {
	byNetwork, ok := r.Assets[symbol]
	if !ok {
		return nil, fmt.Errorf("config: asset %q not found", symbol)
	}
	cp := make(map[string]string, len(byNetwork))
	for network, address := range byNetwork {
		cp[network] = address
	}
	return cp, nil
}

// IsNative reports whether symbol is the chain-native asset.
func (r *Registry) IsNative(symbol string) bool {
	return symbol == r.NativeAsset
}
