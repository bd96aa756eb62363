package service

import (
	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"

	"github.com/evmlabs/walletd/config"
)

// AssetService answers asset lookups against the static registry.
type AssetService struct {
	reg *config.Registry
	log log15.Logger
}

func NewAsset(reg *config.Registry, logger log15.Logger) *AssetService {
	return &AssetService{reg: reg, log: logger}
}

// All returns every configured asset symbol, sorted.
func (s *AssetService) All() []string {
	return s.reg.AssetSymbols()
}

// Native returns the chain-native asset symbol.
func (s *AssetService) Native() string {
	return s.reg.NativeAsset
}

func (s *AssetService) IsNative(symbol string) bool {
	return s.reg.IsNative(symbol)
}

// Get returns the per-network address map of symbol.
func (s *AssetService) Get(symbol string) (map[string]string, error) {
	byNetwork, err := s.reg.Asset(symbol)
	if err != nil {
		return nil, &AssetNotFoundError{Asset: symbol, Network: s.reg.CurrentNetwork}
	}
	return byNetwork, nil
}

// Address resolves the contract address of symbol on the current
// network. The registry already rejected malformed addresses at load,
// absence here means the asset is not deployed on this network.
func (s *AssetService) Address(symbol string) (common.Address, error) {
	byNetwork, err := s.reg.Asset(symbol)
	if err != nil {
		return common.Address{}, &AssetNotFoundError{Asset: symbol, Network: s.reg.CurrentNetwork}
	}
	hex, ok := byNetwork[s.reg.CurrentNetwork]
	if !ok {
		s.log.Warn("asset not deployed on current network", "asset", symbol, "network", s.reg.CurrentNetwork)
		return common.Address{}, &AssetNotFoundError{Asset: symbol, Network: s.reg.CurrentNetwork}
	}
	return common.HexToAddress(hex), nil
}
