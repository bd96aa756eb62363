package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
current_network: sepolia
native_asset: ETH
networks:
  mainnet: https://eth.example.com
  sepolia: https://sepolia.example.com
assets:
  USDC:
    mainnet: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
    sepolia: "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"
  DAI:
    mainnet: "0x6B175474E89094C44Da98b954EedeAC495271d0F"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	reg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "sepolia", reg.CurrentNetwork)
	assert.Equal(t, "ETH", reg.NativeAsset)
	assert.Equal(t, []string{"mainnet", "sepolia"}, reg.NetworkNames())
	assert.Equal(t, []string{"DAI", "USDC"}, reg.AssetSymbols())
	assert.True(t, reg.IsNative("ETH"))
	assert.False(t, reg.IsNative("USDC"))
	assert.False(t, reg.Offline())
	assert.Equal(t, "https://sepolia.example.com", reg.CurrentRPCURL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "current network unknown",
			content: `
current_network: goerli
native_asset: ETH
networks:
  mainnet: https://eth.example.com
`,
			wantErr: "current_network",
		},
		{
			name: "asset references unknown network",
			content: `
current_network: mainnet
native_asset: ETH
networks:
  mainnet: https://eth.example.com
assets:
  USDC:
    goerli: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
`,
			wantErr: "unknown network",
		},
		{
			name: "malformed address",
			content: `
current_network: mainnet
native_asset: ETH
networks:
  mainnet: https://eth.example.com
assets:
  USDC:
    mainnet: "0x1234"
`,
			wantErr: "malformed address",
		},
		{
			name: "empty networks",
			content: `
current_network: mainnet
native_asset: ETH
`,
			wantErr: "networks must not be empty",
		},
		{
			name: "empty native asset",
			content: `
current_network: mainnet
native_asset: ""
networks:
  mainnet: https://eth.example.com
`,
			wantErr: "native_asset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRPCURL(t *testing.T) {
	reg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	url, err := reg.RPCURL("mainnet")
	require.NoError(t, err)
	assert.Equal(t, "https://eth.example.com", url)

	_, err = reg.RPCURL("goerli")
	assert.Error(t, err)
}

func TestAssetReturnsCopy(t *testing.T) {
	reg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	first, err := reg.Asset("USDC")
	require.NoError(t, err)
	first["mainnet"] = "mutated"

	second, err := reg.Asset("USDC")
	require.NoError(t, err)
	assert.Equal(t, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", second["mainnet"])
}

func TestAssetUnknown(t *testing.T) {
	reg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	_, err = reg.Asset("WBTC")
	assert.Error(t, err)
}

func TestOfflineNetwork(t *testing.T) {
	reg, err := Load(writeConfig(t, `
current_network: TEST
native_asset: ETH
networks:
  TEST: ""
`))
	require.NoError(t, err)
	assert.True(t, reg.Offline())
}
