package service

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetAll(t *testing.T) {
	svc := NewAsset(testRegistry(), testLogger())
	assert.Equal(t, []string{"DAI", "USDC"}, svc.All())
}

func TestAssetNative(t *testing.T) {
	svc := NewAsset(testRegistry(), testLogger())
	assert.Equal(t, "ETH", svc.Native())
	assert.True(t, svc.IsNative("ETH"))
	assert.False(t, svc.IsNative("USDC"))
}

func TestAssetGet(t *testing.T) {
	svc := NewAsset(testRegistry(), testLogger())

	addrs, err := svc.Get("USDC")
	require.NoError(t, err)
	assert.Equal(t, usdcSepolia, addrs["sepolia"])

	var notFound *AssetNotFoundError
	_, err = svc.Get("WBTC")
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "WBTC", notFound.Asset)
	assert.Equal(t, "sepolia", notFound.Network)
}

func TestAssetAddress(t *testing.T) {
	svc := NewAsset(testRegistry(), testLogger())

	addr, err := svc.Address("USDC")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(usdcSepolia), addr)

	// DAI exists but has no sepolia deployment
	var notFound *AssetNotFoundError
	_, err = svc.Address("DAI")
	assert.True(t, errors.As(err, &notFound))

	_, err = svc.Address("WBTC")
	assert.True(t, errors.As(err, &notFound))
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		limit    int
		wantNext *int
		wantPrev *int
	}{
		{"single page", 5, 1, 10, nil, nil},
		{"first of many", 25, 1, 10, intp(2), nil},
		{"middle", 25, 2, 10, intp(3), intp(1)},
		{"last", 25, 3, 10, nil, intp(2)},
		{"past the end", 25, 9, 10, nil, intp(8)},
		{"empty", 0, 1, 10, nil, nil},
		{"exact boundary", 20, 2, 10, nil, intp(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginate(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.wantNext, p.NextPage)
			assert.Equal(t, tt.wantPrev, p.PrevPage)
		})
	}
}

func intp(v int) *int { return &v }
