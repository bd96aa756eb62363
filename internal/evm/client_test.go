package evm

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offlineClient(t *testing.T) *Client {
	t.Helper()
	c, err := Dial(context.Background(), "", true, log15.New("test", "evm"))
	require.NoError(t, err)
	return c
}

func TestOfflineClient(t *testing.T) {
	c := offlineClient(t)
	assert.True(t, c.Offline())
	assert.Equal(t, offlineChainID, c.ChainID())

	_, err := c.Balance(context.Background(), common.Address{})
	assert.ErrorIs(t, err, ErrOfflineMode)
	_, err = c.Receipt(context.Background(), common.Hash{})
	assert.ErrorIs(t, err, ErrOfflineMode)
	_, err = c.SendNative(context.Background(), nil, common.Address{}, big.NewInt(1))
	assert.ErrorIs(t, err, ErrOfflineMode)
	_, err = c.SendERC20(context.Background(), nil, common.Address{}, common.Address{}, big.NewInt(1))
	assert.ErrorIs(t, err, ErrOfflineMode)
}

func TestSignTxOffline(t *testing.T) {
	c := offlineClient(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	to := common.HexToAddress("0x1111111111111111111111111111111111111111")

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    7,
		To:       &to,
		Value:    big.NewInt(1),
		Gas:      21000,
		GasPrice: big.NewInt(2),
	})
	signed, err := c.SignTx(tx, key)
	require.NoError(t, err)

	// EIP-155 signature must recover to the signing address
	sender, err := types.Sender(types.NewEIP155Signer(c.ChainID()), signed)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), sender)
	assert.Equal(t, c.ChainID(), signed.ChainId())
}

func TestWeiToEther(t *testing.T) {
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)
	assert.True(t, WeiToEther(wei).Equal(decimal.RequireFromString("1.5")))
	assert.True(t, WeiToEther(big.NewInt(0)).IsZero())
}

func TestEtherToWei(t *testing.T) {
	wei := EtherToWei(decimal.RequireFromString("1.5"))
	assert.Equal(t, "1500000000000000000", wei.String())

	// sub-wei precision is truncated, never rounded up
	wei = EtherToWei(decimal.RequireFromString("0.0000000000000000019"))
	assert.Equal(t, "1", wei.String())
}

func TestPackTransfer(t *testing.T) {
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	input, err := PackTransfer(to, big.NewInt(1000))
	require.NoError(t, err)

	// transfer(address,uint256) selector
	assert.Equal(t, "a9059cbb", hex.EncodeToString(input[:4]))
	require.Len(t, input, 4+32+32)
	assert.Equal(t, to.Bytes(), input[4+12:4+32])
	assert.Equal(t, big.NewInt(1000), new(big.Int).SetBytes(input[4+32:]))
}
