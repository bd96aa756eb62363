package evm

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

func TestNewAccount(t *testing.T) {
	acct, err := NewAccount()
	require.NoError(t, err)

	assert.True(t, bip39.IsMnemonicValid(acct.Mnemonic))
	assert.Len(t, strings.Fields(acct.Mnemonic), 24)
	assert.NotEmpty(t, acct.PublicKey)
	require.NotNil(t, acct.Keypair())

	// private key hex must round-trip to the same address
	pk, err := crypto.HexToECDSA(acct.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, acct.Address, crypto.PubkeyToAddress(pk.PublicKey))
}

func TestNewAccountUnique(t *testing.T) {
	a, err := NewAccount()
	require.NoError(t, err)
	b, err := NewAccount()
	require.NoError(t, err)

	assert.NotEqual(t, a.Address, b.Address)
	assert.NotEqual(t, a.Mnemonic, b.Mnemonic)
}

func TestFromMnemonicDeterministic(t *testing.T) {
	acct, err := NewAccount()
	require.NoError(t, err)

	restored, err := FromMnemonic(acct.Mnemonic)
	require.NoError(t, err)

	assert.Equal(t, acct.Address, restored.Address)
	assert.Equal(t, acct.PrivateKey, restored.PrivateKey)
}

func TestFromMnemonicInvalid(t *testing.T) {
	_, err := FromMnemonic("definitely not a mnemonic phrase")
	assert.Error(t, err)
}
