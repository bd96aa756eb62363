package keystore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmlabs/walletd/internal/evm"
)

func TestEncryptAndSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvPassword, "test-password")
	dir := t.TempDir()

	acct, err := evm.NewAccount()
	require.NoError(t, err)

	file, err := EncryptAndSave(acct.Keypair(), dir, []byte("test-password"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, acct.Keypair().Address()+".key"), file)

	kp, err := KeypairFromAddress(acct.Keypair().Address(), dir)
	require.NoError(t, err)
	assert.Equal(t, acct.Keypair().Address(), kp.Address())
}

func TestKeypairFromAddressMissing(t *testing.T) {
	_, err := KeypairFromAddress("0x0000000000000000000000000000000000000000", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key file not found")
}
