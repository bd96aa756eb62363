package evm

import (
	"encoding/hex"

	"github.com/ChainSafe/chainbridge-utils/crypto/secp256k1"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// Account is a freshly generated key. The mnemonic is handed to the
// caller exactly once and never stored.
type Account struct {
	Address    common.Address
	PrivateKey string // hex, no 0x prefix
	PublicKey  string
	Mnemonic   string

	kp *secp256k1.Keypair
}

// NewAccount generates a secp256k1 key from fresh bip39 entropy.
func NewAccount() (*Account, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return nil, errors.Wrap(err, "generate entropy")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, errors.Wrap(err, "generate mnemonic")
	}
	return FromMnemonic(mnemonic)
}

// FromMnemonic derives the account for a bip39 mnemonic. The first 32
// seed bytes become the secp256k1 scalar, so the derivation stays
// reproducible for a given phrase.
func FromMnemonic(mnemonic string) (*Account, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")

	priv, err := crypto.ToECDSA(seed[:32])
	if err != nil {
		return nil, errors.Wrap(err, "derive private key")
	}
	kp := secp256k1.NewKeypair(*priv)

	return &Account{
		Address:    kp.CommonAddress(),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(priv)),
		PublicKey:  kp.PublicKey(),
		Mnemonic:   mnemonic,
		kp:         kp,
	}, nil
}

// Keypair exposes the underlying keystore keypair.
func (a *Account) Keypair() *secp256k1.Keypair {
	return a.kp
}
