// Package service holds the use cases of walletd. Services accept the
// narrow store/chain interfaces below so handlers and tests can swap
// the postgres and RPC implementations out.
package service

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evmlabs/walletd/internal/evm"
	"github.com/evmlabs/walletd/internal/store"
)

type WalletStore interface {
	Create(ctx context.Context, address, privateKey string) (*store.Wallet, error)
	GetByAddress(ctx context.Context, address string) (*store.Wallet, error)
	List(ctx context.Context, offset, limit int) ([]*store.Wallet, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, address string) (*store.Wallet, error)
}

type TxStore interface {
	Create(ctx context.Context, asset, from, to string, amount decimal.Decimal) (*store.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*store.Transaction, error)
	GetByHash(ctx context.Context, hash string) (*store.Transaction, error)
	ListByWallet(ctx context.Context, address string, offset, limit int) ([]*store.Transaction, error)
	CountByWallet(ctx context.Context, address string) (int64, error)
	MarkSent(ctx context.Context, id uuid.UUID, hash string, gasPrice, gasLimit, nonce int64) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status store.TxStatus) error
}

// Chain is the slice of the EVM client the services use.
type Chain interface {
	Balance(ctx context.Context, address common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error)
	SendNative(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, amount *big.Int) (*evm.SentTx, error)
	SendERC20(ctx context.Context, key *ecdsa.PrivateKey, token, to common.Address, amount *big.Int) (*evm.SentTx, error)
	WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// BalanceCache is the optional redis-backed balance cache.
type BalanceCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

func validAddress(address string) error {
	if address == "" || !common.IsHexAddress(address) {
		return &InvalidAddressError{Address: address}
	}
	return nil
}
