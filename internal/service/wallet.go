package service

import (
	"context"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/evmlabs/walletd/internal/constant"
	"github.com/evmlabs/walletd/internal/evm"
	"github.com/evmlabs/walletd/internal/store"
)

const (
	createConcurrency = 16
	balanceCacheTTL   = 30 * time.Second
)

// WalletService implements the wallet use cases.
type WalletService struct {
	wallets WalletStore
	chain   Chain
	cache   BalanceCache
	assets  *AssetService
	network string
	log     log15.Logger
}

// WalletPage is one page of wallets plus its pagination envelope.
type WalletPage struct {
	Wallets    []*store.Wallet
	Pagination Pagination
}

// NativeBalance carries both representations of a native balance.
type NativeBalance struct {
	Address string
	Wei     *big.Int
	Ether   decimal.Decimal
}

// TokenBalance is an asset balance in base units plus its 18-decimal
// representation.
type TokenBalance struct {
	Address string
	Asset   string
	Units   *big.Int
	Amount  decimal.Decimal
}

func NewWallet(wallets WalletStore, chain Chain, cache BalanceCache, assets *AssetService, network string, logger log15.Logger) *WalletService {
	return &WalletService{wallets: wallets, chain: chain, cache: cache, assets: assets, network: network, log: logger}
}

// Create generates and persists n wallets concurrently. The first
// failure cancels the remaining work and is reported as a BatchError
// carrying the number of wallets that made it into the store.
func (s *WalletService) Create(ctx context.Context, n int) ([]*store.Wallet, error) {
	if n < 1 || n > constant.MaxBatchWallets {
		return nil, &InvalidCountError{Count: n, Max: constant.MaxBatchWallets}
	}
	s.log.Info("creating wallets", "count", n)

	var succeeded int64
	results := make([]*store.Wallet, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(createConcurrency)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			acct, err := evm.NewAccount()
			if err != nil {
				return err
			}
			w, err := s.wallets.Create(gctx, acct.Address.Hex(), acct.PrivateKey)
			if err != nil {
				return err
			}
			atomic.AddInt64(&succeeded, 1)
			results[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("batch wallet creation failed", "succeeded", atomic.LoadInt64(&succeeded), "err", err)
		return nil, &BatchError{Op: "wallet creation", Succeeded: int(atomic.LoadInt64(&succeeded)), Err: err}
	}

	s.log.Info("created wallets", "count", n)
	return results, nil
}

// List runs the page query and the total count concurrently.
func (s *WalletService) List(ctx context.Context, page, limit int) (*WalletPage, error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, err
	}

	var (
		wallets []*store.Wallet
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		wallets, err = s.wallets.List(gctx, (page-1)*limit, limit)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.wallets.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("listed wallets", "page", page, "returned", len(wallets), "total", total)
	return &WalletPage{Wallets: wallets, Pagination: paginate(total, page, limit)}, nil
}

func (s *WalletService) Get(ctx context.Context, address string) (*store.Wallet, error) {
	if err := validAddress(address); err != nil {
		return nil, err
	}
	w, err := s.wallets.GetByAddress(ctx, address)
	if err == store.ErrWalletNotFound {
		return nil, &WalletNotFoundError{Address: address}
	}
	return w, err
}

func (s *WalletService) Delete(ctx context.Context, address string) (*store.Wallet, error) {
	if err := validAddress(address); err != nil {
		return nil, err
	}
	s.log.Info("deleting wallet", "address", address)

	w, err := s.wallets.Delete(ctx, address)
	if err == store.ErrWalletNotFound {
		return nil, &WalletNotFoundError{Address: address}
	}
	return w, err
}

// Balance fetches the native balance, served from the cache when a
// fresh entry exists. Cache failures fall through to the RPC path.
func (s *WalletService) Balance(ctx context.Context, address string) (*NativeBalance, error) {
	if err := validAddress(address); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("walletd:balance:%s:%s", s.network, address)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			if wei, ok := new(big.Int).SetString(cached, 10); ok {
				return &NativeBalance{Address: address, Wei: wei, Ether: evm.WeiToEther(wei)}, nil
			}
		}
	}

	wei, err := s.chain.Balance(ctx, common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, wei.String(), balanceCacheTTL)
	}
	return &NativeBalance{Address: address, Wei: wei, Ether: evm.WeiToEther(wei)}, nil
}

// TokenBalance reads the balance of symbol on the current network via
// the token's balanceOf. The native symbol resolves through Balance.
func (s *WalletService) TokenBalance(ctx context.Context, address, symbol string) (*TokenBalance, error) {
	if err := validAddress(address); err != nil {
		return nil, err
	}
	if s.assets.IsNative(symbol) {
		b, err := s.Balance(ctx, address)
		if err != nil {
			return nil, err
		}
		return &TokenBalance{Address: address, Asset: symbol, Units: b.Wei, Amount: b.Ether}, nil
	}

	token, err := s.assets.Address(symbol)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("walletd:balance:%s:%s:%s", s.network, symbol, address)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			if units, ok := new(big.Int).SetString(cached, 10); ok {
				return &TokenBalance{Address: address, Asset: symbol, Units: units, Amount: evm.WeiToEther(units)}, nil
			}
		}
	}

	units, err := s.chain.TokenBalance(ctx, token, common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, units.String(), balanceCacheTTL)
	}
	return &TokenBalance{Address: address, Asset: symbol, Units: units, Amount: evm.WeiToEther(units)}, nil
}
