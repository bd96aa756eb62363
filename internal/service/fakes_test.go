package service

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evmlabs/walletd/internal/evm"
	"github.com/evmlabs/walletd/internal/store"
)

type fakeWalletStore struct {
	mu      sync.Mutex
	wallets map[string]*store.Wallet
	order   []string

	createErr error
	listErr   error
}

func newFakeWalletStore() *fakeWalletStore {
	return &fakeWalletStore{wallets: map[string]*store.Wallet{}}
}

func (f *fakeWalletStore) Create(_ context.Context, address, privateKey string) (*store.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	w := &store.Wallet{
		ID:         uuid.New(),
		Address:    address,
		PrivateKey: privateKey,
		Status:     store.WalletActive,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	f.wallets[address] = w
	f.order = append(f.order, address)
	return w, nil
}

func (f *fakeWalletStore) GetByAddress(_ context.Context, address string) (*store.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wallets[address]
	if !ok || w.Status != store.WalletActive {
		return nil, store.ErrWalletNotFound
	}
	return w, nil
}

func (f *fakeWalletStore) List(_ context.Context, offset, limit int) ([]*store.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	active := make([]string, 0, len(f.order))
	for _, addr := range f.order {
		if f.wallets[addr].Status == store.WalletActive {
			active = append(active, addr)
		}
	}
	sort.Strings(active)
	out := []*store.Wallet{}
	for i := offset; i < len(active) && i < offset+limit; i++ {
		out = append(out, f.wallets[active[i]])
	}
	return out, nil
}

func (f *fakeWalletStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, w := range f.wallets {
		if w.Status == store.WalletActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeWalletStore) Delete(_ context.Context, address string) (*store.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wallets[address]
	if !ok || w.Status != store.WalletActive {
		return nil, store.ErrWalletNotFound
	}
	now := time.Now()
	w.Status = store.WalletInactive
	w.DeletedAt = &now
	return w, nil
}

type fakeTxStore struct {
	mu  sync.Mutex
	txs map[uuid.UUID]*store.Transaction
}

func newFakeTxStore() *fakeTxStore {
	return &fakeTxStore{txs: map[uuid.UUID]*store.Transaction{}}
}

func (f *fakeTxStore) Create(_ context.Context, asset, from, to string, amount decimal.Decimal) (*store.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &store.Transaction{
		ID:          uuid.New(),
		Asset:       asset,
		FromAddress: from,
		ToAddress:   to,
		Amount:      amount,
		Status:      store.TxPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.txs[t.ID] = t
	return t, nil
}

func (f *fakeTxStore) GetByID(_ context.Context, id uuid.UUID) (*store.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.txs[id]
	if !ok {
		return nil, store.ErrTxNotFound
	}
	return t, nil
}

func (f *fakeTxStore) GetByHash(_ context.Context, hash string) (*store.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.txs {
		if t.TxHash != nil && *t.TxHash == hash {
			return t, nil
		}
	}
	return nil, store.ErrTxNotFound
}

func (f *fakeTxStore) ListByWallet(_ context.Context, address string, offset, limit int) ([]*store.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []*store.Transaction{}
	for _, t := range f.txs {
		if t.FromAddress == address {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	out := []*store.Transaction{}
	for i := offset; i < len(matched) && i < offset+limit; i++ {
		out = append(out, matched[i])
	}
	return out, nil
}

func (f *fakeTxStore) CountByWallet(_ context.Context, address string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, t := range f.txs {
		if t.FromAddress == address {
			n++
		}
	}
	return n, nil
}

func (f *fakeTxStore) MarkSent(_ context.Context, id uuid.UUID, hash string, gasPrice, gasLimit, nonce int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.txs[id]
	if !ok {
		return store.ErrTxNotFound
	}
	t.TxHash = &hash
	t.GasPrice = &gasPrice
	t.GasLimit = &gasLimit
	t.Nonce = &nonce
	return nil
}

func (f *fakeTxStore) UpdateStatus(_ context.Context, id uuid.UUID, status store.TxStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.txs[id]
	if !ok {
		return store.ErrTxNotFound
	}
	t.Status = status
	return nil
}

func (f *fakeTxStore) status(id uuid.UUID) store.TxStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.txs[id].Status
}

type fakeChain struct {
	mu sync.Mutex

	balance      *big.Int
	tokenBalance *big.Int
	tokenCalls   int

	sent          *evm.SentTx
	sendErr       error
	nativeCalls   int
	erc20Calls    int
	lastToken     common.Address
	lastTo        common.Address
	lastAmount    *big.Int
	receiptStatus uint64
	waitErr       error
}

func (f *fakeChain) Balance(context.Context, common.Address) (*big.Int, error) {
	if f.balance == nil {
		return nil, evm.ErrOfflineMode
	}
	return f.balance, nil
}

func (f *fakeChain) TokenBalance(_ context.Context, token, _ common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokenCalls++
	f.lastToken = token
	if f.tokenBalance == nil {
		return nil, evm.ErrOfflineMode
	}
	return f.tokenBalance, nil
}

func (f *fakeChain) SendNative(_ context.Context, _ *ecdsa.PrivateKey, to common.Address, amount *big.Int) (*evm.SentTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nativeCalls++
	f.lastTo = to
	f.lastAmount = amount
	return f.sent, f.sendErr
}

func (f *fakeChain) SendERC20(_ context.Context, _ *ecdsa.PrivateKey, token, to common.Address, amount *big.Int) (*evm.SentTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.erc20Calls++
	f.lastToken = token
	f.lastTo = to
	f.lastAmount = amount
	return f.sent, f.sendErr
}

func (f *fakeChain) WaitMined(context.Context, common.Hash) (*types.Receipt, error) {
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	return &types.Receipt{Status: f.receiptStatus}, nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if ok {
		f.hits++
	}
	return v, ok
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.data[key] = value
}
