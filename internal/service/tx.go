package service

import (
	"context"
	"strings"
	"time"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/evmlabs/walletd/internal/evm"
	"github.com/evmlabs/walletd/internal/store"
)

// confirmTimeout bounds the background receipt wait per transaction.
const confirmTimeout = 10 * time.Minute

// CreateTxReq is a validated transfer request.
type CreateTxReq struct {
	From   string
	To     string
	Asset  string
	Amount decimal.Decimal
}

// TxPage is one page of transactions plus its pagination envelope.
type TxPage struct {
	Transactions []*store.Transaction
	Pagination   Pagination
}

// TxService implements the transaction use cases. Rows are recorded
// before broadcast so a crash never loses a sent transaction.
type TxService struct {
	txs     TxStore
	wallets WalletStore
	chain   Chain
	assets  *AssetService
	log     log15.Logger
}

func NewTx(txs TxStore, wallets WalletStore, chain Chain, assets *AssetService, logger log15.Logger) *TxService {
	return &TxService{txs: txs, wallets: wallets, chain: chain, assets: assets, log: logger}
}

// Create records, signs and broadcasts a transfer. The returned row is
// pending, a background poll flips it to completed or failed once the
// receipt status is known.
func (s *TxService) Create(ctx context.Context, req CreateTxReq) (*store.Transaction, error) {
	if err := validAddress(req.From); err != nil {
		return nil, err
	}
	if err := validAddress(req.To); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, &InvalidAmountError{Amount: req.Amount.String()}
	}

	native := s.assets.IsNative(req.Asset)
	var token common.Address
	if !native {
		addr, err := s.assets.Address(req.Asset)
		if err != nil {
			return nil, err
		}
		token = addr
	}

	wallet, err := s.wallets.GetByAddress(ctx, req.From)
	if err == store.ErrWalletNotFound {
		return nil, &WalletNotFoundError{Address: req.From}
	}
	if err != nil {
		return nil, err
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(wallet.PrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "decode wallet key")
	}

	row, err := s.txs.Create(ctx, req.Asset, req.From, req.To, req.Amount)
	if err != nil {
		return nil, err
	}

	wei := evm.EtherToWei(req.Amount)
	to := common.HexToAddress(req.To)

	var sent *evm.SentTx
	if native {
		sent, err = s.chain.SendNative(ctx, key, to, wei)
	} else {
		sent, err = s.chain.SendERC20(ctx, key, token, to, wei)
	}
	if err != nil {
		s.log.Error("broadcast failed", "tx", row.ID, "asset", req.Asset, "err", err)
		if dbErr := s.txs.UpdateStatus(ctx, row.ID, store.TxFailed); dbErr != nil {
			s.log.Error("failed to mark transaction failed", "tx", row.ID, "err", dbErr)
		}
		return nil, err
	}

	err = s.txs.MarkSent(ctx, row.ID, sent.Hash.Hex(),
		sent.GasPrice.Int64(), int64(sent.GasLimit), int64(sent.Nonce))
	if err != nil {
		return nil, err
	}
	s.log.Info("transaction broadcast", "tx", row.ID, "hash", sent.Hash, "asset", req.Asset)

	go s.confirm(row.ID, sent.Hash)

	return s.txs.GetByID(ctx, row.ID)
}

// confirm waits for the receipt off the request path.
func (s *TxService) confirm(id uuid.UUID, hash common.Hash) {
	ctx, cancel := context.WithTimeout(context.Background(), confirmTimeout)
	defer cancel()

	receipt, err := s.chain.WaitMined(ctx, hash)
	if err != nil {
		s.log.Warn("receipt wait failed", "tx", id, "hash", hash, "err", err)
		return
	}

	status := store.TxCompleted
	if receipt.Status == 0 {
		status = store.TxFailed
	}
	if err = s.txs.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("failed to update transaction status", "tx", id, "err", err)
		return
	}
	s.log.Info("transaction confirmed", "tx", id, "hash", hash, "status", status)
}

func (s *TxService) Get(ctx context.Context, id string) (*store.Transaction, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(store.ErrTxNotFound, "invalid transaction id %q", id)
	}
	return s.txs.GetByID(ctx, parsed)
}

func (s *TxService) GetByHash(ctx context.Context, hash string) (*store.Transaction, error) {
	if hash == "" {
		return nil, errors.Wrap(store.ErrTxNotFound, "empty transaction hash")
	}
	return s.txs.GetByHash(ctx, hash)
}

// ListByWallet pages through a wallet's outgoing transactions.
func (s *TxService) ListByWallet(ctx context.Context, address string, page, limit int) (*TxPage, error) {
	if err := validAddress(address); err != nil {
		return nil, err
	}
	if err := validatePagination(page, limit); err != nil {
		return nil, err
	}

	var (
		txs   []*store.Transaction
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = s.txs.ListByWallet(gctx, address, (page-1)*limit, limit)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.txs.CountByWallet(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TxPage{Transactions: txs, Pagination: paginate(total, page, limit)}, nil
}
