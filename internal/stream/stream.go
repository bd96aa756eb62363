package stream

import (
	"time"

	"github.com/evmlabs/walletd/internal/service"
	"github.com/evmlabs/walletd/internal/store"
)

// ErrResp is the error envelope, {"detail": ...} on every failure path.
type ErrResp struct {
	Detail string `json:"detail"`
}

type HealthResp struct {
	Message string `json:"message"`
}

type InfoResp struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Env         string `json:"env"`
	Network     string `json:"network"`
}

type WalletResp struct {
	ID         string     `json:"id"`
	Address    string     `json:"address"`
	PrivateKey string     `json:"private_key"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

type WalletListResp struct {
	Wallets    []WalletResp       `json:"wallets"`
	Pagination service.Pagination `json:"pagination"`
}

type BalanceResp struct {
	Address string `json:"address"`
	Wei     string `json:"wei"`
	Ether   string `json:"ether"`
}

type TokenBalanceResp struct {
	Address string `json:"address"`
	Asset   string `json:"asset"`
	Units   string `json:"units"`
	Amount  string `json:"amount"`
}

type CreateTxReq struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Asset  string `json:"asset" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type TxResp struct {
	ID          string    `json:"id"`
	TxHash      *string   `json:"tx_hash"`
	Asset       string    `json:"asset"`
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Amount      string    `json:"amount"`
	GasPrice    *int64    `json:"gas_price"`
	GasLimit    *int64    `json:"gas_limit"`
	Nonce       *int64    `json:"nonce"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TxListResp struct {
	Transactions []TxResp           `json:"transactions"`
	Pagination   service.Pagination `json:"pagination"`
}

type AssetListResp struct {
	Assets []string `json:"assets"`
}

type NativeAssetResp struct {
	Asset string `json:"asset"`
}

type AssetResp struct {
	Asset     string            `json:"asset"`
	Addresses map[string]string `json:"addresses"`
}

func NewWalletResp(w *store.Wallet) WalletResp {
	return WalletResp{
		ID:         w.ID.String(),
		Address:    w.Address,
		PrivateKey: w.PrivateKey,
		Status:     string(w.Status),
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
		DeletedAt:  w.DeletedAt,
	}
}

func NewWalletListResp(wallets []*store.Wallet, p service.Pagination) WalletListResp {
	resp := WalletListResp{Wallets: make([]WalletResp, 0, len(wallets)), Pagination: p}
	for _, w := range wallets {
		resp.Wallets = append(resp.Wallets, NewWalletResp(w))
	}
	return resp
}

func NewTxResp(t *store.Transaction) TxResp {
	return TxResp{
		ID:          t.ID.String(),
		TxHash:      t.TxHash,
		Asset:       t.Asset,
		FromAddress: t.FromAddress,
		ToAddress:   t.ToAddress,
		Amount:      t.Amount.String(),
		GasPrice:    t.GasPrice,
		GasLimit:    t.GasLimit,
		Nonce:       t.Nonce,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTxListResp(txs []*store.Transaction, p service.Pagination) TxListResp {
	resp := TxListResp{Transactions: make([]TxResp, 0, len(txs)), Pagination: p}
	for _, t := range txs {
		resp.Transactions = append(resp.Transactions, NewTxResp(t))
	}
	return resp
}
