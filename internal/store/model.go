package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletStatus string

const (
	WalletActive   WalletStatus = "active"
	WalletInactive WalletStatus = "inactive"
)

type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxCompleted TxStatus = "completed"
	TxFailed    TxStatus = "failed"
)

type Wallet struct {
	ID         uuid.UUID
	Address    string
	PrivateKey string
	Status     WalletStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type Transaction struct {
	ID          uuid.UUID
	TxHash      *string
	Asset       string
	FromAddress string
	ToAddress   string
	Amount      decimal.Decimal
	GasPrice    *int64
	GasLimit    *int64
	Nonce       *int64
	Status      TxStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
