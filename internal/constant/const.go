package constant

import (
	"errors"
	"time"
)

const (
	TxRetryInterval = time.Second * 5 // TxRetryInterval Time between polling a pending tx
	TxRetryLimit    = 60              // TxRetryLimit Maximum number of receipt polls before giving up
	HttpTimeOut     = 10 * time.Second
	Agent           = "walletd-go"
)

const (
	TransferGasLimit = uint64(21000) // native value transfer
	Erc20GasLimit    = uint64(90000) // fallback when EstimateGas fails
)

const (
	MaxBatchWallets = 1000
	MaxPageLimit    = 1000
	DefaultLimit    = 10
)

var (
	ErrNonceTooLow   = errors.New("nonce too low")
	ErrTxUnderpriced = errors.New("replacement transaction underpriced")
)
