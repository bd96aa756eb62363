package store

import "errors"

var (
	ErrWalletNotFound = errors.New("wallet not found")
	ErrTxNotFound     = errors.New("transaction not found")

	// ErrNotReady is surfaced when the pool is closed or was never
	// initialized. Handlers answer 503 instead of 500.
	ErrNotReady = errors.New("database not available")
)
