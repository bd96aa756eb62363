package service

import (
	"fmt"
)

type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid wallet address: %s", e.Address)
}

type WalletNotFoundError struct {
	Address string
}

func (e *WalletNotFoundError) Error() string {
	return fmt.Sprintf("wallet with address %s not found", e.Address)
}

type AssetNotFoundError struct {
	Asset   string
	Network string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset %s not found on network %s", e.Asset, e.Network)
}

type InvalidNetworkError struct {
	Network string
}

func (e *InvalidNetworkError) Error() string {
	return fmt.Sprintf("invalid network: %s", e.Network)
}

type InvalidCountError struct {
	Count int
	Max   int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("number of wallets must be between 1 and %d, got %d", e.Max, e.Count)
}

type InvalidPaginationError struct {
	Reason string
}

func (e *InvalidPaginationError) Error() string {
	return e.Reason
}

type InvalidAmountError struct {
	Amount string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: %s", e.Amount)
}

// BatchError reports a partially failed batch, Succeeded wallets were
// persisted before the first failure cancelled the rest.
type BatchError struct {
	Op        string
	Succeeded int
	Err       error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %s failed after %d succeeded: %v", e.Op, e.Succeeded, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
