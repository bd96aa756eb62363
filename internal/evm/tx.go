package evm

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/evmlabs/walletd/internal/constant"
)

// ErrReceiptNotFound is returned while a broadcast tx is not yet mined.
var ErrReceiptNotFound = errors.New("evm: transaction receipt not found")

// SentTx is the broadcast result recorded next to the transaction row.
type SentTx struct {
	Hash     common.Hash
	GasPrice *big.Int
	GasLimit uint64
	Nonce    uint64
}

// SignTx signs with the client's chain id, EIP-155 replay protection.
func (c *Client) SignTx(tx *types.Transaction, key *ecdsa.PrivateKey) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.NewEIP155Signer(c.chainID), key)
	if err != nil {
		return nil, errors.Wrap(err, "sign transaction")
	}
	return signed, nil
}

// SendNative broadcasts a plain value transfer.
func (c *Client) SendNative(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, amount *big.Int) (*SentTx, error) {
	if c.Offline() {
		return nil, ErrOfflineMode
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	nonce, err := c.conn.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, errors.Wrap(err, "pending nonce")
	}
	gasPrice, err := c.conn.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "suggest gas price")
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    amount,
		Gas:      constant.TransferGasLimit,
		GasPrice: gasPrice,
	})
	return c.broadcast(ctx, tx, key, gasPrice, nonce)
}

// SendERC20 broadcasts a transfer(address,uint256) call against token.
func (c *Client) SendERC20(ctx context.Context, key *ecdsa.PrivateKey, token, to common.Address, amount *big.Int) (*SentTx, error) {
	if c.Offline() {
		return nil, ErrOfflineMode
	}

	input, err := PackTransfer(to, amount)
	if err != nil {
		return nil, err
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	nonce, err := c.conn.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, errors.Wrap(err, "pending nonce")
	}
	gasPrice, err := c.conn.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "suggest gas price")
	}

	gasLimit, err := c.conn.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &token, Data: input})
	if err != nil {
		c.log.Warn("estimate gas failed, using fallback", "token", token.Hex(), "err", err)
		gasLimit = constant.Erc20GasLimit
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &token,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     input,
	})
	return c.broadcast(ctx, tx, key, gasPrice, nonce)
}

func (c *Client) broadcast(ctx context.Context, tx *types.Transaction, key *ecdsa.PrivateKey, gasPrice *big.Int, nonce uint64) (*SentTx, error) {
	signed, err := c.SignTx(tx, key)
	if err != nil {
		return nil, err
	}
	if err = c.conn.SendTransaction(ctx, signed); err != nil {
		if strings.Contains(err.Error(), constant.ErrNonceTooLow.Error()) ||
			strings.Contains(err.Error(), constant.ErrTxUnderpriced.Error()) {
			c.log.Warn("nonce conflict on broadcast", "nonce", nonce, "err", err)
		}
		return nil, errors.Wrap(err, "send transaction")
	}

	c.log.Debug("transaction broadcast", "hash", signed.Hash(), "nonce", nonce)
	return &SentTx{
		Hash:     signed.Hash(),
		GasPrice: gasPrice,
		GasLimit: signed.Gas(),
		Nonce:    nonce,
	}, nil
}

// Receipt fetches the receipt of hash if it is already mined.
func (c *Client) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if c.Offline() {
		return nil, ErrOfflineMode
	}
	receipt, err := c.conn.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "transaction receipt")
	}
	return receipt, nil
}

// WaitMined polls for the receipt until it appears, the retry budget
// runs out or ctx is done.
func (c *Client) WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if c.Offline() {
		return nil, ErrOfflineMode
	}

	for i := 0; i < constant.TxRetryLimit; i++ {
		receipt, err := c.Receipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ErrReceiptNotFound) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(constant.TxRetryInterval):
		}
	}
	return nil, errors.Wrapf(ErrReceiptNotFound, "gave up waiting for %s", hash.Hex())
}
