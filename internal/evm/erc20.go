package evm

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const erc20ABI = `[
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

var (
	erc20Once sync.Once
	erc20     abi.ABI
	erc20Err  error
)

func erc20Abi() (abi.ABI, error) {
	erc20Once.Do(func() {
		erc20, erc20Err = abi.JSON(strings.NewReader(erc20ABI))
	})
	return erc20, erc20Err
}

// PackTransfer builds transfer(address,uint256) calldata.
func PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	parsed, err := erc20Abi()
	if err != nil {
		return nil, errors.Wrap(err, "parse erc20 abi")
	}
	input, err := parsed.Pack("transfer", to, amount)
	if err != nil {
		return nil, errors.Wrap(err, "pack transfer")
	}
	return input, nil
}

// TokenBalance calls balanceOf(owner) on token.
func (c *Client) TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	if c.Offline() {
		return nil, ErrOfflineMode
	}
	parsed, err := erc20Abi()
	if err != nil {
		return nil, errors.Wrap(err, "parse erc20 abi")
	}
	input, err := parsed.Pack("balanceOf", owner)
	if err != nil {
		return nil, errors.Wrap(err, "pack balanceOf")
	}

	out, err := c.conn.CallContract(ctx, ethereum.CallMsg{To: &token, Data: input}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "call balanceOf on %s", token.Hex())
	}

	results, err := parsed.Unpack("balanceOf", out)
	if err != nil {
		return nil, errors.Wrap(err, "unpack balanceOf")
	}
	balance, ok := results[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected balanceOf return type")
	}
	return balance, nil
}
