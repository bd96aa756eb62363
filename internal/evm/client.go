package evm

import (
	"context"
	"math/big"

	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrOfflineMode is returned by chain queries when the client was built
// for the TEST network and never dialed an endpoint.
var ErrOfflineMode = errors.New("evm: client is in offline mode")

// offlineChainID is the chain id used for signing in offline mode.
var offlineChainID = big.NewInt(1337)

// Client wraps an ethclient connection to the selected network. In
// offline mode key generation and signing still work, everything that
// needs the node returns ErrOfflineMode.
type Client struct {
	conn    *ethclient.Client
	chainID *big.Int
	log     log15.Logger
}

// Dial connects to endpoint and resolves its chain id. An empty offline
// client is returned when offline is set.
func Dial(ctx context.Context, endpoint string, offline bool, logger log15.Logger) (*Client, error) {
	if offline {
		logger.Info("evm client running in offline mode")
		return &Client{chainID: offlineChainID, log: logger}, nil
	}

	conn, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", endpoint)
	}
	chainID, err := conn.ChainID(ctx)
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "query chain id")
	}

	logger.Info("connected to evm endpoint", "chainId", chainID)
	return &Client{conn: conn, chainID: chainID, log: logger}, nil
}

func (c *Client) Offline() bool {
	return c.conn == nil
}

func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// Balance returns the native balance of address in wei.
func (c *Client) Balance(ctx context.Context, address common.Address) (*big.Int, error) {
	if c.Offline() {
		return nil, ErrOfflineMode
	}
	wei, err := c.conn.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "balance of %s", address.Hex())
	}
	return wei, nil
}

// WeiToEther converts a wei amount to its ether representation.
func WeiToEther(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -18)
}

// EtherToWei converts a decimal token amount to base units.
func EtherToWei(amount decimal.Decimal) *big.Int {
	return amount.Shift(18).Truncate(0).BigInt()
}
