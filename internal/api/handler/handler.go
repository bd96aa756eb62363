// Package handler binds the walletd use cases to gin routes.
package handler

import (
	"context"
	"net/http"

	"github.com/ChainSafe/log15"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/evmlabs/walletd/internal/service"
	"github.com/evmlabs/walletd/internal/store"
	"github.com/evmlabs/walletd/internal/stream"
)

// HealthChecker is what the health route needs from the store.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

// Info is the static service metadata exposed on /api/info.
type Info struct {
	Title       string
	Description string
	Version     string
	Env         string
	Network     string
}

type Handler struct {
	db      HealthChecker
	wallets *service.WalletService
	txs     *service.TxService
	assets  *service.AssetService
	info    Info
	log     log15.Logger
}

func New(db HealthChecker, wallets *service.WalletService, txs *service.TxService,
	assets *service.AssetService, info Info, logger log15.Logger) *Handler {
	return &Handler{db: db, wallets: wallets, txs: txs, assets: assets, info: info, log: logger}
}

// abortErr maps a domain error onto the HTTP contract: validation
// errors are 400, unknown entities 404, an unavailable store 503 and
// everything else a generic 500.
func (h *Handler) abortErr(c *gin.Context, err error) {
	var (
		invalidAddr   *service.InvalidAddressError
		invalidPage   *service.InvalidPaginationError
		invalidCount  *service.InvalidCountError
		invalidAmount *service.InvalidAmountError
		walletMissing *service.WalletNotFoundError
		assetMissing  *service.AssetNotFoundError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &invalidAddr), errors.As(err, &invalidPage),
		errors.As(err, &invalidCount), errors.As(err, &invalidAmount):
		status = http.StatusBadRequest
	case errors.As(err, &walletMissing), errors.As(err, &assetMissing),
		errors.Is(err, store.ErrWalletNotFound), errors.Is(err, store.ErrTxNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrNotReady):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, stream.ErrResp{Detail: err.Error()})
}
