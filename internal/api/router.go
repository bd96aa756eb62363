// Package api wires the REST surface of walletd.
package api

import (
	"github.com/ChainSafe/log15"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/evmlabs/walletd/internal/api/handler"
)

// Options tunes the router construction.
type Options struct {
	Metrics bool
}

// NewRouter builds the gin engine with all routes under /api.
func NewRouter(h *handler.Handler, logger log15.Logger, opts Options) *gin.Engine {
	g := gin.New()
	g.Use(gin.Recovery(), RequestLogger(logger), cors.Default())
	if opts.Metrics {
		g.Use(Metrics())
		g.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := g.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/info", h.Info)

	wallet := api.Group("/wallet")
	wallet.POST("", h.CreateWallets)
	wallet.GET("", h.ListWallets)
	wallet.GET("/:address", h.GetWallet)
	wallet.DELETE("/:address", h.DeleteWallet)
	wallet.GET("/:address/balance", h.Balance)
	wallet.GET("/:address/balance/:symbol", h.TokenBalance)

	tx := api.Group("/tx")
	tx.POST("", h.CreateTx)
	tx.GET("/:id", h.GetTx)
	tx.GET("/hash/:hash", h.GetTxByHash)
	tx.GET("/wallet/:address", h.ListTxs)

	assets := api.Group("/assets")
	assets.GET("", h.Assets)
	assets.GET("/native", h.NativeAsset)
	assets.GET("/:symbol", h.GetAsset)

	return g
}
