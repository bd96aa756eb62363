package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmlabs/walletd/internal/stream"
)

// Assets handles GET /api/assets.
func (h *Handler) Assets(c *gin.Context) {
	c.JSON(http.StatusOK, stream.AssetListResp{Assets: h.assets.All()})
}

// NativeAsset handles GET /api/assets/native.
func (h *Handler) NativeAsset(c *gin.Context) {
	c.JSON(http.StatusOK, stream.NativeAssetResp{Asset: h.assets.Native()})
}

// GetAsset handles GET /api/assets/:symbol.
func (h *Handler) GetAsset(c *gin.Context) {
	symbol := c.Param("symbol")
	addresses, err := h.assets.Get(symbol)
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.AssetResp{Asset: symbol, Addresses: addresses})
}
