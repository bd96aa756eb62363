package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evmlabs/walletd/internal/constant"
	"github.com/evmlabs/walletd/internal/stream"
)

// CreateWallets handles POST /api/wallet?count=n.
func (h *Handler) CreateWallets(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, stream.ErrResp{Detail: "count must be an integer"})
		return
	}

	wallets, err := h.wallets.Create(c.Request.Context(), count)
	if err != nil {
		h.abortErr(c, err)
		return
	}

	resp := make([]stream.WalletResp, 0, len(wallets))
	for _, w := range wallets {
		resp = append(resp, stream.NewWalletResp(w))
	}
	c.JSON(http.StatusOK, resp)
}

// ListWallets handles GET /api/wallet?page=&limit=.
func (h *Handler) ListWallets(c *gin.Context) {
	page, limit, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.wallets.List(c.Request.Context(), page, limit)
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.NewWalletListResp(result.Wallets, result.Pagination))
}

// GetWallet handles GET /api/wallet/:address.
func (h *Handler) GetWallet(c *gin.Context) {
	w, err := h.wallets.Get(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.NewWalletResp(w))
}

// DeleteWallet handles DELETE /api/wallet/:address, a soft delete.
func (h *Handler) DeleteWallet(c *gin.Context) {
	w, err := h.wallets.Delete(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.NewWalletResp(w))
}

// Balance handles GET /api/wallet/:address/balance.
func (h *Handler) Balance(c *gin.Context) {
	balance, err := h.wallets.Balance(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.BalanceResp{
		Address: balance.Address,
		Wei:     balance.Wei.String(),
		Ether:   balance.Ether.String(),
	})
}

// TokenBalance handles GET /api/wallet/:address/balance/:symbol.
func (h *Handler) TokenBalance(c *gin.Context) {
	balance, err := h.wallets.TokenBalance(c.Request.Context(), c.Param("address"), c.Param("symbol"))
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.TokenBalanceResp{
		Address: balance.Address,
		Asset:   balance.Asset,
		Units:   balance.Units.String(),
		Amount:  balance.Amount.String(),
	})
}

func (h *Handler) pageParams(c *gin.Context) (page, limit int, ok bool) {
	var err error
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, stream.ErrResp{Detail: "page must be an integer"})
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constant.DefaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, stream.ErrResp{Detail: "limit must be an integer"})
		return 0, 0, false
	}
	return page, limit, true
}
