package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/evmlabs/walletd/internal/service"
	"github.com/evmlabs/walletd/internal/stream"
)

// CreateTx handles POST /api/tx.
func (h *Handler) CreateTx(c *gin.Context) {
	var req stream.CreateTxReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, stream.ErrResp{Detail: err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, stream.ErrResp{Detail: "amount must be a decimal number"})
		return
	}

	tx, err := h.txs.Create(c.Request.Context(), service.CreateTxReq{
		From:   req.From,
		To:     req.To,
		Asset:  req.Asset,
		Amount: amount,
	})
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.NewTxResp(tx))
}

// GetTx handles GET /api/tx/:id.
func (h *Handler) GetTx(c *gin.Context) {
	tx, err := h.txs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.NewTxResp(tx))
}

// GetTxByHash handles GET /api/tx/hash/:hash.
func (h *Handler) GetTxByHash(c *gin.Context) {
	tx, err := h.txs.GetByHash(c.Request.Context(), c.Param("hash"))
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.NewTxResp(tx))
}

// ListTxs handles GET /api/tx/wallet/:address.
func (h *Handler) ListTxs(c *gin.Context) {
	page, limit, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.txs.ListByWallet(c.Request.Context(), c.Param("address"), page, limit)
	if err != nil {
		h.abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stream.NewTxListResp(result.Transactions, result.Pagination))
}
