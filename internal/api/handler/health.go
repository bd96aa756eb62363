package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmlabs/walletd/internal/stream"
)

// Health reports whether the database answers a round-trip query. The
// body contract is fixed: {"message":"Healthy"} on success, a
// {"detail": ...} envelope with status 500 otherwise.
func (h *Handler) Health(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, stream.ErrResp{Detail: "Database not initialized"})
		return
	}
	if err := h.db.Healthy(c.Request.Context()); err != nil {
		h.log.Error("health check failed", "err", err)
		c.JSON(http.StatusInternalServerError, stream.ErrResp{Detail: "Database connection error"})
		return
	}
	c.JSON(http.StatusOK, stream.HealthResp{Message: "Healthy"})
}

// Info serves the static service metadata.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, stream.InfoResp{
		Title:       h.info.Title,
		Description: h.info.Description,
		Version:     h.info.Version,
		Env:         h.info.Env,
		Network:     h.info.Network,
	})
}
