package api

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/ChainSafe/log15"
	"github.com/gin-gonic/gin"

	"github.com/evmlabs/walletd/internal/metrics"
)

// maxLoggedBody caps how much of a request body lands in the log.
const maxLoggedBody = 1000

// RequestLogger logs method, path, status and latency for every
// request, with a truncated copy of the body on writes.
func RequestLogger(logger log15.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var body string
		if c.Request.Body != nil && c.Request.Method != "GET" {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody+1))
			if err == nil {
				if len(raw) > maxLoggedBody {
					body = string(raw[:maxLoggedBody]) + "..."
				} else {
					body = string(raw)
				}
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), c.Request.Body))
			}
		}

		c.Next()

		entry := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if body != "" {
			entry = append(entry, "body", body)
		}
		logger.Info("request", entry...)
	}
}

// Metrics records the prometheus request counters.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestCount.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
