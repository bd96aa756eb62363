// Package metrics registers the prometheus collectors of the daemon.
package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletd",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletd",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// ObservePool exposes the live pgx pool counters as gauges.
func ObservePool(stat func() *pgxpool.Stat) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "walletd",
		Name:      "db_pool_total_conns",
		Help:      "Total connections currently held by the pool.",
	}, func() float64 { return float64(stat().TotalConns()) })

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "walletd",
		Name:      "db_pool_idle_conns",
		Help:      "Idle connections currently held by the pool.",
	}, func() float64 { return float64(stat().IdleConns()) })

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "walletd",
		Name:      "db_pool_acquired_conns",
		Help:      "Connections currently checked out of the pool.",
	}, func() float64 { return float64(stat().AcquiredConns()) })
}
