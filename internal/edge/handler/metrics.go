package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes recorded on the requests counter.
const (
	outcomeSPAShell = "spa_shell"
	outcomeResolved = "resolved"
	outcomeFallback = "fallback"
	outcomeError    = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edge_requests_total",
		Help: "Edge requests by outcome.",
	}, []string{"outcome"})

	crawlerRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edge_crawler_requests_total",
		Help: "Requests identified as crawler traffic.",
	})

	resolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "edge_resolve_duration_seconds",
		Help:    "Time spent resolving a request against the content store.",
		Buckets: prometheus.DefBuckets,
	})
)
