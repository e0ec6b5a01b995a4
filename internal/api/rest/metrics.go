package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridiron_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "status"})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridiron_cache_hits_total",
		Help: "Cache hits by resource.",
	}, []string{"resource"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridiron_cache_misses_total",
		Help: "Cache misses by resource.",
	}, []string{"resource"})
)
