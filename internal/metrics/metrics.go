package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration observes request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catering",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// OrdersCreated counts successfully placed orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "catering",
		Name:      "orders_created_total",
		Help:      "Number of orders placed.",
	})

	// CheckoutFailures counts checkout attempts rejected or failed.
	CheckoutFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catering",
			Name:      "checkout_failures_total",
			Help:      "Checkout failures by reason.",
		},
		[]string{"reason"},
	)

	// DiscountCodesRejected counts invalid/expired/unknown code attempts.
	DiscountCodesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "catering",
		Name:      "discount_codes_rejected_total",
		Help:      "Discount code validations that were rejected.",
	})

	// CacheHits and CacheMisses track the catalog cache.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catering",
			Name:      "cache_hits_total",
			Help:      "Cache hits by key kind.",
		},
		[]string{"kind"},
	)
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catering",
			Name:      "cache_misses_total",
			Help:      "Cache misses by key kind.",
		},
		[]string{"kind"},
	)
)
