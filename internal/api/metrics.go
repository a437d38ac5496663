package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rankRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfitter_rank_requests_total",
		Help: "Number of ranking requests served.",
	})

	outfitRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfitter_outfit_requests_total",
		Help: "Number of outfit assembly requests served.",
	})

	productsScored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfitter_products_scored_total",
		Help: "Total products scored across all ranking requests.",
	})

	outfitMissingCategories = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfitter_outfit_missing_categories_total",
		Help: "Required categories left unfilled by the selector.",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outfitter_request_duration_seconds",
		Help:    "HTTP request duration by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
