package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Duration of one full recommendation batch over a store
	RecommendationBatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_batch_duration_seconds",
		Help:    "Duration of full recommendation batch runs",
		Buckets: prometheus.DefBuckets,
	})

	// Total recommendation batch runs
	RecommendationBatchRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_batch_runs_total",
		Help: "Total number of recommendation batch runs",
	})

	// Per-item errors inside batch runs
	RecommendationItemErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_item_errors_total",
		Help: "Total number of per-product or per-category errors during batch runs",
	})

	// Total store cache syncs
	SyncRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_sync_runs_total",
		Help: "Total number of store cache sync runs",
	})

	// Duration of one store cache sync
	SyncDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_sync_duration_seconds",
		Help:    "Duration of store cache sync runs",
		Buckets: prometheus.DefBuckets,
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendationBatchDuration,
		RecommendationBatchRuns,
		RecommendationItemErrors,
		SyncRuns,
		SyncDuration,
	)
}
