package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the Recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation pages served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Total number of catalog searches served
	SearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_search_requests_total",
		Help: "Total number of search requests",
	})

	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_page_cache_hits_total",
		Help: "Recommendation page cache hits",
	})

	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_page_cache_misses_total",
		Help: "Recommendation page cache misses",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		SearchRequests,
		CacheHits,
		CacheMisses,
	)
}
