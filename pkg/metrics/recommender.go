package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the Recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommend requests",
	})

	// Product rows recovered with neutral values during catalog ingestion
	MalformedRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_malformed_records_total",
		Help: "Count of catalog rows with malformed numeric fields recovered to neutral values",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		MalformedRecordsTotal,
	)
}
