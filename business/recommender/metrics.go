package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of ranked recommendation lists served, by price policy.",
		},
		[]string{"price_policy"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal)
}
