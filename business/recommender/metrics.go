package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_recommendations_total",
			Help: "Count of recommendation calls served, by path (cold or warm).",
		},
		[]string{"path"},
	)

	RatingEventsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_rating_events_total",
			Help: "Count of rating events absorbed into user profiles.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendationsServedTotal,
		RatingEventsTotal,
	)
}
