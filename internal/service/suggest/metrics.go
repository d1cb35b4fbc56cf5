package suggest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warmline_parses_total",
			Help: "Completed generation runs by result",
		},
		[]string{"result"},
	)

	reviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warmline_reviews_total",
			Help: "Settled suggestion reviews by terminal status",
		},
		[]string{"status"},
	)
)
