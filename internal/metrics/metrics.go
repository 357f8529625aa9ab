package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OperatorFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rotorhub_operator_fetch_total",
			Help: "Upstream fetch attempts per operator, labelled by outcome.",
		},
		[]string{"operator", "outcome"},
	)

	FlightsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rotorhub_flights_emitted_total",
			Help: "Flights emitted into merged responses per operator.",
		},
		[]string{"operator"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rotorhub_request_duration_seconds",
			Help:    "End to end handler latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

func Handler() http.Handler {
	return promhttp.Handler()
}
