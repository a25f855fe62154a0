package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsAdded counts accepted records per calculator.
	RecordsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "limit_calculator_records_added_total",
			Help: "Total number of records added",
		},
		[]string{"calculator"},
	)

	// AmountAdded sums the amounts of accepted records per calculator.
	AmountAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "limit_calculator_amount_added_total",
			Help: "Sum of amounts of added records",
		},
		[]string{"calculator"},
	)

	// RequestDuration measures request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "limit_calculator_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route", "status"},
	)
)
