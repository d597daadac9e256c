package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Loot Metrics
var (
	LootAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootAttempts,
			Help: HelpTextLootAttempts,
		},
		[]string{LabelOutcome},
	)

	LootWeightStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootWeightStored,
			Help: HelpTextLootWeightStored,
		},
		[]string{LabelContainer},
	)

	ContainersRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContainersCreated,
			Help: HelpTextContainersCreated,
		},
		[]string{LabelKind},
	)
)
