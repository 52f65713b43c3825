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

// Business Metrics
var (
	CollectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectsTotal,
			Help: HelpTextCollectsTotal,
		},
		[]string{LabelOutcome},
	)

	ConfirmationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConfirmationsTotal,
			Help: HelpTextConfirmationsTotal,
		},
		[]string{LabelOutcome},
	)

	RecoveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecoveriesTotal,
			Help: HelpTextRecoveriesTotal,
		},
		[]string{LabelOutcome},
	)

	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelResult},
	)

	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesTotal,
			Help: HelpTextPurchasesTotal,
		},
		[]string{LabelOutcome},
	)

	TokensWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensWagered,
			Help: HelpTextTokensWagered,
		},
	)

	TokensWon = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensWon,
			Help: HelpTextTokensWon,
		},
	)

	TokensPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensPaidOut,
			Help: HelpTextTokensPaidOut,
		},
	)
)
