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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TreesPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreesPlanted,
			Help: HelpTextTreesPlanted,
		},
		[]string{LabelVariety},
	)

	CareActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCareActions,
			Help: HelpTextCareActions,
		},
		[]string{LabelAction},
	)

	Harvests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
		[]string{LabelVariety, LabelQuality},
	)

	CoinAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinAwarded,
			Help: HelpTextCoinAwarded,
		},
	)

	ExperienceAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceAwarded,
			Help: HelpTextExperienceAwarded,
		},
	)

	Checkins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheckins,
			Help: HelpTextCheckins,
		},
		[]string{LabelGap},
	)

	MilestonesReached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMilestonesReached,
			Help: HelpTextMilestonesReached,
		},
		[]string{LabelThreshold},
	)

	CooldownRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCooldownRejections,
			Help: HelpTextCooldownRejections,
		},
		[]string{LabelAction},
	)
)
