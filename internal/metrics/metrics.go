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
	BadgesEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgesEarned,
			Help: HelpTextBadgesEarned,
		},
		[]string{LabelDifficulty},
	)

	RewardsMinted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsMinted,
			Help: HelpTextRewardsMinted,
		},
		[]string{LabelDifficulty},
	)

	RewardsRequested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsRequested,
			Help: HelpTextRewardsRequested,
		},
		[]string{LabelDifficulty},
	)

	RewardsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsAwarded,
			Help: HelpTextRewardsAwarded,
		},
		[]string{LabelDifficulty},
	)

	StarsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStarsAwarded,
			Help: HelpTextStarsAwarded,
		},
	)

	MilestonesReached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMilestonesReached,
			Help: HelpTextMilestonesReached,
		},
		[]string{LabelTier},
	)
)
