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

	NoticesShown = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNoticesShown,
			Help: HelpTextNoticesShown,
		},
		[]string{LabelSeverity},
	)

	SnapshotsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsSaved,
			Help: HelpTextSnapshotsSaved,
		},
		[]string{LabelSource},
	)
)

// Game Metrics
var (
	Explorations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExplorations,
			Help: HelpTextExplorations,
		},
		[]string{LabelKind, LabelOutcome},
	)

	ResourcesGathered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesGathered,
			Help: HelpTextResourcesGathered,
		},
		[]string{LabelResource},
	)

	PotatoesMinted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePotatoesMinted,
			Help: HelpTextPotatoesMinted,
		},
		[]string{LabelSource},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	PlantersStalled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantersStalled,
			Help: HelpTextPlantersStalled,
		},
	)
)

// Game state gauges, refreshed from state.changed events
var (
	ResourceAmount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameResourceAmount,
			Help: HelpTextResourceAmount,
		},
		[]string{LabelResource},
	)

	AutoPlanters = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameAutoPlanters,
			Help: HelpTextAutoPlanters,
		},
		[]string{LabelStatus},
	)

	ExplorationRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameExplorationRate,
			Help: HelpTextExplorationRate,
		},
	)

	PlantingTier = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlantingTier,
			Help: HelpTextPlantingTier,
		},
	)
)
