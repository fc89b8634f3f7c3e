package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
	MetricNameNoticesShown    = "notices_shown_total"
	MetricNameSnapshotsSaved  = "snapshots_saved_total"
)

// Game metric names
const (
	MetricNameExplorations      = "explorations_total"
	MetricNameResourcesGathered = "resources_gathered_total"
	MetricNamePotatoesMinted    = "potatoes_minted_total"
	MetricNameUpgradesPurchased = "upgrades_purchased_total"
	MetricNamePlantersStalled   = "auto_planters_stalled_total"
	MetricNameResourceAmount    = "resource_amount"
	MetricNameAutoPlanters      = "auto_planters"
	MetricNameExplorationRate   = "exploration_rate"
	MetricNamePlantingTier      = "planting_tier"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
	HelpTextNoticesShown    = "Total number of notices shown to the player"
	HelpTextSnapshotsSaved  = "Total number of game snapshots written"
)

// Game metric help text
const (
	HelpTextExplorations      = "Total number of exploration attempts and ticks"
	HelpTextResourcesGathered = "Total amount of each resource gathered by exploration"
	HelpTextPotatoesMinted    = "Total number of potatoes planted"
	HelpTextUpgradesPurchased = "Total number of upgrades purchased"
	HelpTextPlantersStalled   = "Total number of times an auto-planter ran out of resources"
	HelpTextResourceAmount    = "Current amount of each resource"
	HelpTextAutoPlanters      = "Owned auto-planters by status"
	HelpTextExplorationRate   = "Current autonomous exploration rate"
	HelpTextPlantingTier      = "Highest purchased planting tier"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelSeverity = "severity"
	LabelSource   = "source"
	LabelKind     = "kind"
	LabelOutcome  = "outcome"
	LabelResource = "resource"
	LabelUpgrade  = "upgrade"
)

// Label values
const (
	KindManual     = "manual"
	KindAutonomous = "autonomous"

	OutcomeAllowed = "allowed"
	OutcomeRefused = "refused"

	SourceManual  = "manual"
	SourcePlanter = "planter"

	StatusActive  = "active"
	StatusDormant = "dormant"

	LabelValueUnmatched = "unmatched"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are histogram buckets for HTTP request latency (seconds)
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded   = "Metrics recorded for event"
	LogMsgUnexpectedPayload  = "Unexpected payload type for event"
)
