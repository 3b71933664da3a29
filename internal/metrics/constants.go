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
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameBadgesEarned      = "badges_earned_total"
	MetricNameRewardsMinted     = "rewards_minted_total"
	MetricNameRewardsRequested  = "rewards_requested_total"
	MetricNameRewardsAwarded    = "rewards_awarded_total"
	MetricNameStarsAwarded      = "stars_awarded_total"
	MetricNameMilestonesReached = "milestones_reached_total"
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
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextBadgesEarned      = "Total number of badges earned through gameplay"
	HelpTextRewardsMinted     = "Total number of rewards minted from completed cycles"
	HelpTextRewardsRequested  = "Total number of rewards requested by players"
	HelpTextRewardsAwarded    = "Total number of rewards awarded by admins"
	HelpTextStarsAwarded      = "Total number of stars awarded"
	HelpTextMilestonesReached = "Total number of tier milestones reached"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelDifficulty = "difficulty"
	LabelTier       = "tier"
)

// ============================================================================
// Event Payload Field Names
// ============================================================================

// Field names used when extracting values from event payloads
const (
	PayloadFieldDifficulty  = "difficulty"
	PayloadFieldStarsEarned = "stars_earned"
	PayloadFieldCount       = "count"
	PayloadFieldTier        = "tier"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded      = "Metrics recorded for event"
	LogMsgPayloadDecodeFailure = "Failed to decode event payload for metrics"
)
