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
	MetricNameTreesPlanted       = "garden_trees_planted_total"
	MetricNameCareActions        = "garden_care_actions_total"
	MetricNameHarvests           = "garden_harvests_total"
	MetricNameCoinAwarded        = "garden_coin_awarded_total"
	MetricNameExperienceAwarded  = "garden_experience_awarded_total"
	MetricNameCheckins           = "checkins_total"
	MetricNameMilestonesReached  = "checkin_milestones_reached_total"
	MetricNameCooldownRejections = "garden_cooldown_rejections_total"
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
	HelpTextTreesPlanted       = "Total number of trees planted"
	HelpTextCareActions        = "Total number of successful water and fertilize actions"
	HelpTextHarvests           = "Total number of harvests"
	HelpTextCoinAwarded        = "Total coin granted by harvests, check-ins and milestones"
	HelpTextExperienceAwarded  = "Total experience granted"
	HelpTextCheckins           = "Total number of daily check-ins"
	HelpTextMilestonesReached  = "Total number of streak milestone bonuses granted"
	HelpTextCooldownRejections = "Total number of care actions rejected by a cooldown"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelVariety   = "variety"
	LabelAction    = "action"
	LabelQuality   = "quality"
	LabelGap       = "gap"
	LabelThreshold = "threshold"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets are the request duration buckets in seconds, 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
