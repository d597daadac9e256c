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

// Loot metric names
const (
	MetricNameLootAttempts      = "loot_attempts_total"
	MetricNameLootWeightStored  = "loot_weight_stored_total"
	MetricNameContainersCreated = "containers_registered_total"
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

// Loot metric help text
const (
	HelpTextLootAttempts      = "Total number of loot attempts by outcome"
	HelpTextLootWeightStored  = "Total item weight stored, by targeted container"
	HelpTextContainersCreated = "Total number of containers registered, by kind"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOutcome   = "outcome"
	LabelContainer = "container"
	LabelKind      = "kind"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// Container kinds
const (
	KindStandard = "standard"
	KindMulti    = "multi"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
