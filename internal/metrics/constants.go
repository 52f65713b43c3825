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

// Business metric names
const (
	MetricNameCollectsTotal      = "slots_collects_total"
	MetricNameConfirmationsTotal = "slots_collect_confirmations_total"
	MetricNameRecoveriesTotal    = "slots_collect_recoveries_total"
	MetricNameSpinsTotal         = "slots_spins_total"
	MetricNamePurchasesTotal     = "slots_spin_purchases_total"
	MetricNameTokensWagered      = "slots_tokens_wagered_total"
	MetricNameTokensWon          = "slots_tokens_won_total"
	MetricNameTokensPaidOut      = "slots_tokens_paid_out_total"
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

// Business metric help text
const (
	HelpTextCollectsTotal      = "Collect requests by outcome"
	HelpTextConfirmationsTotal = "Collect confirmations by outcome"
	HelpTextRecoveriesTotal    = "Abandoned collect reservations resolved by the recovery sweep, by outcome"
	HelpTextSpinsTotal         = "Spins resolved, by whether they paid out"
	HelpTextPurchasesTotal     = "Spin credit purchases by outcome"
	HelpTextTokensWagered      = "Tokens wagered across all spins"
	HelpTextTokensWon          = "Tokens won across all spins"
	HelpTextTokensPaidOut      = "Tokens transferred to players with settled confirmation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Spin result label values
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UnmatchedRoute labels requests that did not match any route
const UnmatchedRoute = "unmatched"
