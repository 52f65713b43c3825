package server

import "time"

// MaxRequestBodyBytes caps every request body
const MaxRequestBodyBytes = 1 << 20

// Per-IP request ceiling enforced by SuspiciousActivityDetector
const (
	DetectorWindow          = 5 * time.Minute
	DetectorMaxRequests     = 1000
	DetectorFailedAuthAlert = 5
	DetectorLogEvery        = 100
)

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed admin authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting    = "Server starting"
	LogMsgRequestStarted    = "Request started"
	LogMsgRequestCompleted  = "Request completed"
	LogMsgRequestHeaders    = "Request headers"
	LogMsgAuthFailed        = "Admin authentication failed"
	LogMsgAuthNotConfigured = "Admin API key not configured, rejecting request"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// QuietPaths are not request-logged
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const RedactedValue = "[REDACTED]"
