package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// SecurityAlertHighRate is logged when a client exceeds the request budget
const SecurityAlertHighRate = "SECURITY ALERT: Blocking high request rate"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Request limits
const (
	MaxRequestBodyBytes = 1 << 20
	RateLimitWindow     = 5 * time.Minute
	RateLimitRequests   = 3000
	ReadHeaderTimeout   = 5 * time.Second
)

// Route paths
const (
	PathHealthz  = "/healthz"
	PathReadyz   = "/readyz"
	PathMetrics  = "/metrics"
	PathImages   = "/images"
	PathAPIV1    = "/api/v1"
	PathEvents   = "/events"
	PathState    = "/state"
	PathExplore  = "/explore"
	PathPlant    = "/plant"
	PathUpgrades = "/upgrades"
	PathPurchase = "/upgrades/purchase"
	PathRate     = "/exploration/rate"
	PathSettings = "/settings"
	PathSave     = "/save"
)

// QuietPaths are not logged per request
var QuietPaths = []string{
	PathHealthz,
	PathReadyz,
	PathMetrics,
}

// RedactedValue replaces sensitive header values in logs
const RedactedValue = "[REDACTED]"
