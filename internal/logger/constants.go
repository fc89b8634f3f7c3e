package logger

// requestIDKey value and the attribute it is logged under
const (
	ContextKeyRequestID = "request_id"
	AttrKeyRequestID    = "request_id"
)

// Accepted level names; "warning" is an alias for "warn"
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Identity used when the application leaves it blank
const (
	DefaultServiceName = "martian-potato"
	DefaultVersion     = "dev"
)

// Base attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
)
