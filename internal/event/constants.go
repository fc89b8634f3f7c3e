package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySeverity = "severity"
	MetadataKeySource   = "source"
)

// Save sources
const (
	SaveSourceAutosave = "autosave"
	SaveSourceManual   = "manual"
	SaveSourceShutdown = "shutdown"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
