package bootstrap

import "time"

// DirPermission is used when creating the SQLite data directory
const DirPermission = 0755

// Postgres pool tuning
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

// Worker pool sizing
const (
	WorkerCount     = 2
	WorkerQueueSize = 16
)

// Log messages for storage initialization
const (
	LogMsgStorageOpened       = "Storage opened"
	LogMsgStorageCloseFailed  = "Storage close failed"
	ErrMsgUnknownStorage      = "unknown storage driver"
	ErrMsgFailedCreateDataDir = "failed to create data directory"
	ErrMsgFailedOpenSQLite    = "failed to open sqlite storage"
	ErrMsgFailedOpenPostgres  = "failed to open postgres storage"
	ErrMsgFailedMigrate       = "failed to migrate postgres storage"
)

// Log messages for event handler registration
const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// Shutdown messages
const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgGameShutdownFailed   = "Game shutdown failed"
	LogMsgShutdownComplete     = "Shutdown complete"
)
