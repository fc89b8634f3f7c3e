package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvStorageDriver     = "STORAGE_DRIVER"
	EnvSQLitePath        = "SQLITE_PATH"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvAutosaveInterval  = "AUTOSAVE_INTERVAL"
	EnvReplenishInterval = "REPLENISH_INTERVAL"
	EnvImagesDir         = "IMAGES_DIR"
	EnvTuningFile        = "TUNING_FILE"
	EnvDevMode           = "DEV_MODE"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "martianpotato"
	DefaultVersion           = "dev"
	DefaultStorageDriver     = StorageSQLite
	DefaultSQLitePath        = "data/martianpotato.db"
	DefaultDBPort            = "5432"
	DefaultDBName            = "martianpotato"
	DefaultDBMaxConns        = 5
	DefaultAutosaveInterval  = 30 * time.Second
	DefaultReplenishInterval = 5 * time.Second
	DefaultImagesDir         = "images"
)

// ErrMsgInvalidConfig prefixes every validation failure
const ErrMsgInvalidConfig = "invalid configuration"
