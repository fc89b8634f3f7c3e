package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	StorageDriver string `validate:"oneof=memory sqlite postgres"`
	SQLitePath    string `validate:"required_if=StorageDriver sqlite"`
	DBUser        string `validate:"required_if=StorageDriver postgres"`
	DBPassword    string
	DBHost        string `validate:"required_if=StorageDriver postgres"`
	DBPort        string `validate:"required_if=StorageDriver postgres"`
	DBName        string `validate:"required_if=StorageDriver postgres"`
	DBMaxConns    int    `validate:"min=1"`

	AutosaveInterval  time.Duration `validate:"min=1s"`
	ReplenishInterval time.Duration `validate:"min=100ms"`

	// TuningFile optionally overrides game tuning; empty keeps the built-in values
	TuningFile string
	ImagesDir  string
	DevMode    bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvAsInt(EnvPort, DefaultPort),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		StorageDriver: strings.ToLower(getEnv(EnvStorageDriver, DefaultStorageDriver)),
		SQLitePath:    getEnv(EnvSQLitePath, DefaultSQLitePath),
		DBUser:        getEnv(EnvDBUser, "postgres"),
		DBPassword:    getEnv(EnvDBPassword, ""),
		DBHost:        getEnv(EnvDBHost, "localhost"),
		DBPort:        getEnv(EnvDBPort, DefaultDBPort),
		DBName:        getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:    getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),

		AutosaveInterval:  getEnvAsDuration(EnvAutosaveInterval, DefaultAutosaveInterval),
		ReplenishInterval: getEnvAsDuration(EnvReplenishInterval, DefaultReplenishInterval),

		ImagesDir:  getEnv(EnvImagesDir, DefaultImagesDir),
		TuningFile: getEnv(EnvTuningFile, ""),
		DevMode:    getEnvAsBool(EnvDevMode, false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(problems, ", "))
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.DevMode || c.Environment == "dev" || c.Environment == "development"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}
