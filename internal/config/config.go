// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// feature serving process. It is populated by merging values from
// environment variables, command-line flags, an optional JSON or YAML file
// and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds the online/job store DSN and the batch export directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings cmd/client uses to reach a serving process.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the batch export and job retention settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds Prometheus settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// The format is chosen by extension (.yaml/.yml → YAML, anything else → JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// ExportDir is the directory batch jobs write their result files to.
	// Env: STORAGE_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR" validate:"required"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database. "postgres://" and
	// "postgresql://" DSNs use pgx; anything else is opened with SQLite
	// (an optional "sqlite://" prefix is stripped).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" validate:"required"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Empty disables HTTP.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,hostname_port"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090"). Empty disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" validate:"omitempty,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// Adapter holds the outbound settings of cmd/client.
type Adapter struct {
	// HTTPAddress is the base URL of the serving HTTP API
	// (e.g. "http://localhost:8080"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single client call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ExportInterval is how often the batch export worker polls for
	// PENDING jobs.
	// Env: WORKERS_EXPORT_INTERVAL
	ExportInterval time.Duration `env:"EXPORT_INTERVAL" validate:"gt=0"`

	// ExportBatchSize caps the number of jobs claimed per poll.
	// Env: WORKERS_EXPORT_BATCH_SIZE
	ExportBatchSize int `env:"EXPORT_BATCH_SIZE" validate:"gt=0"`

	// RetentionSchedule is a standard cron expression (or descriptor such
	// as "@hourly") controlling when finished jobs are purged.
	// Env: WORKERS_RETENTION_SCHEDULE
	RetentionSchedule string `env:"RETENTION_SCHEDULE" validate:"required"`

	// JobRetention is how long finished jobs are kept.
	// Env: WORKERS_JOB_RETENTION
	JobRetention time.Duration `env:"JOB_RETENTION" validate:"gt=0"`
}

// Metrics holds Prometheus settings.
type Metrics struct {
	// Namespace prefixes every metric name (e.g. "feature_serving").
	// Env: METRICS_NAMESPACE
	Namespace string `env:"NAMESPACE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
