// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// starwars API processes. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Environment variable names are flat (DATABASE_URL, PORT, ...) so that the
// service can be deployed on platforms that inject exactly those keys.
type StructuredConfig struct {
	// App holds application-level settings.
	App App

	// Storage holds configuration for the relational database.
	Storage Storage

	// Server holds the listen address and HTTP server tuning.
	Server Server

	// Telemetry holds tracing settings. Metrics are always on.
	Telemetry Telemetry

	// Adapter holds settings of the command-line API client.
	Adapter Adapter

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /version when no linker-injected build
	// version is present.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// DefaultUserID is the user on whose behalf favorite operations run
	// when the request carries no usable user_id query parameter.
	// Env: DEFAULT_USER_ID
	DefaultUserID int64 `env:"DEFAULT_USER_ID"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database. postgres:// and
	// postgresql:// URLs use PostgreSQL; anything else is a SQLite file path.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds reading and writing a single request. Zero
	// disables the limit.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Address returns the host:port pair the HTTP server listens on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Telemetry holds tracing configuration.
type Telemetry struct {
	// OTLPEndpoint is the OTLP/HTTP collector endpoint (host:port).
	// Tracing is disabled when empty.
	// Env: OTEL_EXPORTER_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// ServiceName is reported as the service.name resource attribute.
	// Env: OTEL_SERVICE_NAME
	ServiceName string `env:"OTEL_SERVICE_NAME"`
}

// Adapter holds settings of the outbound API client used by cmd/client.
type Adapter struct {
	// BaseURL is the root URL of the API (e.g. "http://localhost:3000").
	// Env: API_URL
	BaseURL string `env:"API_URL"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Pass nil args to skip flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
