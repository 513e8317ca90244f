// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied after all configuration sources are merged.
const (
	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":8000"

	// DefaultRequestTimeout bounds a single outbound call to the Swarm node.
	DefaultRequestTimeout = 10 * time.Second
)

// StructuredConfig is the top-level configuration container for the stamp
// gateway. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds listen address settings for the inbound HTTP surface.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the connection settings for the upstream Swarm node.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// MetricsAddress is the optional TCP address on which the Prometheus
	// metrics server listens. Metrics are disabled when empty.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Adapter holds configuration for the upstream Swarm Bee node client.
type Adapter struct {
	// NodeAPIURL is the base URL of the Swarm Bee node HTTP API
	// (e.g. "http://localhost:1633"). Required; validated as a well-formed
	// http or https URL at startup, and the process fails fast otherwise.
	// Env: ADAPTER_NODE_API_URL
	NodeAPIURL string `env:"NODE_API_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// call to the node before it is abandoned (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
