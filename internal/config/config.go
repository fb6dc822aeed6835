// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the market
// proxy. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is not set.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds the marketplace API connection settings shared by every
	// forwarded request.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Server holds network and lifecycle settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RoutePrefix is the common path prefix of every proxied route.
	// Env: SERVER_ROUTE_PREFIX
	RoutePrefix string `env:"ROUTE_PREFIX" envDefault:"/market"`

	// ShutdownTimeout bounds how long in-flight requests may take to finish
	// after a stop signal is received.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Upstream holds the settings of the shared outbound marketplace client.
type Upstream struct {
	// BaseURL is the marketplace API root every upstream path is joined to.
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL" envDefault:"https://portals-market.com/api"`

	// AuthToken is sent verbatim as the Authorization header of every
	// upstream request. It has no default and must be supplied externally.
	// Env: UPSTREAM_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// Referer is sent as the Referer header.
	// Env: UPSTREAM_REFERER
	Referer string `env:"REFERER" envDefault:"https://portals-market.com/"`

	// UserAgent is sent as the User-Agent header.
	// Env: UPSTREAM_USER_AGENT
	UserAgent string `env:"USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36 Edg/137.0.0.0"`

	// RequestTimeout is the fixed timeout of every upstream call.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Later sources override
// non-zero fields of earlier ones:
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
