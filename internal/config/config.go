// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container of the service.
// It is populated by merging built-in defaults, a .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - json:"-" : keeps secrets out of structured log output.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App

	// Storage holds the PostgreSQL connection settings.
	Storage Storage

	// Server holds listener, timeout and HTTP guard settings.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET" json:"-"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER"`

	// TokenDuration is how long an issued token stays valid (e.g. "1h").
	// Env: JWT_DURATION
	TokenDuration time.Duration `env:"JWT_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: BCRYPT_COST
	PasswordHashCost int `env:"BCRYPT_COST"`

	// LogLevel is the minimum zerolog level that is written (e.g. "info").
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// Env: DB_HOST
	Host string `env:"HOST"`
	// Env: DB_PORT
	Port int `env:"PORT"`
	// Env: DB_USER
	User string `env:"USER"`
	// Env: DB_PASSWORD
	Password string `env:"PASSWORD" json:"-"`
	// Env: DB_NAME
	Name string `env:"NAME"`
	// SSLMode is passed to the driver as the sslmode parameter.
	// Env: DB_SSL_MODE
	SSLMode string `env:"SSL_MODE"`
	// ConnectTimeout bounds the initial connection and ping.
	// Env: DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// DSN returns the PostgreSQL connection URL built from the individual settings.
// User name, password and database name are escaped.
func (db DB) DSN() string {
	query := url.Values{}
	if db.SSLMode != "" {
		query.Set("sslmode", db.SSLMode)
	}
	if seconds := int(db.ConnectTimeout / time.Second); seconds > 0 {
		query.Set("connect_timeout", strconv.Itoa(seconds))
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Server holds network, timeout and request guard settings.
type Server struct {
	// Host is the interface to bind; empty means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"SERVER_HOST"`

	// Port is the TCP port of the HTTP listener.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// BodyLimit is the maximum accepted request body size in bytes.
	// Env: BODY_LIMIT
	BodyLimit int64 `env:"BODY_LIMIT"`

	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	CORS CORS `envPrefix:"CORS_"`

	// TrustedProxies lists the CIDRs of reverse proxies whose
	// X-Forwarded-For, X-Real-IP and True-Client-IP headers are believed.
	// Empty means the client address is always the TCP peer.
	// Env: TRUSTED_PROXIES (comma separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RateLimit configures the per-client-IP sliding window limiter: at most
// Requests within any Window.
type RateLimit struct {
	// Env: RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS"`
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`
}

// CORS configures cross-origin resource sharing.
type CORS struct {
	// AllowedOrigins is a comma separated list in the environment.
	// Env: CORS_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after loading an optional .env file)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		build()
}
