// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the strings
// editor. It is populated by merging values from environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: keys, default partition, logging.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote repository endpoint and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// args holds the positional arguments left after flag parsing.
	args []string
}

// Storage groups the configuration of local persistence.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key of the HashSHA256 push integrity header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// CredentialsKey is the secret the stored remote password is sealed with.
	// Env: APP_CREDENTIALS_KEY
	CredentialsKey string `env:"CREDENTIALS_KEY"`

	// DefaultPartition is used until a partition preference is stored
	// (e.g. "ios", "android/fr").
	// Env: APP_DEFAULT_PARTITION
	DefaultPartition string `env:"DEFAULT_PARTITION"`

	// LogFile is where the client writes its JSON log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:strings.db?_foreign_keys=on").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the remote repository client.
type Adapter struct {
	// HTTPAddress is the remote base URL or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
