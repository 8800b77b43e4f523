// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY":          "push_hash",
		"APP_CREDENTIALS_KEY":   "sealing_secret",
		"APP_DEFAULT_PARTITION": "android/fr",
		"APP_LOG_FILE":          "/tmp/strings.log",
		"APP_VERSION":           "1.2.3",

		"ADAPTER_ADDRESS":         "http://strings.local:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DSN": "file:strings.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "push_hash", cfg.App.HashKey)
	assert.Equal(t, "sealing_secret", cfg.App.CredentialsKey)
	assert.Equal(t, "android/fr", cfg.App.DefaultPartition)
	assert.Equal(t, "/tmp/strings.log", cfg.App.LogFile)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://strings.local:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "file:strings.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_HASH_KEY":    "push_hash",
		"ADAPTER_ADDRESS": "localhost:8080",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "push_hash", cfg.App.HashKey)
	assert.Empty(t, cfg.App.CredentialsKey)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "1500ms", 1500 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_HASH_KEY",
	"APP_CREDENTIALS_KEY",
	"APP_DEFAULT_PARTITION",
	"APP_LOG_FILE",
	"APP_VERSION",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",

	"STORAGE_DB_DSN",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		// t.Setenv restores the previous value on cleanup
		t.Setenv(k, "")
	}
}
