package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used for push integrity checks.
	HashKey string
	// CredentialsKey seals the stored remote password.
	CredentialsKey string
	// DefaultPartition is the textual partition used without a stored preference.
	DefaultPartition string
	// LogFile is the client log path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote endpoint.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage

	// Command is the positional command line left after flags,
	// e.g. ["apply", "changes.yaml"].
	Command []string
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration. args are the process arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:          cfg.App.HashKey,
			CredentialsKey:   cfg.App.CredentialsKey,
			DefaultPartition: cfg.App.DefaultPartition,
			LogFile:          cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Command: cfg.args,
	}

	return clientCfg, clientCfg.validate()
}
