package config

import (
	"flag"
	"fmt"
)

// RemoteConfig configures the development remote served by cmd/remote.
type RemoteConfig struct {
	// Address is the listen address, host:port.
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS" envDefault:"localhost:8080"`

	// HashKey verifies the HashSHA256 header of pushed commits. It must match
	// the client's APP_HASH_KEY.
	// Env: REMOTE_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// FixturePath is an optional YAML file with users and partitions.
	// Env: REMOTE_FIXTURE
	FixturePath string `env:"FIXTURE"`
}

type remoteEnv struct {
	Remote RemoteConfig `envPrefix:"REMOTE_"`
}

// GetRemoteConfig reads the remote configuration from the environment and
// then from args, which take precedence.
//
// Flags:
//
//	-a listen address
//	-hash-key push integrity hash key
//	-fixture YAML fixture path
func GetRemoteConfig(args []string) (*RemoteConfig, error) {
	var fromEnv remoteEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, err
	}
	cfg := fromEnv.Remote

	fs := flag.NewFlagSet("strings-remote", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "Listen address host:port")
	fs.StringVar(&cfg.HashKey, "hash-key", cfg.HashKey, "Push integrity hash key")
	fs.StringVar(&cfg.FixturePath, "fixture", cfg.FixturePath, "YAML fixture path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if cfg.Address == "" {
		return nil, ErrInvalidAdapterConfigs
	}
	if cfg.HashKey == "" {
		return nil, ErrInvalidAppConfigs
	}

	return &cfg, nil
}
