package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-strings-editor/internal/config"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Preferences holds the last selected partition.
	Preferences PreferenceRepository

	// Credentials holds the sealed remote login and cached token.
	Credentials CredentialRepository

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN (creating
// the file if needed), runs pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Preferences: NewPreferenceRepository(db, logger),
		Credentials: NewCredentialRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
