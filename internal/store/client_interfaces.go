package store

import (
	"context"

	"github.com/MKhiriev/go-strings-editor/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PreferenceRepository persists small user preferences. The only one the
// editor needs is the last selected partition.
type PreferenceRepository interface {
	// LastPartition returns [ErrPreferenceNotFound] when nothing was saved yet.
	LastPartition(ctx context.Context) (models.Partition, error)
	SaveLastPartition(ctx context.Context, partition models.Partition) error
}

// CredentialRepository stores the single remote login of this client.
type CredentialRepository interface {
	SaveCredentials(ctx context.Context, creds models.Credentials) error
	// GetCredentials returns [ErrCredentialsNotFound] when no login is stored.
	GetCredentials(ctx context.Context) (models.Credentials, error)
	// SaveToken caches a bearer token next to the stored login.
	SaveToken(ctx context.Context, token string) error
	DeleteCredentials(ctx context.Context) error
}
