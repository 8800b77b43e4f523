package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/models"
)

// credentialRepository is the SQLite-backed [CredentialRepository].
// It never sees a plaintext password: callers store the sealed form.
type credentialRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] over db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *credentialRepository) SaveCredentials(ctx context.Context, creds models.Credentials) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertCredentialsQuery(creds.Username, creds.SealedPassword, creds.Token, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveCredentials").
			Str("username", creds.Username).
			Msg("failed to save credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *credentialRepository) GetCredentials(ctx context.Context) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCredentialsQuery()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var creds models.Credentials
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&creds.Username,
		&creds.SealedPassword,
		&creds.Token,
		&creds.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credentials{}, ErrCredentialsNotFound
		}
		log.Err(err).Str("func", "credentialRepository.GetCredentials").Msg("failed to read credentials")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return creds, nil
}

func (r *credentialRepository) SaveToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := updateTokenQuery(token, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.SaveToken").Msg("failed to save token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialsNotFound
	}

	return nil
}

func (r *credentialRepository) DeleteCredentials(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteCredentialsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "credentialRepository.DeleteCredentials").Msg("failed to delete credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
