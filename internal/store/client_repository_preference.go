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

// preferenceRepository is the SQLite-backed [PreferenceRepository].
type preferenceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferenceRepository constructs a [PreferenceRepository] over db.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// LastPartition reads and parses the stored partition.
func (r *preferenceRepository) LastPartition(ctx context.Context) (models.Partition, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPreferenceQuery(lastPartitionPreference)
	if err != nil {
		return models.Partition{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Partition{}, ErrPreferenceNotFound
		}
		log.Err(err).Str("func", "preferenceRepository.LastPartition").Msg("failed to read last partition")
		return models.Partition{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	partition, err := models.ParsePartition(value)
	if err != nil {
		log.Warn().Err(err).Str("func", "preferenceRepository.LastPartition").Str("value", value).Msg("stored partition is invalid")
		return models.Partition{}, fmt.Errorf("%w: %w", ErrInvalidPreference, err)
	}

	return partition, nil
}

// SaveLastPartition upserts the partition preference.
func (r *preferenceRepository) SaveLastPartition(ctx context.Context, partition models.Partition) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertPreferenceQuery(lastPartitionPreference, partition.String(), r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.SaveLastPartition").
			Str("partition", partition.String()).
			Msg("failed to save last partition")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
