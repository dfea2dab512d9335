// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/models"
)

// featureRepository is the SQL implementation of [FeatureStorage]. Values
// are stored JSON-encoded in the "feature_values" table; SQL NULL stands for
// a null feature value.
type featureRepository struct {
	*DB
	logger *logger.Logger
}

func NewFeatureRepository(db *DB, logger *logger.Logger) FeatureStorage {
	return &featureRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *featureRepository) GetFeatureValues(ctx context.Context, table string, entityKeys []string, features []string) (map[string]map[string]models.StoredValue, error) {
	log := logger.FromContext(ctx)

	result := make(map[string]map[string]models.StoredValue, len(entityKeys))
	if len(entityKeys) == 0 || len(features) == 0 {
		return result, nil
	}

	query, args, err := buildGetFeatureValuesQuery(f.builder, table, entityKeys, features)
	if err != nil {
		log.Err(err).Str("func", "featureRepository.GetFeatureValues").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "featureRepository.GetFeatureValues").
			Str("feature_table", table).
			Int("entity_keys", len(entityKeys)).
			Msg("failed to query feature values")
		return nil, f.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var entityKey, feature string
		var raw sql.NullString

		if err = rows.Scan(&entityKey, &feature, &raw); err != nil {
			log.Err(err).Str("func", "featureRepository.GetFeatureValues").Msg("failed to scan feature value row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		value, decodeErr := decodeStoredValue(raw)
		if decodeErr != nil {
			log.Err(decodeErr).
				Str("func", "featureRepository.GetFeatureValues").
				Str("entity_key", entityKey).
				Str("feature", feature).
				Msg("failed to decode stored value")
			return nil, decodeErr
		}

		if _, ok := result[entityKey]; !ok {
			result[entityKey] = make(map[string]models.StoredValue)
		}
		result[entityKey][feature] = value
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "featureRepository.GetFeatureValues").Msg("error occurred during rows iteration")
		return nil, f.wrapError(ErrScanningRows, err)
	}

	return result, nil
}

func (f *featureRepository) PutFeatureValues(ctx context.Context, rows []models.FeatureRow) error {
	log := logger.FromContext(ctx)

	if len(rows) == 0 {
		return nil
	}

	values := make([]any, len(rows))
	for i, row := range rows {
		encoded, err := encodeStoredValue(row.Value)
		if err != nil {
			return err
		}
		values[i] = encoded
	}

	query, args, err := buildPutFeatureValuesQuery(f.builder, rows, values, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "featureRepository.PutFeatureValues").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "featureRepository.PutFeatureValues").Msg("failed to begin transaction")
		return f.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "featureRepository.PutFeatureValues").Int("rows", len(rows)).Msg("failed to upsert feature values")
		return f.wrapError(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "featureRepository.PutFeatureValues").Msg("failed to commit transaction")
		return f.wrapError(ErrCommitingTransaction, err)
	}

	return nil
}

func encodeStoredValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	return string(b), nil
}

func decodeStoredValue(raw sql.NullString) (models.StoredValue, error) {
	if !raw.Valid {
		return models.StoredValue{}, nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw.String), &v); err != nil {
		return models.StoredValue{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	return models.StoredValue{Value: v}, nil
}
