// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/MKhiriev/go-feature-serving/models"
)

// FeatureResolver looks feature values up in the online store and assembles
// them into per-row FieldValues. It is shared by the online endpoints and the
// batch export worker.
type FeatureResolver struct {
	featureStorage store.FeatureStorage

	logger *logger.Logger
}

func NewFeatureResolver(featureStorage store.FeatureStorage, logger *logger.Logger) *FeatureResolver {
	return &FeatureResolver{
		featureStorage: featureStorage,
		logger:         logger,
	}
}

// ResolveFlat parses flat "table:feature" references and resolves them like
// Resolve does.
func (r *FeatureResolver) ResolveFlat(ctx context.Context, features []models.FeatureReference, rows []models.EntityRow, includeEntities bool) ([]models.FieldValues, error) {
	refs, err := parseFlatReferences(features)
	if err != nil {
		return nil, err
	}
	return r.Resolve(ctx, refs, rows, includeEntities)
}

// Resolve returns one FieldValues per entity row, in row order. Feature values
// are keyed by the "table:feature" form of their reference. When
// includeEntities is set the row's entity fields are copied into the result
// with status PRESENT.
func (r *FeatureResolver) Resolve(ctx context.Context, refs []models.FeatureReferenceV2, rows []models.EntityRow, includeEntities bool) ([]models.FieldValues, error) {
	entityKeys := make([]string, len(rows))
	uniqueKeys := make([]string, 0, len(rows))
	seenKeys := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		key := row.EntityKey()
		entityKeys[i] = key
		if _, ok := seenKeys[key]; !ok {
			seenKeys[key] = struct{}{}
			uniqueKeys = append(uniqueKeys, key)
		}
	}

	result := make([]models.FieldValues, len(rows))
	for i, row := range rows {
		result[i] = models.NewFieldValues()
		if !includeEntities {
			continue
		}
		for name, value := range row.Fields {
			result[i].Fields[name] = value
			result[i].Statuses[name] = models.StatusPresent
		}
	}

	tables, featuresByTable := groupByTable(refs)
	for _, table := range tables {
		features := featuresByTable[table]

		values, err := r.featureStorage.GetFeatureValues(ctx, table, uniqueKeys, features)
		if err != nil {
			r.logger.Err(err).
				Str("func", "FeatureResolver.Resolve").
				Str("feature_table", table).
				Msg("error getting feature values")
			return nil, fmt.Errorf("%w: table %q: %w", ErrResolvingFeatures, table, err)
		}

		for i, key := range entityKeys {
			stored := values[key]
			for _, feature := range features {
				field := table + models.FeatureReferenceSeparator + feature

				value, ok := stored[feature]
				switch {
				case !ok:
					result[i].Fields[field] = nil
					result[i].Statuses[field] = models.StatusNotFound
				case value.Value == nil:
					result[i].Fields[field] = nil
					result[i].Statuses[field] = models.StatusNullValue
				default:
					result[i].Fields[field] = value.Value
					result[i].Statuses[field] = models.StatusPresent
				}
			}
		}
	}

	return result, nil
}

// groupByTable returns the distinct tables in first-seen order and, for each,
// its distinct feature names in first-seen order.
func groupByTable(refs []models.FeatureReferenceV2) ([]string, map[string][]string) {
	var tables []string
	byTable := make(map[string][]string)
	seen := make(map[models.FeatureReferenceV2]struct{}, len(refs))

	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}

		if _, ok := byTable[ref.FeatureTable]; !ok {
			tables = append(tables, ref.FeatureTable)
		}
		byTable[ref.FeatureTable] = append(byTable[ref.FeatureTable], ref.Name)
	}

	return tables, byTable
}
