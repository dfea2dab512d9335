// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feature-serving/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FeatureStorage is the online store: the latest value of every feature for
// every entity key.
type FeatureStorage interface {
	// GetFeatureValues returns the stored values of features for the given
	// entity keys of one feature table, keyed by entity key and then by
	// feature name. Missing entries are simply absent from the result.
	GetFeatureValues(ctx context.Context, table string, entityKeys []string, features []string) (map[string]map[string]models.StoredValue, error)

	// PutFeatureValues inserts or replaces feature values.
	PutFeatureValues(ctx context.Context, rows []models.FeatureRow) error
}

// JobStorage persists batch jobs.
type JobStorage interface {
	CreateJob(ctx context.Context, job models.Job) error
	GetJob(ctx context.Context, id string) (models.Job, error)
	ListJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]models.Job, error)
	UpdateJob(ctx context.Context, job models.Job) error

	// TransitionJob moves a job from one status to another only if it is
	// still in the from status. It reports whether the transition happened.
	TransitionJob(ctx context.Context, id string, from, to models.JobStatus) (bool, error)

	// DeleteFinishedBefore removes DONE jobs last updated before t and
	// returns how many were deleted.
	DeleteFinishedBefore(ctx context.Context, t time.Time) (int64, error)
}

// ExportStorage reads batch entity datasets and writes batch results.
type ExportStorage interface {
	// ReadEntityRows loads every entity row of the file source.
	ReadEntityRows(ctx context.Context, source models.FileSource) ([]models.EntityRow, error)

	// WriteResults writes the resolved rows of a job and returns the URI of
	// the written file.
	WriteResults(ctx context.Context, jobID string, format models.DataFormat, rows []models.FieldValues) (string, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
