package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"github.com/MKhiriev/go-feature-serving/internal/validators"
	"github.com/MKhiriev/go-feature-serving/models"
)

type servingService struct {
	resolver   *FeatureResolver
	jobStorage store.JobStorage

	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

func NewServingService(resolver *FeatureResolver, jobStorage store.JobStorage, logger *logger.Logger) ServingService {
	return &servingService{
		resolver:   resolver,
		jobStorage: jobStorage,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      utils.NewUUIDGenerator().Generate,
		logger:     logger,
	}
}

func (s *servingService) GetOnlineFeatures(ctx context.Context, request models.OnlineRequest) (models.OnlineResponse, error) {
	rows, err := s.resolver.ResolveFlat(ctx, request.Features, request.EntityRows, !request.OmitEntitiesInResponse)
	if err != nil {
		return models.OnlineResponse{}, err
	}

	return models.OnlineResponse{FieldValues: rows}, nil
}

func (s *servingService) GetOnlineFeaturesV2(ctx context.Context, request models.OnlineRequestV2) (models.OnlineResponse, error) {
	rows, err := s.resolver.Resolve(ctx, request.Features, request.EntityRows, true)
	if err != nil {
		return models.OnlineResponse{}, err
	}

	return models.OnlineResponse{FieldValues: rows}, nil
}

func (s *servingService) GetBatchFeatures(ctx context.Context, request models.BatchRequest) (models.Job, error) {
	// the export worker needs table-qualified names, so reject flat ones now
	// instead of failing the job later
	if _, err := parseFlatReferences(request.Features); err != nil {
		s.logger.Debug().Err(err).Str("func", "servingService.GetBatchFeatures").Msg("batch request rejected")
		return models.Job{}, err
	}

	now := s.now()
	job := models.Job{
		ID:         s.newID(),
		Status:     models.JobStatusPending,
		Request:    request,
		DataFormat: models.DataFormatJSONLines,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if source := request.DatasetSource; source != nil && source.FileSource != nil && source.FileSource.DataFormat != "" {
		job.DataFormat = source.FileSource.DataFormat
	}

	if err := s.jobStorage.CreateJob(ctx, job); err != nil {
		s.logger.Err(err).Str("func", "servingService.GetBatchFeatures").Str("job_id", job.ID).Msg("error creating job")
		return models.Job{}, fmt.Errorf("%w: %w", ErrCreatingJob, err)
	}

	s.logger.Info().Str("job_id", job.ID).Int("features", len(request.Features)).Msg("batch job created")
	return job, nil
}

func (s *servingService) GetJob(ctx context.Context, id string) (models.Job, error) {
	job, err := s.jobStorage.GetJob(ctx, id)
	if errors.Is(err, store.ErrJobNotFound) {
		return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	if err != nil {
		return models.Job{}, fmt.Errorf("error getting job %s: %w", id, err)
	}

	return job, nil
}

// parseFlatReferences splits "table:feature" names. The parse error is
// flattened into the message so no validation kind reaches the caller.
func parseFlatReferences(features []models.FeatureReference) ([]models.FeatureReferenceV2, error) {
	refs := make([]models.FeatureReferenceV2, 0, len(features))
	for i, feature := range features {
		ref, err := validators.ParseFeatureReference(feature.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d %q: %v", ErrUnqualifiedFeatureName, i, feature.Name, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
