package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/validators"
	"github.com/MKhiriev/go-feature-serving/models"
)

// ServingValidationService rejects malformed requests before they reach the
// wrapped ServingService.
type ServingValidationService struct {
	inner     ServingService
	validator validators.Validator
	collector *metrics.Collector

	logger *logger.Logger
}

// NewServingValidationService returns a wrapper checking every request with
// the request validator. collector may be nil.
func NewServingValidationService(collector *metrics.Collector, logger *logger.Logger) ServingServiceWrapper {
	return &ServingValidationService{
		validator: validators.NewRequestValidator(),
		collector: collector,
		logger:    logger,
	}
}

func (v *ServingValidationService) GetOnlineFeatures(ctx context.Context, request models.OnlineRequest) (models.OnlineResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.OnlineResponse{}, v.reject(ctx, metrics.OperationOnlineFeatures, err)
	}

	return v.inner.GetOnlineFeatures(ctx, request)
}

func (v *ServingValidationService) GetOnlineFeaturesV2(ctx context.Context, request models.OnlineRequestV2) (models.OnlineResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.OnlineResponse{}, v.reject(ctx, metrics.OperationOnlineFeaturesV2, err)
	}

	return v.inner.GetOnlineFeaturesV2(ctx, request)
}

func (v *ServingValidationService) GetBatchFeatures(ctx context.Context, request models.BatchRequest) (models.Job, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Job{}, v.reject(ctx, metrics.OperationBatchFeatures, err)
	}

	return v.inner.GetBatchFeatures(ctx, request)
}

func (v *ServingValidationService) GetJob(ctx context.Context, id string) (models.Job, error) {
	if id == "" {
		return models.Job{}, v.reject(ctx, metrics.OperationGetJob, ErrEmptyJobID)
	}

	return v.inner.GetJob(ctx, id)
}

func (v *ServingValidationService) Wrap(inner ServingService) ServingService {
	v.inner = inner
	return v
}

// reject logs the failed check, counts it and wraps err so that errors.Is and
// validators.KindOf still see the original error.
func (v *ServingValidationService) reject(ctx context.Context, operation string, err error) error {
	kind, _ := validators.KindOf(err)

	logger.FromContextOr(ctx, v.logger).Warn().
		Err(err).
		Str("operation", operation).
		Str("kind", kind.String()).
		Msg("request rejected by validation")

	if v.collector != nil {
		v.collector.IncValidationRejection(operation, kind.String())
	}

	return fmt.Errorf("invalid %s request: %w", operation, err)
}
