package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-feature-serving/internal/metrics"
	"github.com/MKhiriev/go-feature-serving/internal/validators"
	"github.com/MKhiriev/go-feature-serving/models"
)

// ServingMetricsService records the outcome and duration of every call to
// the wrapped ServingService.
type ServingMetricsService struct {
	inner     ServingService
	collector *metrics.Collector
}

func NewServingMetricsService(collector *metrics.Collector) ServingServiceWrapper {
	return &ServingMetricsService{collector: collector}
}

func (m *ServingMetricsService) GetOnlineFeatures(ctx context.Context, request models.OnlineRequest) (models.OnlineResponse, error) {
	start := time.Now()
	response, err := m.inner.GetOnlineFeatures(ctx, request)
	m.observe(metrics.OperationOnlineFeatures, start, err)
	return response, err
}

func (m *ServingMetricsService) GetOnlineFeaturesV2(ctx context.Context, request models.OnlineRequestV2) (models.OnlineResponse, error) {
	start := time.Now()
	response, err := m.inner.GetOnlineFeaturesV2(ctx, request)
	m.observe(metrics.OperationOnlineFeaturesV2, start, err)
	return response, err
}

func (m *ServingMetricsService) GetBatchFeatures(ctx context.Context, request models.BatchRequest) (models.Job, error) {
	start := time.Now()
	job, err := m.inner.GetBatchFeatures(ctx, request)
	m.observe(metrics.OperationBatchFeatures, start, err)
	if err == nil {
		m.collector.IncBatchJob(metrics.BatchJobCreated)
	}
	return job, err
}

func (m *ServingMetricsService) GetJob(ctx context.Context, id string) (models.Job, error) {
	start := time.Now()
	job, err := m.inner.GetJob(ctx, id)
	m.observe(metrics.OperationGetJob, start, err)
	return job, err
}

func (m *ServingMetricsService) Wrap(inner ServingService) ServingService {
	m.inner = inner
	return m
}

func (m *ServingMetricsService) observe(operation string, start time.Time, err error) {
	m.collector.ObserveRequest(operation, outcomeOf(err), time.Since(start))
}

// outcomeOf classifies a call result: client mistakes are "rejected",
// everything else that failed is "error".
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case validators.IsValidationError(err),
		errors.Is(err, ErrEmptyJobID),
		errors.Is(err, ErrJobNotFound),
		errors.Is(err, ErrUnqualifiedFeatureName):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
