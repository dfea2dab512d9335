package service

import (
	"context"

	"github.com/MKhiriev/go-feature-serving/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ServingService answers feature lookups and manages batch jobs.
type ServingService interface {
	GetOnlineFeatures(ctx context.Context, request models.OnlineRequest) (models.OnlineResponse, error)
	GetOnlineFeaturesV2(ctx context.Context, request models.OnlineRequestV2) (models.OnlineResponse, error)

	// GetBatchFeatures registers a batch job and returns it in PENDING state.
	// The export itself is done asynchronously by the batch export worker.
	GetBatchFeatures(ctx context.Context, request models.BatchRequest) (models.Job, error)
	GetJob(ctx context.Context, id string) (models.Job, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
