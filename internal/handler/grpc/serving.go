package grpc

import (
	"context"

	"github.com/MKhiriev/go-feature-serving/models"
)

var _ ServingServer = (*Handler)(nil)

func (h *Handler) GetFeastServingInfo(ctx context.Context, _ *models.GetServingInfoRequest) (*models.AppVersionResponse, error) {
	return &models.AppVersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}

func (h *Handler) GetOnlineFeatures(ctx context.Context, request *models.OnlineRequest) (*models.OnlineResponse, error) {
	response, err := h.services.ServingService.GetOnlineFeatures(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &response, nil
}

func (h *Handler) GetOnlineFeaturesV2(ctx context.Context, request *models.OnlineRequestV2) (*models.OnlineResponse, error) {
	response, err := h.services.ServingService.GetOnlineFeaturesV2(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &response, nil
}

func (h *Handler) GetBatchFeatures(ctx context.Context, request *models.BatchRequest) (*models.Job, error) {
	job, err := h.services.ServingService.GetBatchFeatures(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &job, nil
}

func (h *Handler) GetJob(ctx context.Context, request *models.GetJobRequest) (*models.Job, error) {
	job, err := h.services.ServingService.GetJob(ctx, request.JobID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &job, nil
}
