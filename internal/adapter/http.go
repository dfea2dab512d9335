package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-feature-serving/internal/config"
	"github.com/MKhiriev/go-feature-serving/internal/logger"
	"github.com/MKhiriev/go-feature-serving/internal/utils"
	"github.com/MKhiriev/go-feature-serving/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathVersion          = "/api/version"
	pathOnlineFeatures   = "/api/v1/features/online"
	pathOnlineFeaturesV2 = "/api/v2/features/online"
	pathBatchFeatures    = "/api/v1/features/batch"
	pathJob              = "/api/v1/jobs/{jobID}"
)

type httpServingAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServingAdapter constructs an HTTP/REST implementation of
// [ServingAdapter]. The base URL comes from cfg.HTTPAddress; a missing scheme
// defaults to http.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPServingAdapter(cfg config.ClientAdapter, version string, logger *logger.Logger) (ServingAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if version != "" {
		client.SetHeader("User-Agent", "feature-serving-client/"+version)
	}

	return &httpServingAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServingAdapter) GetOnlineFeatures(ctx context.Context, req models.OnlineRequest) (models.OnlineResponse, error) {
	var resp models.OnlineResponse
	err := h.post(ctx, pathOnlineFeatures, req, &resp)
	return resp, err
}

func (h *httpServingAdapter) GetOnlineFeaturesV2(ctx context.Context, req models.OnlineRequestV2) (models.OnlineResponse, error) {
	var resp models.OnlineResponse
	err := h.post(ctx, pathOnlineFeaturesV2, req, &resp)
	return resp, err
}

func (h *httpServingAdapter) GetBatchFeatures(ctx context.Context, req models.BatchRequest) (models.Job, error) {
	var job models.Job
	err := h.post(ctx, pathBatchFeatures, req, &job)
	return job, err
}

func (h *httpServingAdapter) GetJob(ctx context.Context, jobID string) (models.Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return models.Job{}, ErrEmptyJobID
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("jobID", jobID).
		Get(pathJob)
	if err != nil {
		return models.Job{}, fmt.Errorf("get job request: %w", err)
	}

	var job models.Job
	if err = decodeResponse(resp, &job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (h *httpServingAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}

	var version models.AppVersionResponse
	if err = decodeResponse(resp, &version); err != nil {
		return "", err
	}
	return version.Version, nil
}

func (h *httpServingAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServingAdapter.post").Str("path", path).Msg("request failed")
		return fmt.Errorf("%s request: %w", path, err)
	}

	return decodeResponse(resp, result)
}

// decodeResponse maps error statuses and decodes a successful body keeping
// JSON numbers as json.Number.
func decodeResponse(resp *resty.Response, result any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := utils.DecodeJSON(bytes.NewReader(resp.Body()), result); err != nil {
		return fmt.Errorf("decode %s response: %w", resp.Request.URL, err)
	}
	return nil
}
