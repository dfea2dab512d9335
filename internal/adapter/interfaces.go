// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the feature serving API.
//
// [ServingAdapter] decouples callers such as cmd/client from the transport.
// The package ships an HTTP/REST implementation ([NewHTTPServingAdapter]).
//
// Error responses are mapped by mapHTTPError to an [*APIError] that unwraps to
// one of the sentinels in errors.go, so callers can use [errors.Is] for
// transport-agnostic handling (e.g. [ErrInvalidArgument] for a rejected
// request).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-feature-serving/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServingAdapter defines transport-agnostic communication with the feature
// serving API.
type ServingAdapter interface {
	// GetOnlineFeatures sends a legacy online request with flat
	// "table:feature" references.
	GetOnlineFeatures(ctx context.Context, req models.OnlineRequest) (models.OnlineResponse, error)

	// GetOnlineFeaturesV2 sends an online request with structured feature
	// references.
	GetOnlineFeaturesV2(ctx context.Context, req models.OnlineRequestV2) (models.OnlineResponse, error)

	// GetBatchFeatures submits a batch export and returns the created job.
	GetBatchFeatures(ctx context.Context, req models.BatchRequest) (models.Job, error)

	// GetJob returns the current state of a batch job.
	GetJob(ctx context.Context, jobID string) (models.Job, error)

	// GetVersion returns the version reported by the server.
	GetVersion(ctx context.Context) (string, error)
}
