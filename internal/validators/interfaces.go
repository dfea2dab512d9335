// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators gate-checks decoded serving requests before they reach
// the storage backend.
//
// Core concepts:
//   - Request checks: ValidateOnlineRequest, ValidateOnlineRequestV2,
//     ValidateBatchRequest and ValidateFeatureReference. They are pure,
//     perform no I/O and may be called concurrently.
//   - ValidationError: the single error type every check returns. Its Kind
//     tells the transport layer which check failed.
//   - Validator: generic interface used by services so the checks can be
//     injected and replaced in tests. Supports optional field-level scoping.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
