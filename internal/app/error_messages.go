// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP and gRPC transports.
//
// All Msg* constants are human-readable message strings written into error
// responses when the underlying error must not leak to the caller.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the online or job store failed
	// with a transient error and the request may be retried.
	MsgStorageUnavailable = "storage is temporarily unavailable"

	// MsgInvalidGzipBody is returned when a request declares gzip content
	// encoding but its body cannot be decompressed.
	MsgInvalidGzipBody = "request body is not valid gzip"

	// MsgRequestTimedOut is written by the HTTP server when a request exceeds
	// the configured timeout.
	MsgRequestTimedOut = "request timed out"
)
