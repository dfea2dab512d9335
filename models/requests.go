// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OnlineRequest is the legacy synchronous lookup request. Its feature list
// is loosely typed: every entry is a flat name.
type OnlineRequest struct {
	Features   []FeatureReference `json:"features"`
	EntityRows []EntityRow        `json:"entity_rows"`
	Project    string             `json:"project,omitempty"`

	// OmitEntitiesInResponse drops the entity key fields from the returned rows.
	OmitEntitiesInResponse bool `json:"omit_entities_in_response,omitempty"`
}

// OnlineRequestV2 is the synchronous lookup request with table-qualified
// feature references.
type OnlineRequestV2 struct {
	Features   []FeatureReferenceV2 `json:"features"`
	EntityRows []EntityRow          `json:"entity_rows"`
	Project    string               `json:"project,omitempty"`
}

// BatchRequest asks the serving process to materialize feature values for
// every entity row of DatasetSource into an exported dataset.
type BatchRequest struct {
	Features      []FeatureReference `json:"features"`
	DatasetSource *DatasetSource     `json:"dataset_source,omitempty"`
}

// GetJobRequest asks for the state of a batch job.
type GetJobRequest struct {
	JobID string `json:"job_id"`
}

// GetServingInfoRequest asks for the serving process version. It has no fields.
type GetServingInfoRequest struct{}
