// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JobStatus is the lifecycle state of a batch [Job].
type JobStatus string

const (
	// JobStatusPending means the job is stored and waits for the export worker.
	JobStatusPending JobStatus = "PENDING"

	// JobStatusRunning means the export worker claimed the job.
	JobStatusRunning JobStatus = "RUNNING"

	// JobStatusDone means the job finished; Error is set when it failed.
	JobStatusDone JobStatus = "DONE"
)

// Job is an asynchronous batch export created by a [BatchRequest].
type Job struct {
	ID      string       `json:"id"`
	Status  JobStatus    `json:"status"`
	Request BatchRequest `json:"request"`

	// Error holds the failure reason of a finished job.
	Error string `json:"error,omitempty"`

	// FileURIs lists the exported files of a successfully finished job.
	FileURIs   []string   `json:"file_uris,omitempty"`
	DataFormat DataFormat `json:"data_format,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFinished reports whether the job reached its terminal state.
func (j Job) IsFinished() bool {
	return j.Status == JobStatusDone
}
