package client

import "errors"

var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrMissingRequestFile = errors.New("request file is required for this operation")
	ErrMissingJobID       = errors.New("job id is required")
	ErrJobFailed          = errors.New("batch job failed")
)
