package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyJobID  = errors.New("job ID must be provided")
	ErrJobNotFound = errors.New("job not found")

	// ErrUnqualifiedFeatureName is returned for flat feature names that carry
	// no "table:" prefix. It is a client error but not a validation kind.
	ErrUnqualifiedFeatureName = errors.New("feature name must be qualified as table:feature")

	ErrResolvingFeatures = errors.New("error resolving feature values")
	ErrCreatingJob       = errors.New("error creating batch job")
)
