package models

// Error codes carried in [ErrorBody.Code].
const (
	ErrorCodeInvalidArgument  = "INVALID_ARGUMENT"
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorCodeUnavailable      = "UNAVAILABLE"
	ErrorCodeInternal         = "INTERNAL"
)

// ErrorResponse is the JSON body of every failed HTTP request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	// Code is the transport-independent error category, one of the ErrorCode* constants.
	Code string `json:"code"`

	// Kind names the failed request check (e.g. "EMPTY_ENTITY_LIST"). It is
	// set only for validation failures.
	Kind string `json:"kind,omitempty"`

	Message string `json:"message"`
}
