package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrNilRequest      = errors.New("nil request")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// CategoryInvalidArgument is the client-facing category shared by every
// request validation failure.
const CategoryInvalidArgument = "invalid argument"

// Kind enumerates the reasons a request can be rejected.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyEntityList
	KindMissingFeatureTableName
	KindMissingFeatureName
	KindMissingDatasetSource
	KindUnsupportedDatasetSource
	KindDuplicateFeatureName
)

var kindNames = map[Kind]string{
	KindEmptyEntityList:          "EMPTY_ENTITY_LIST",
	KindMissingFeatureTableName:  "MISSING_FEATURE_TABLE_NAME",
	KindMissingFeatureName:       "MISSING_FEATURE_NAME",
	KindMissingDatasetSource:     "MISSING_DATASET_SOURCE",
	KindUnsupportedDatasetSource: "UNSUPPORTED_DATASET_SOURCE",
	KindDuplicateFeatureName:     "DUPLICATE_FEATURE_NAME",
}

var kindMessages = map[Kind]string{
	KindEmptyEntityList:          "Entity value must be provided",
	KindMissingFeatureTableName:  "FeatureTable name must be provided in FeatureReference",
	KindMissingFeatureName:       "Feature name must be provided in FeatureReference",
	KindMissingDatasetSource:     "Dataset source must be provided",
	KindUnsupportedDatasetSource: "Dataset source must be provided: only file source supported",
	KindDuplicateFeatureName:     "Feature names must be unique within the request",
}

// String returns the stable machine-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// ValidationError is returned by every request check. Two ValidationErrors
// are considered equal by errors.Is when their kinds match, so the package
// sentinels below can be used as targets.
type ValidationError struct {
	Kind    Kind
	Message string
}

func newValidationError(kind Kind) *ValidationError {
	return &ValidationError{Kind: kind, Message: kindMessages[kind]}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Category is the same for all kinds: every rejection is a client input error.
func (e *ValidationError) Category() string {
	return CategoryInvalidArgument
}

var (
	ErrEmptyEntityList          = newValidationError(KindEmptyEntityList)
	ErrMissingFeatureTableName  = newValidationError(KindMissingFeatureTableName)
	ErrMissingFeatureName       = newValidationError(KindMissingFeatureName)
	ErrMissingDatasetSource     = newValidationError(KindMissingDatasetSource)
	ErrUnsupportedDatasetSource = newValidationError(KindUnsupportedDatasetSource)
	ErrDuplicateFeatureName     = newValidationError(KindDuplicateFeatureName)
)

// KindOf returns the kind of the first ValidationError in err's chain.
func KindOf(err error) (Kind, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind, true
	}
	return KindUnknown, false
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	_, ok := KindOf(err)
	return ok
}
