package validators

import (
	"context"

	"github.com/MKhiriev/go-feature-serving/models"
)

const (
	FieldEntityRows    = "entity_rows"
	FieldFeatures      = "features"
	FieldDatasetSource = "dataset_source"
)

// RequestValidator adapts the request checks to the Validator interface so
// services can depend on the interface and tests can replace it.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OnlineRequest:
		return v.validateOnlineRequest(value, fields...)
	case *models.OnlineRequest:
		if value == nil {
			return ErrNilRequest
		}
		return v.validateOnlineRequest(*value, fields...)

	case models.OnlineRequestV2:
		return v.validateOnlineRequestV2(value, fields...)
	case *models.OnlineRequestV2:
		if value == nil {
			return ErrNilRequest
		}
		return v.validateOnlineRequestV2(*value, fields...)

	case models.BatchRequest:
		return v.validateBatchRequest(value, fields...)
	case *models.BatchRequest:
		if value == nil {
			return ErrNilRequest
		}
		return v.validateBatchRequest(*value, fields...)

	case models.FeatureReferenceV2:
		return ValidateFeatureReference(value)
	case *models.FeatureReferenceV2:
		if value == nil {
			return ErrNilRequest
		}
		return ValidateFeatureReference(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateOnlineRequest(request models.OnlineRequest, fields ...string) error {
	if len(fields) == 0 {
		return ValidateOnlineRequest(request)
	}

	for _, f := range fields {
		switch f {
		case FieldEntityRows:
			if err := ValidateOnlineRequest(request); err != nil {
				return err
			}
		case FieldFeatures:
			// legacy feature lists are resolved by name downstream
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateOnlineRequestV2(request models.OnlineRequestV2, fields ...string) error {
	if len(fields) == 0 {
		return ValidateOnlineRequestV2(request)
	}

	for _, f := range fields {
		switch f {
		case FieldEntityRows:
			if len(request.EntityRows) == 0 {
				return newValidationError(KindEmptyEntityList)
			}
		case FieldFeatures:
			if err := validateFeatureReferences(request.Features); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateBatchRequest(request models.BatchRequest, fields ...string) error {
	if len(fields) == 0 {
		return ValidateBatchRequest(request)
	}

	for _, f := range fields {
		switch f {
		case FieldDatasetSource:
			if err := validateDatasetSource(request.DatasetSource); err != nil {
				return err
			}
		case FieldFeatures:
			if err := validateUniqueFeatureNames(request.Features); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
