// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"github.com/MKhiriev/go-feature-serving/models"
)

// ValidateOnlineRequest checks a legacy online request. Only the entity rows
// are inspected; features are resolved later by name.
func ValidateOnlineRequest(request models.OnlineRequest) error {
	if len(request.EntityRows) == 0 {
		return newValidationError(KindEmptyEntityList)
	}
	return nil
}

// ValidateOnlineRequestV2 checks the entity rows first and then every
// feature reference in list order. The first violation is returned.
func ValidateOnlineRequestV2(request models.OnlineRequestV2) error {
	if len(request.EntityRows) == 0 {
		return newValidationError(KindEmptyEntityList)
	}
	return validateFeatureReferences(request.Features)
}

// ValidateBatchRequest checks, in order, that a dataset source is present,
// that it is a file source and that flat feature names are unique.
func ValidateBatchRequest(request models.BatchRequest) error {
	if err := validateDatasetSource(request.DatasetSource); err != nil {
		return err
	}
	return validateUniqueFeatureNames(request.Features)
}

// ValidateFeatureReference checks a single table-qualified feature reference.
func ValidateFeatureReference(ref models.FeatureReferenceV2) error {
	if ref.FeatureTable == "" {
		return newValidationError(KindMissingFeatureTableName)
	}
	if ref.Name == "" {
		return newValidationError(KindMissingFeatureName)
	}
	return nil
}

func validateFeatureReferences(refs []models.FeatureReferenceV2) error {
	for _, ref := range refs {
		if err := ValidateFeatureReference(ref); err != nil {
			return err
		}
	}
	return nil
}

func validateDatasetSource(source *models.DatasetSource) error {
	if source == nil {
		return newValidationError(KindMissingDatasetSource)
	}
	// a descriptor without any variant set is not a file source either
	if source.Kind() != models.DatasetSourceFile {
		return newValidationError(KindUnsupportedDatasetSource)
	}
	return nil
}

func validateUniqueFeatureNames(refs []models.FeatureReference) error {
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		seen[ref.Name] = struct{}{}
	}
	if len(seen) != len(refs) {
		return newValidationError(KindDuplicateFeatureName)
	}
	return nil
}
