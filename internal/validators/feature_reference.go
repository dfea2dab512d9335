package validators

import (
	"fmt"

	"github.com/MKhiriev/go-feature-serving/models"
)

// ParseFeatureReference parses the "table:feature" string form of a feature
// reference. A string without a table part fails with ErrMissingFeatureTableName.
func ParseFeatureReference(s string) (models.FeatureReferenceV2, error) {
	table, name := models.SplitFeatureReference(s)
	ref := models.FeatureReferenceV2{FeatureTable: table, Name: name}

	if err := ValidateFeatureReference(ref); err != nil {
		return models.FeatureReferenceV2{}, err
	}

	return ref, nil
}

// ParseFeatureReferences parses every string and stops at the first invalid one.
func ParseFeatureReferences(refs []string) ([]models.FeatureReferenceV2, error) {
	parsed := make([]models.FeatureReferenceV2, 0, len(refs))
	for i, s := range refs {
		ref, err := ParseFeatureReference(s)
		if err != nil {
			return nil, fmt.Errorf("validation error at index %d: %w", i, err)
		}
		parsed = append(parsed, ref)
	}
	return parsed, nil
}
