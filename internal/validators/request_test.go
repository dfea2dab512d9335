// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-feature-serving/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func oneRow() []models.EntityRow {
	return []models.EntityRow{{Fields: map[string]any{"driver_id": 1001}}}
}

func fileSource() *models.DatasetSource {
	return &models.DatasetSource{
		FileSource: &models.FileSource{
			FileURIs:   []string{"file:///tmp/entities.jsonl"},
			DataFormat: models.DataFormatJSONLines,
		},
	}
}

func flat(names ...string) []models.FeatureReference {
	refs := make([]models.FeatureReference, 0, len(names))
	for _, n := range names {
		refs = append(refs, models.FeatureReference{Name: n})
	}
	return refs
}

func requireKind(t *testing.T, err error, want Kind) {
	t.Helper()
	require.Error(t, err)
	got, ok := KindOf(err)
	require.True(t, ok, "expected ValidationError, got %T", err)
	assert.Equal(t, want, got)
}

// ---------------------------------------------------------------------------
// ValidateOnlineRequest
// ---------------------------------------------------------------------------

func TestValidateOnlineRequest(t *testing.T) {
	t.Run("no entity rows", func(t *testing.T) {
		err := ValidateOnlineRequest(models.OnlineRequest{})
		requireKind(t, err, KindEmptyEntityList)
		assert.ErrorIs(t, err, ErrEmptyEntityList)
	})

	t.Run("one row and no features", func(t *testing.T) {
		require.NoError(t, ValidateOnlineRequest(models.OnlineRequest{EntityRows: oneRow()}))
	})

	t.Run("features are not inspected", func(t *testing.T) {
		r := models.OnlineRequest{
			EntityRows: oneRow(),
			Features:   flat("", "", "no-table"),
		}
		require.NoError(t, ValidateOnlineRequest(r))
	})
}

// ---------------------------------------------------------------------------
// ValidateOnlineRequestV2
// ---------------------------------------------------------------------------

func TestValidateOnlineRequestV2(t *testing.T) {
	tests := []struct {
		name    string
		request models.OnlineRequestV2
		want    Kind
	}{
		{
			name:    "missing table",
			request: models.OnlineRequestV2{EntityRows: oneRow(), Features: []models.FeatureReferenceV2{{Name: "age"}}},
			want:    KindMissingFeatureTableName,
		},
		{
			name:    "missing name",
			request: models.OnlineRequestV2{EntityRows: oneRow(), Features: []models.FeatureReferenceV2{{FeatureTable: "driver"}}},
			want:    KindMissingFeatureName,
		},
		{
			name:    "both missing reports table first",
			request: models.OnlineRequestV2{EntityRows: oneRow(), Features: []models.FeatureReferenceV2{{}}},
			want:    KindMissingFeatureTableName,
		},
		{
			name: "empty rows detected before references",
			request: models.OnlineRequestV2{
				Features: []models.FeatureReferenceV2{{Name: "age"}},
			},
			want: KindEmptyEntityList,
		},
		{
			name: "first invalid reference wins",
			request: models.OnlineRequestV2{
				EntityRows: oneRow(),
				Features: []models.FeatureReferenceV2{
					{FeatureTable: "driver", Name: "age"},
					{FeatureTable: "driver"},
					{Name: "income"},
				},
			},
			want: KindMissingFeatureName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireKind(t, ValidateOnlineRequestV2(tt.request), tt.want)
		})
	}

	t.Run("valid", func(t *testing.T) {
		r := models.OnlineRequestV2{
			EntityRows: oneRow(),
			Features: []models.FeatureReferenceV2{
				{FeatureTable: "driver", Name: "age"},
				{FeatureTable: "driver", Name: "income"},
			},
		}
		require.NoError(t, ValidateOnlineRequestV2(r))
	})

	t.Run("no features is accepted", func(t *testing.T) {
		require.NoError(t, ValidateOnlineRequestV2(models.OnlineRequestV2{EntityRows: oneRow()}))
	})
}

// ---------------------------------------------------------------------------
// ValidateBatchRequest
// ---------------------------------------------------------------------------

func TestValidateBatchRequest(t *testing.T) {
	t.Run("no dataset source", func(t *testing.T) {
		err := ValidateBatchRequest(models.BatchRequest{Features: flat("age")})
		requireKind(t, err, KindMissingDatasetSource)
	})

	t.Run("bigquery source is unsupported", func(t *testing.T) {
		r := models.BatchRequest{
			Features:      flat("age"),
			DatasetSource: &models.DatasetSource{BigQuerySource: &models.BigQuerySource{TableRef: "p:d.t"}},
		}
		requireKind(t, ValidateBatchRequest(r), KindUnsupportedDatasetSource)
	})

	t.Run("descriptor without variant is unsupported", func(t *testing.T) {
		r := models.BatchRequest{Features: flat("age"), DatasetSource: &models.DatasetSource{}}
		requireKind(t, ValidateBatchRequest(r), KindUnsupportedDatasetSource)
	})

	t.Run("duplicate names", func(t *testing.T) {
		r := models.BatchRequest{Features: flat("age", "age"), DatasetSource: fileSource()}
		err := ValidateBatchRequest(r)
		requireKind(t, err, KindDuplicateFeatureName)
		assert.Equal(t, "Feature names must be unique within the request", err.Error())
	})

	t.Run("duplicate not adjacent", func(t *testing.T) {
		r := models.BatchRequest{Features: flat("age", "income", "rating", "age"), DatasetSource: fileSource()}
		requireKind(t, ValidateBatchRequest(r), KindDuplicateFeatureName)
	})

	t.Run("source checked before duplicates", func(t *testing.T) {
		r := models.BatchRequest{Features: flat("age", "age")}
		requireKind(t, ValidateBatchRequest(r), KindMissingDatasetSource)
	})

	t.Run("unique names", func(t *testing.T) {
		r := models.BatchRequest{Features: flat("age", "income"), DatasetSource: fileSource()}
		require.NoError(t, ValidateBatchRequest(r))
	})

	t.Run("empty feature list", func(t *testing.T) {
		require.NoError(t, ValidateBatchRequest(models.BatchRequest{DatasetSource: fileSource()}))
	})
}

// ---------------------------------------------------------------------------
// ValidateFeatureReference
// ---------------------------------------------------------------------------

func TestValidateFeatureReference(t *testing.T) {
	requireKind(t, ValidateFeatureReference(models.FeatureReferenceV2{Name: "age"}), KindMissingFeatureTableName)
	requireKind(t, ValidateFeatureReference(models.FeatureReferenceV2{FeatureTable: "driver"}), KindMissingFeatureName)
	require.NoError(t, ValidateFeatureReference(models.FeatureReferenceV2{FeatureTable: "driver", Name: "age"}))
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestValidationError(t *testing.T) {
	t.Run("wrapped error keeps kind", func(t *testing.T) {
		err := fmt.Errorf("online v2: %w", ValidateOnlineRequestV2(models.OnlineRequestV2{}))
		assert.ErrorIs(t, err, ErrEmptyEntityList)
		assert.NotErrorIs(t, err, ErrMissingFeatureName)
		requireKind(t, err, KindEmptyEntityList)
	})

	t.Run("kinds are distinguishable", func(t *testing.T) {
		sentinels := []error{
			ErrEmptyEntityList, ErrMissingFeatureTableName, ErrMissingFeatureName,
			ErrMissingDatasetSource, ErrUnsupportedDatasetSource, ErrDuplicateFeatureName,
		}
		for i, a := range sentinels {
			for j, b := range sentinels {
				assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
			}
		}
	})

	t.Run("category", func(t *testing.T) {
		var vErr *ValidationError
		require.ErrorAs(t, ValidateBatchRequest(models.BatchRequest{}), &vErr)
		assert.Equal(t, CategoryInvalidArgument, vErr.Category())
		assert.Equal(t, "MISSING_DATASET_SOURCE", vErr.Kind.String())
	})

	t.Run("KindOf on foreign error", func(t *testing.T) {
		kind, ok := KindOf(errors.New("boom"))
		assert.False(t, ok)
		assert.Equal(t, KindUnknown, kind)
		assert.False(t, IsValidationError(nil))
	})
}

// ---------------------------------------------------------------------------
// Purity
// ---------------------------------------------------------------------------

func TestValidate_Idempotent(t *testing.T) {
	r := models.BatchRequest{Features: flat("age", "age"), DatasetSource: fileSource()}

	first := ValidateBatchRequest(r)
	second := ValidateBatchRequest(r)

	assert.Equal(t, first, second)
	assert.Equal(t, flat("age", "age"), r.Features)
}

func TestValidate_Concurrent(t *testing.T) {
	valid := models.OnlineRequestV2{
		EntityRows: oneRow(),
		Features:   []models.FeatureReferenceV2{{FeatureTable: "driver", Name: "age"}},
	}
	invalid := models.OnlineRequestV2{
		EntityRows: oneRow(),
		Features:   []models.FeatureReferenceV2{{FeatureTable: "driver"}},
	}

	var wg sync.WaitGroup
	errs := make(chan error, 200)
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := ValidateOnlineRequestV2(valid); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			if err := ValidateOnlineRequestV2(invalid); !errors.Is(err, ErrMissingFeatureName) {
				errs <- fmt.Errorf("unexpected result: %v", err)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

// ---------------------------------------------------------------------------
// RequestValidator
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestRequestValidator_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointers", func(t *testing.T) {
		for _, obj := range []any{
			(*models.OnlineRequest)(nil),
			(*models.OnlineRequestV2)(nil),
			(*models.BatchRequest)(nil),
			(*models.FeatureReferenceV2)(nil),
		} {
			assert.NotPanics(t, func() {
				assert.ErrorIs(t, v.Validate(ctx, obj), ErrNilRequest)
			})
		}
	})

	t.Run("OnlineRequest value and pointer", func(t *testing.T) {
		r := models.OnlineRequest{}
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyEntityList)
		require.ErrorIs(t, v.Validate(ctx, &r), ErrEmptyEntityList)
	})

	t.Run("OnlineRequestV2 pointer", func(t *testing.T) {
		r := models.OnlineRequestV2{EntityRows: oneRow(), Features: []models.FeatureReferenceV2{{Name: "age"}}}
		require.ErrorIs(t, v.Validate(ctx, &r), ErrMissingFeatureTableName)
	})

	t.Run("BatchRequest value", func(t *testing.T) {
		r := models.BatchRequest{Features: flat("age", "income"), DatasetSource: fileSource()}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("FeatureReferenceV2", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.FeatureReferenceV2{FeatureTable: "driver"}), ErrMissingFeatureName)
	})
}

func TestRequestValidator_Fields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.OnlineRequest{EntityRows: oneRow()}, "bogus"), ErrUnknownField)
		require.ErrorIs(t, v.Validate(ctx, models.BatchRequest{}, FieldEntityRows), ErrUnknownField)
	})

	t.Run("v2 features only skips rows", func(t *testing.T) {
		r := models.OnlineRequestV2{Features: []models.FeatureReferenceV2{{FeatureTable: "driver", Name: "age"}}}
		require.NoError(t, v.Validate(ctx, r, FieldFeatures))
		require.ErrorIs(t, v.Validate(ctx, r, FieldEntityRows), ErrEmptyEntityList)
	})

	t.Run("batch features only skips source", func(t *testing.T) {
		r := models.BatchRequest{Features: flat("age", "age")}
		require.ErrorIs(t, v.Validate(ctx, r, FieldFeatures), ErrDuplicateFeatureName)
		require.ErrorIs(t, v.Validate(ctx, r, FieldDatasetSource), ErrMissingDatasetSource)
	})
}

// ---------------------------------------------------------------------------
// ParseFeatureReference
// ---------------------------------------------------------------------------

func TestParseFeatureReference(t *testing.T) {
	t.Run("table and feature", func(t *testing.T) {
		ref, err := ParseFeatureReference("driver_stats:trips_today")
		require.NoError(t, err)
		assert.Equal(t, models.FeatureReferenceV2{FeatureTable: "driver_stats", Name: "trips_today"}, ref)
		assert.Equal(t, "driver_stats:trips_today", ref.String())
	})

	t.Run("no separator", func(t *testing.T) {
		_, err := ParseFeatureReference("trips_today")
		require.ErrorIs(t, err, ErrMissingFeatureTableName)
	})

	t.Run("empty feature", func(t *testing.T) {
		_, err := ParseFeatureReference("driver_stats:")
		require.ErrorIs(t, err, ErrMissingFeatureName)
	})

	t.Run("list reports index", func(t *testing.T) {
		_, err := ParseFeatureReferences([]string{"a:b", ":c"})
		require.ErrorIs(t, err, ErrMissingFeatureTableName)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("list ok", func(t *testing.T) {
		refs, err := ParseFeatureReferences([]string{"a:b", "a:c"})
		require.NoError(t, err)
		assert.Len(t, refs, 2)
	})
}
