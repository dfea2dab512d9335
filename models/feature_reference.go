// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// FeatureReferenceSeparator joins the feature table and feature name in the
// string form of a [FeatureReferenceV2] ("driver_stats:trips_today").
const FeatureReferenceSeparator = ":"

// FeatureReference is the flat feature identifier used by legacy online
// requests and batch requests.
//
// Name is the only component the serving layer relies on; for legacy online
// requests it usually holds the "table:feature" string form.
type FeatureReference struct {
	// Name identifies the feature (e.g. "trips_today" or "driver_stats:trips_today").
	Name string `json:"name"`

	// Project optionally scopes the feature to a project.
	Project string `json:"project,omitempty"`
}

// UnmarshalJSON accepts both the object form and a bare string, which is
// taken as the Name.
func (r *FeatureReference) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = FeatureReference{Name: name}
		return nil
	}

	type plain FeatureReference
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = FeatureReference(p)
	return nil
}

// FeatureReferenceV2 identifies a feature by the feature table it belongs to
// and its name inside that table.
type FeatureReferenceV2 struct {
	// FeatureTable is the name of the feature table (e.g. "driver_stats").
	FeatureTable string `json:"feature_table"`

	// Name is the feature name inside FeatureTable (e.g. "trips_today").
	Name string `json:"name"`
}

// String returns the "table:feature" form of the reference.
func (r FeatureReferenceV2) String() string {
	return r.FeatureTable + FeatureReferenceSeparator + r.Name
}

// SplitFeatureReference splits a "table:feature" string into its table and
// feature parts. A string without a separator is returned as a bare feature
// name with an empty table.
func SplitFeatureReference(s string) (table, name string) {
	table, name, found := strings.Cut(s, FeatureReferenceSeparator)
	if !found {
		return "", s
	}
	return table, name
}
