package models

// FieldStatus describes how a single value in [FieldValues] was resolved.
type FieldStatus string

const (
	// StatusPresent means the value was found in the online store.
	StatusPresent FieldStatus = "PRESENT"

	// StatusNullValue means the row exists but the stored value is null.
	StatusNullValue FieldStatus = "NULL_VALUE"

	// StatusNotFound means no value is stored for the entity and feature.
	StatusNotFound FieldStatus = "NOT_FOUND"
)

// FieldValues is the resolved result for one entity row.
type FieldValues struct {
	Fields   map[string]any         `json:"fields"`
	Statuses map[string]FieldStatus `json:"statuses"`
}

// NewFieldValues returns an empty FieldValues with allocated maps.
func NewFieldValues() FieldValues {
	return FieldValues{
		Fields:   make(map[string]any),
		Statuses: make(map[string]FieldStatus),
	}
}

// OnlineResponse is the answer to both online request shapes. FieldValues
// follows the order of the request's entity rows.
type OnlineResponse struct {
	FieldValues []FieldValues `json:"field_values"`
}

// StoredValue is a feature value as persisted in the online store.
// A nil Value is stored as NULL.
type StoredValue struct {
	Value any `json:"value"`
}

// FeatureRow is one feature value written to the online store.
type FeatureRow struct {
	FeatureTable string
	EntityKey    string
	Feature      string
	Value        any
}

// AppVersionResponse is returned by the version endpoint.
type AppVersionResponse struct {
	Version string `json:"version"`
}
