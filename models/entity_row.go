package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// EntityRow is a single set of entity key values (e.g. driver_id=1001) for
// which feature values are requested.
type EntityRow struct {
	// Fields maps entity names to their key values.
	Fields map[string]any `json:"fields"`

	// Timestamp is the event time of the row. Zero means "now".
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// entityKeyEscaper escapes the separators of an entity key so that names and
// values containing them cannot collide with other rows.
var entityKeyEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `=`, `\=`)

// EntityKey returns the canonical storage key of the row: "name=value"
// pairs sorted by entity name and joined with ",". Backslash, "," and "="
// inside names and values are escaped with a backslash.
func (r EntityRow) EntityKey() string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		value := fmt.Sprintf("%v", r.Fields[name])
		parts = append(parts, entityKeyEscaper.Replace(name)+"="+entityKeyEscaper.Replace(value))
	}

	return strings.Join(parts, ",")
}
