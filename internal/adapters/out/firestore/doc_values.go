// internal/adapters/out/firestore/doc_values.go
package firestore

import (
	"strings"
	"time"
)

// Defaulted field readers shared by every mapper in this package.
// A Firestore document is schemaless: a key may be absent or carry a
// value of the wrong type. Mapping never fails — every reader
// substitutes its fixed default instead.

func docStr(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func docStrDefault(data map[string]any, key, def string) string {
	if s := docStr(data, key); s != "" {
		return s
	}
	return def
}

// docFloat accepts the numeric shapes Firestore hands back for a
// number field (float64 for doubles, int64 for integers).
func docFloat(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

func docInt(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// docTime returns nil for absent, mistyped, or zero timestamps;
// optional timestamps stay optional in the record.
func docTime(data map[string]any, key string) *time.Time {
	if v, ok := data[key].(time.Time); ok && !v.IsZero() {
		t := v.UTC()
		return &t
	}
	return nil
}
