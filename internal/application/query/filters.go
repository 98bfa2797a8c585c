// internal/application/query/filters.go
package query

import "strings"

// ------------------------------------------------------------
// Filter sentinels
// ------------------------------------------------------------

// The catalog and inventory screens use the capitalized Spanish
// sentinel, the task screens use the uppercase one. Both mean
// "no filter". Matching is case-insensitive either way.
const (
	CategoryAll = "Todas"
	StatusAll   = "TODAS"
)

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, CategoryAll)
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
