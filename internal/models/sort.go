package models

import "strings"

// SortKey identifies a product ordering independently of the display language
type SortKey string

const (
	SortNone     SortKey = "none"
	SortNameAsc  SortKey = "name_asc"
	SortNameDesc SortKey = "name_desc"
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
)

// SortKeys lists the orderings offered by the sort control, in display order
var SortKeys = []SortKey{SortNone, SortNameAsc, SortNameDesc, SortNewest, SortOldest}

// legacySortLabels maps the display strings older clients send to their keys
var legacySortLabels = map[string]SortKey{
	"a to z":  SortNameAsc,
	"z to a":  SortNameDesc,
	"أ إلى ي": SortNameAsc,
	"ي إلى أ": SortNameDesc,
	"newest":  SortNewest,
	"oldest":  SortOldest,
	"az":      SortNameAsc,
	"za":      SortNameDesc,
}

// ParseSortKey accepts a sort key or one of the legacy display labels.
// Anything unrecognised falls back to SortNone.
func ParseSortKey(value string) SortKey {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return SortNone
	}
	for _, key := range SortKeys {
		if string(key) == normalized {
			return key
		}
	}
	if key, ok := legacySortLabels[normalized]; ok {
		return key
	}
	return SortNone
}

// IsValid reports whether the key is one of the known orderings
func (k SortKey) IsValid() bool {
	for _, key := range SortKeys {
		if key == k {
			return true
		}
	}
	return false
}
