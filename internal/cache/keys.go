package cache

import (
	"fmt"
	"strconv"
	"strings"
)

// NonePlaceholder marks an absent optional filter inside a cache key.
// Serializing absence explicitly keeps "week omitted" distinct from any
// real filter value, including the empty string.
const NonePlaceholder = "none"

// Key builds a deterministic cache key from a resource name and its filter
// values in declaration order. Identical logical queries always produce the
// identical key regardless of call site. Team codes are not normalized;
// callers pass canonical uppercase abbreviations.
func Key(resource string, filters ...interface{}) string {
	parts := make([]string, 0, len(filters)+1)
	parts = append(parts, resource)
	for _, f := range filters {
		parts = append(parts, segment(f))
	}
	return strings.Join(parts, ":")
}

// TeamsKey is the key for the unfiltered teams list.
func TeamsKey() string {
	return "teams:all"
}

// InventoryKey is the key for the data inventory document.
func InventoryKey() string {
	return "inventory:all"
}

func segment(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return NonePlaceholder
	case string:
		// An empty string is a real value, distinct from an absent filter.
		return t
	case int:
		return strconv.Itoa(t)
	case *int:
		if t == nil {
			return NonePlaceholder
		}
		return strconv.Itoa(*t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
