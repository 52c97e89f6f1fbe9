package view

import (
	"strconv"
	"strings"
	"time"
)

// FilterAll is the sentinel filter value meaning "no constraint on this
// field".
const FilterAll = "All"

// Filter narrows items to those matching the free-text query and every
// structured field filter. It is pure and total: it never reorders, never
// mutates and never fails — records are only removed, preserving input
// order.
//
// The query is matched case-insensitively as a substring against the
// schema's searchable fields. An empty or whitespace-only query matches
// everything. Field filters are equality checks combined with AND; the
// FilterAll sentinel means the field is unconstrained. A record missing a
// field does not match any constraint on that field.
func Filter[T any](items []T, query string, filters map[string]string, schema Schema[T]) []T {
	query = strings.ToLower(strings.TrimSpace(query))

	active := make([]Field[T], 0, len(filters))
	wanted := make([]string, 0, len(filters))
	for name, value := range filters {
		if value == FilterAll || value == "" {
			continue
		}
		f, ok := schema.Field(name)
		if !ok {
			// Unknown field name: nothing can match it.
			return []T{}
		}
		active = append(active, f)
		wanted = append(wanted, value)
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesQuery(item, query, schema) {
			continue
		}
		ok := true
		for i, f := range active {
			v := f.Value(item)
			if v == nil || fieldText(v) != wanted[i] {
				ok = false
				break
			}
		}
		if ok {
			result = append(result, item)
		}
	}
	return result
}

// matchesQuery reports whether any searchable field contains the
// already-lowercased query.
func matchesQuery[T any](item T, query string, schema Schema[T]) bool {
	if query == "" {
		return true
	}
	for _, f := range schema.Fields {
		if !f.Searchable {
			continue
		}
		v := f.Value(item)
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fieldText(v)), query) {
			return true
		}
	}
	return false
}

// fieldText renders a field value for equality and substring matching.
func fieldText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	default:
		return ""
	}
}
