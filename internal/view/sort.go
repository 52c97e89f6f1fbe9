package view

import (
	"sort"
	"strings"
	"time"
)

// Sort orders items by the named field. It is pure and stable: equal-key
// records keep their relative input order regardless of direction, because
// Desc negates the comparator rather than reversing the output.
//
// Comparison follows the field's declared Kind: strings case-insensitively,
// numbers numerically, dates by instant (zero/unparseable dates sort
// greatest, pushed to the end ascending), booleans false before true.
// Missing values sort greatest within their field. An unknown key is a
// no-op passthrough.
func Sort[T any](items []T, key string, dir Direction, schema Schema[T]) []T {
	field, ok := schema.Field(key)
	if !ok || len(items) == 0 {
		return items
	}

	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		c := compareField(field.Kind, field.Value(out[i]), field.Value(out[j]))
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

// compareField compares two raw field values of the same declared kind,
// returning -1, 0 or 1. Missing (nil) values compare greatest so they land
// at the end of an ascending sort.
func compareField(kind Kind, a, b any) int {
	if a == nil || b == nil {
		return missingCompare(a == nil, b == nil)
	}

	switch kind {
	case KindString, KindEnum:
		as, aok := a.(string)
		bs, bok := b.(string)
		if !aok || !bok {
			return missingCompare(!aok, !bok)
		}
		return strings.Compare(strings.ToLower(as), strings.ToLower(bs))

	case KindNumber:
		an, aok := a.(float64)
		bn, bok := b.(float64)
		if !aok || !bok {
			return missingCompare(!aok, !bok)
		}
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0

	case KindDate:
		at, aok := a.(time.Time)
		bt, bok := b.(time.Time)
		if !aok || !bok {
			return missingCompare(!aok, !bok)
		}
		// Zero times stand in for invalid dates and sort greatest.
		if at.IsZero() || bt.IsZero() {
			return missingCompare(at.IsZero(), bt.IsZero())
		}
		return at.Compare(bt)

	case KindBool:
		ab, aok := a.(bool)
		bb, bok := b.(bool)
		if !aok || !bok {
			return missingCompare(!aok, !bok)
		}
		switch {
		case !ab && bb:
			return -1
		case ab && !bb:
			return 1
		}
		return 0
	}
	return 0
}

// missingCompare orders missing values after present ones.
func missingCompare(aMissing, bMissing bool) int {
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return 1
	case bMissing:
		return -1
	}
	return 0
}
