// Package view implements the collection view engine: pure filter, sort and
// pagination stages over an in-memory collection, driven by a declarative
// field schema and a per-view State. All stage functions are simple:
// []T in, []T out. No side effects.
package view

// Kind is the declared type of a record field. It selects the comparison
// rule used by Sort and how Filter renders the field for matching.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindDate
	KindBool
	KindEnum
)

// Field declares a single named field of a record type.
//
// Value returns the field's raw value for a record. The dynamic type must
// match the declared Kind: string for KindString/KindEnum, float64 for
// KindNumber, time.Time for KindDate, bool for KindBool. A nil return means
// the field is missing on that record; missing fields never match a filter
// and sort after all present values.
type Field[T any] struct {
	Name       string
	Kind       Kind
	Searchable bool     // included in free-text query matching
	Options    []string // KindEnum: values offered as structured filters
	Value      func(T) any
}

// Schema is the declarative field configuration for a record type: which
// fields exist, how they compare, which are searchable and which are
// filterable. One Schema is declared per dataset and shared by every view
// of it.
type Schema[T any] struct {
	Fields []Field[T]
}

// Field returns the declared field with the given name.
func (s Schema[T]) Field(name string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Searchable returns the names of all searchable fields, in declaration
// order.
func (s Schema[T]) Searchable() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Searchable {
			names = append(names, f.Name)
		}
	}
	return names
}

// Filterable returns all enum fields, the ones a view offers as structured
// filters.
func (s Schema[T]) Filterable() []Field[T] {
	var fields []Field[T]
	for _, f := range s.Fields {
		if f.Kind == KindEnum {
			fields = append(fields, f)
		}
	}
	return fields
}
