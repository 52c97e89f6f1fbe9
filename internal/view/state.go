package view

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize is the page size used when none has been chosen.
const DefaultPageSize = 10

// State holds the user's current query, filter, sort and page selections for
// one list view. It is a value type: the With* methods return a modified
// copy, applying the page-reset policy — any change to query, filters, sort
// or page size resets the page to 1; only an explicit page move keeps it.
type State struct {
	Query    string            `json:"query"`
	Filters  map[string]string `json:"filters"`
	SortKey  string            `json:"sort_key"`
	SortDir  Direction         `json:"sort_dir"`
	PageSize int               `json:"page_size"`
	Page     int               `json:"page"`
}

// DefaultState returns the documented defaults for a dataset with the given
// default sort.
func DefaultState(sortKey string, dir Direction) State {
	return State{
		Filters:  map[string]string{},
		SortKey:  sortKey,
		SortDir:  dir,
		PageSize: DefaultPageSize,
		Page:     1,
	}
}

// WithQuery returns the state with a new free-text query.
func (s State) WithQuery(q string) State {
	s.Query = q
	s.Page = 1
	return s
}

// WithFilter returns the state with one structured filter changed. The
// sentinel value FilterAll clears the constraint on that field.
func (s State) WithFilter(field, value string) State {
	filters := make(map[string]string, len(s.Filters)+1)
	for k, v := range s.Filters {
		filters[k] = v
	}
	if value == FilterAll {
		delete(filters, field)
	} else {
		filters[field] = value
	}
	s.Filters = filters
	s.Page = 1
	return s
}

// WithSort returns the state sorted by a new key and direction.
func (s State) WithSort(key string, dir Direction) State {
	s.SortKey = key
	s.SortDir = dir
	s.Page = 1
	return s
}

// WithPageSize returns the state with a new page size.
func (s State) WithPageSize(n int) State {
	if n < 1 {
		n = DefaultPageSize
	}
	s.PageSize = n
	s.Page = 1
	return s
}

// WithPage returns the state on a different page. The page is not clamped
// here; Paginate clamps against the processed collection's length.
func (s State) WithPage(n int) State {
	if n < 1 {
		n = 1
	}
	s.Page = n
	return s
}

// Normalize fills zero-valued fields with defaults. Used after restoring a
// persisted state.
func (s State) Normalize() State {
	if s.Filters == nil {
		s.Filters = map[string]string{}
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.SortDir != Asc && s.SortDir != Desc {
		s.SortDir = Asc
	}
	return s
}
