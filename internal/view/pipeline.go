package view

// Pipeline binds a schema to the three stages. Run recomputes the whole
// filter → sort → paginate chain from the raw collection and the current
// state on every call; nothing intermediate is cached, so a stale result is
// impossible.
type Pipeline[T any] struct {
	Schema Schema[T]
}

// Run derives the current page from the raw collection.
func (p Pipeline[T]) Run(items []T, st State) PagedResult[T] {
	st = st.Normalize()
	filtered := Filter(items, st.Query, st.Filters, p.Schema)
	sorted := Sort(filtered, st.SortKey, st.SortDir, p.Schema)
	return Paginate(sorted, st.Page, st.PageSize)
}
