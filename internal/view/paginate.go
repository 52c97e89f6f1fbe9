package view

// PagedResult is one bounded page of a processed collection plus its paging
// metadata.
type PagedResult[T any] struct {
	Items       []T
	TotalCount  int
	TotalPages  int
	CurrentPage int
	PageSize    int
}

// Paginate slices items into the requested page. Out-of-range pages are
// silently clamped to [1, totalPages], never an error; an empty collection
// still has one (empty) page.
func Paginate[T any](items []T, page, pageSize int) PagedResult[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PagedResult[T]{
		Items:       items[start:end],
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}
