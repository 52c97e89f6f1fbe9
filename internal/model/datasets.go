package model

import "gigview/internal/view"

// Dataset describes one browsable collection: its display name, the
// namespace its view state persists under, and its default sort. The
// namespace is distinct per (portal, dataset) pair so stored selections
// never cross-contaminate.
type Dataset struct {
	Name        string // CLI name, e.g. "users"
	Namespace   string // view-state namespace, e.g. "admin:users"
	Title       string
	DefaultSort string
	DefaultDir  view.Direction
}

// Datasets lists every browsable collection, in display order.
var Datasets = []Dataset{
	{Name: "users", Namespace: "admin:users", Title: "Users", DefaultSort: "joined", DefaultDir: view.Desc},
	{Name: "reviews", Namespace: "reviews", Title: "Reviews", DefaultSort: "created", DefaultDir: view.Desc},
	{Name: "transactions", Namespace: "wallet:transactions", Title: "Wallet", DefaultSort: "date", DefaultDir: view.Desc},
	{Name: "disputes", Namespace: "disputes", Title: "Disputes", DefaultSort: "updated", DefaultDir: view.Desc},
}

// DatasetByName returns the dataset with the given CLI name.
func DatasetByName(name string) (Dataset, bool) {
	for _, d := range Datasets {
		if d.Name == name {
			return d, true
		}
	}
	return Dataset{}, false
}

// DefaultState returns the dataset's initial view state.
func (d Dataset) DefaultState() view.State {
	return view.DefaultState(d.DefaultSort, d.DefaultDir)
}
