// Package ui is the terminal hosting layer for the collection view engine:
// a bubbletea list browser that renders one dataset's current page and maps
// key presses to view-state changes.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gigview/internal/fetch"
	"gigview/internal/model"
	"gigview/internal/view"
)

// Page is one renderable page of any dataset: rows already formatted as
// strings, plus paging metadata.
type Page struct {
	Rows        [][]string
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// FilterOption is one structured filter a dataset offers.
type FilterOption struct {
	Field   string
	Options []string // not including the implicit "All"
}

// Dataset erases the record type so the browser can hold a mixed list of
// collections. Concrete bindings are built with Bind.
type Dataset interface {
	Title() string
	Namespace() string
	Columns() []string
	SortKeys() []string
	Filters() []FilterOption
	DefaultState() view.State

	// Fetch starts or restarts loading; the returned command resolves to a
	// loadedMsg once this load settles.
	Fetch(ctx context.Context) tea.Cmd
	Loading() bool
	Err() error

	// Page runs the pipeline over the loaded collection.
	Page(st view.State) Page
}

// loadedMsg signals that a dataset's fetch resolved (success or failure).
type loadedMsg struct {
	namespace string
}

type binding[T any] struct {
	meta     model.Dataset
	pipeline view.Pipeline[T]
	adapter  *fetch.Adapter[T]
	columns  []string
	row      func(T) []string
}

// Bind couples a record type's schema, loader and row renderer into a
// browsable Dataset.
func Bind[T any](meta model.Dataset, schema view.Schema[T], loader fetch.Loader[T], timeout time.Duration, columns []string, row func(T) []string) Dataset {
	return &binding[T]{
		meta:     meta,
		pipeline: view.Pipeline[T]{Schema: schema},
		adapter:  fetch.NewAdapter(loader, timeout),
		columns:  columns,
		row:      row,
	}
}

func (b *binding[T]) Title() string     { return b.meta.Title }
func (b *binding[T]) Namespace() string { return b.meta.Namespace }
func (b *binding[T]) Columns() []string { return b.columns }

func (b *binding[T]) DefaultState() view.State { return b.meta.DefaultState() }

func (b *binding[T]) SortKeys() []string {
	keys := make([]string, 0, len(b.pipeline.Schema.Fields))
	for _, f := range b.pipeline.Schema.Fields {
		keys = append(keys, f.Name)
	}
	return keys
}

func (b *binding[T]) Filters() []FilterOption {
	var opts []FilterOption
	for _, f := range b.pipeline.Schema.Filterable() {
		opts = append(opts, FilterOption{Field: f.Name, Options: f.Options})
	}
	return opts
}

func (b *binding[T]) Fetch(ctx context.Context) tea.Cmd {
	done := b.adapter.Load(ctx)
	ns := b.meta.Namespace
	return func() tea.Msg {
		<-done
		return loadedMsg{namespace: ns}
	}
}

func (b *binding[T]) Loading() bool { return b.adapter.Snapshot().Loading }
func (b *binding[T]) Err() error    { return b.adapter.Snapshot().Err }

func (b *binding[T]) Page(st view.State) Page {
	result := b.pipeline.Run(b.adapter.Snapshot().Items, st)
	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, b.row(item))
	}
	return Page{
		Rows:        rows,
		TotalCount:  result.TotalCount,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	}
}
