package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gigview/internal/config"
	"gigview/internal/fetch"
	"gigview/internal/model"
	"gigview/internal/view"
)

// listFlags are the one-shot view selections for list and export.
type listFlags struct {
	query   string
	filters []string // field=value pairs
	sortKey string
	sortDir string
	page    int
	size    int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "free-text search")
	cmd.Flags().StringArrayVarP(&f.filters, "filter", "f", nil, "field=value filter (repeatable)")
	cmd.Flags().StringVar(&f.sortKey, "sort", "", "sort field (default per dataset)")
	cmd.Flags().StringVar(&f.sortDir, "dir", "", "sort direction: asc or desc")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.size, "size", view.DefaultPageSize, "page size")
}

// state builds a view state from the flags on top of the dataset defaults.
func (f *listFlags) state(ds model.Dataset) (view.State, error) {
	st := ds.DefaultState()
	if f.query != "" {
		st = st.WithQuery(f.query)
	}
	for _, pair := range f.filters {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return view.State{}, fmt.Errorf("invalid filter %q, want field=value", pair)
		}
		st = st.WithFilter(field, value)
	}
	key, dir := st.SortKey, st.SortDir
	if f.sortKey != "" {
		key = f.sortKey
	}
	if f.sortDir != "" {
		if f.sortDir != string(view.Asc) && f.sortDir != string(view.Desc) {
			return view.State{}, fmt.Errorf("invalid direction %q, want asc or desc", f.sortDir)
		}
		dir = view.Direction(f.sortDir)
	}
	st = st.WithSort(key, dir)
	st = st.WithPageSize(f.size)
	st = st.WithPage(f.page)
	return st, nil
}

func listCmd() *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list <dataset>",
		Short: "Fetch a dataset and print one page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ds, ok := model.DatasetByName(args[0])
			if !ok {
				return fmt.Errorf("unknown dataset %q (see 'gigview sources')", args[0])
			}
			st, err := flags.state(ds)
			if err != nil {
				return err
			}

			client := newClient(cfg)
			ctx := cmd.Context()
			switch ds.Name {
			case "users":
				return runList(ctx, cfg, client.Users, model.UserSchema, model.UserColumns, model.UserRow, st)
			case "reviews":
				return runList(ctx, cfg, client.Reviews, model.ReviewSchema, model.ReviewColumns, model.ReviewRow, st)
			case "transactions":
				return runList(ctx, cfg, client.Transactions, model.TransactionSchema, model.TransactionColumns, model.TransactionRow, st)
			case "disputes":
				return runList(ctx, cfg, client.Disputes, model.DisputeSchema, model.DisputeColumns, model.DisputeRow, st)
			}
			return fmt.Errorf("unknown dataset %q", ds.Name)
		},
	}
	flags.register(cmd)
	return cmd
}

// runList fetches one collection through the adapter, runs the pipeline and
// prints the requested page.
func runList[T any](ctx context.Context, cfg *config.Config, loader fetch.Loader[T], schema view.Schema[T], columns []string, row func(T) []string, st view.State) error {
	snap := <-fetch.NewAdapter(loader, cfg.Timeout()).Load(ctx)
	if snap.Err != nil {
		return snap.Err
	}

	result := view.Pipeline[T]{Schema: schema}.Run(snap.Items, st)

	if viper.GetBool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Items)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, item := range result.Items {
		cells := row(item)
		r := make(table.Row, len(cells))
		for i, c := range cells {
			r[i] = c
		}
		t.AppendRow(r)
	}
	t.Render()
	fmt.Printf("page %d/%d, %d records\n", result.CurrentPage, result.TotalPages, result.TotalCount)
	return nil
}
