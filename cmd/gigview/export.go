package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gigview/internal/api"
	"gigview/internal/config"
	"gigview/internal/export"
	"gigview/internal/fetch"
	"gigview/internal/model"
	"gigview/internal/view"
)

func exportCmd() *cobra.Command {
	var flags listFlags
	var out string
	cmd := &cobra.Command{
		Use:   "export <dataset>|all",
		Short: "Export a filtered, sorted dataset as CSV",
		Long: `Export writes the full filtered and sorted collection (not a single
page) as CSV. With 'all', every dataset is fetched concurrently and written
to one file per dataset in the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := newClient(cfg)

			if args[0] == "all" {
				return exportAll(cmd.Context(), cfg, client, out)
			}

			ds, ok := model.DatasetByName(args[0])
			if !ok {
				return fmt.Errorf("unknown dataset %q (see 'gigview sources')", args[0])
			}
			st, err := flags.state(ds)
			if err != nil {
				return err
			}
			return exportOne(cmd.Context(), cfg, client, ds, st, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (or directory for 'all'); default stdout")
	return cmd
}

func exportOne(ctx context.Context, cfg *config.Config, client *api.Client, ds model.Dataset, st view.State, out string) error {
	switch ds.Name {
	case "users":
		return runExport(ctx, cfg, client.Users, model.UserSchema, model.UserColumns, model.UserRow, st, out)
	case "reviews":
		return runExport(ctx, cfg, client.Reviews, model.ReviewSchema, model.ReviewColumns, model.ReviewRow, st, out)
	case "transactions":
		return runExport(ctx, cfg, client.Transactions, model.TransactionSchema, model.TransactionColumns, model.TransactionRow, st, out)
	case "disputes":
		return runExport(ctx, cfg, client.Disputes, model.DisputeSchema, model.DisputeColumns, model.DisputeRow, st, out)
	}
	return fmt.Errorf("unknown dataset %q", ds.Name)
}

// exportAll fetches every dataset concurrently and writes one CSV per
// dataset into dir.
func exportAll(ctx context.Context, cfg *config.Config, client *api.Client, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, ds := range model.Datasets {
		ds := ds
		g.Go(func() error {
			path := filepath.Join(dir, ds.Name+".csv")
			if err := exportOne(ctx, cfg, client, ds, ds.DefaultState(), path); err != nil {
				return fmt.Errorf("%s: %w", ds.Name, err)
			}
			fmt.Println("wrote", path)
			return nil
		})
	}
	return g.Wait()
}

// runExport fetches, filters and sorts a collection and writes every
// matching row.
func runExport[T any](ctx context.Context, cfg *config.Config, loader fetch.Loader[T], schema view.Schema[T], columns []string, row func(T) []string, st view.State, out string) error {
	snap := <-fetch.NewAdapter(loader, cfg.Timeout()).Load(ctx)
	if snap.Err != nil {
		return snap.Err
	}

	filtered := view.Filter(snap.Items, st.Query, st.Filters, schema)
	sorted := view.Sort(filtered, st.SortKey, st.SortDir, schema)
	rows := export.Rows(sorted, row)

	if out == "" {
		return export.Write(os.Stdout, columns, rows)
	}
	return export.File(out, columns, rows)
}
