package main

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"gigview/internal/model"
	"gigview/internal/view"
)

func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List datasets and their fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Dataset", "Namespace", "Default Sort", "Searchable", "Filters", "Sort Keys"})
			for _, ds := range model.Datasets {
				search, filters, keys := fieldSummary(ds.Name)
				t.AppendRow(table.Row{
					ds.Name, ds.Namespace,
					ds.DefaultSort + " " + string(ds.DefaultDir),
					search, filters, keys,
				})
			}
			t.Render()
			return nil
		},
	}
}

func fieldSummary(name string) (searchable, filters, keys string) {
	switch name {
	case "users":
		return summarize(model.UserSchema)
	case "reviews":
		return summarize(model.ReviewSchema)
	case "transactions":
		return summarize(model.TransactionSchema)
	case "disputes":
		return summarize(model.DisputeSchema)
	}
	return "", "", ""
}

func summarize[T any](schema view.Schema[T]) (searchable, filters, keys string) {
	var all, filterable []string
	for _, f := range schema.Fields {
		all = append(all, f.Name)
		if f.Kind == view.KindEnum {
			filterable = append(filterable, f.Name)
		}
	}
	return strings.Join(schema.Searchable(), ", "),
		strings.Join(filterable, ", "),
		strings.Join(all, ", ")
}
