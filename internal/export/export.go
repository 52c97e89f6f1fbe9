// Package export writes processed collections as CSV. One shared
// implementation replaces per-page string building.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write emits a header row followed by rows as RFC-4180 CSV.
func Write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// File writes CSV to a new file at path, replacing any existing file.
func File(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, header, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rows renders each item to a CSV row with the given row function.
func Rows[T any](items []T, row func(T) []string) [][]string {
	out := make([][]string, 0, len(items))
	for _, item := range items {
		out = append(out, row(item))
	}
	return out
}
