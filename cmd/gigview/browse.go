package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gigview/internal/config"
	"gigview/internal/ui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the marketplace collections interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(cfg.StateDBPath()), 0755); err != nil {
				return fmt.Errorf("create state directory: %w", err)
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			datasets := ui.Bindings(newClient(cfg), cfg.Timeout())
			browser := ui.NewBrowser(ctx, datasets, openStore(cfg))

			_, err = tea.NewProgram(browser, tea.WithAltScreen()).Run()
			return err
		},
	}
}
