// gigview is a terminal client for the marketplace API: browse, filter,
// sort and export the user, review, wallet and dispute collections.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gigview/internal/api"
	"gigview/internal/config"
	"gigview/internal/logging"
	"gigview/internal/viewstate"
)

var rootCmd = &cobra.Command{
	Use:   "gigview",
	Short: "Terminal client for the gig marketplace",
	Long: `gigview browses the marketplace collections (users, reviews, wallet
transactions, disputes) from the terminal. Every list supports free-text
search, structured filters, stable sorting and pagination, and remembers
your selections per dataset across sessions.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initEnv)
	addPersistentFlags()

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(sourcesCmd())

	if err := logging.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: logging disabled:", err)
	}
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initEnv() {
	viper.SetEnvPrefix("GIGVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("api", "", "API base URL (default from config)")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// newClient builds the API client from config with flag/env overrides.
func newClient(cfg *config.Config) *api.Client {
	base := viper.GetString("api")
	if base == "" {
		base = cfg.API.BaseURL
	}
	return api.NewClient(base, &http.Client{Timeout: cfg.Timeout()})
}

// openStore opens the durable view-state store, degrading to in-memory for
// the session if the database cannot be opened.
func openStore(cfg *config.Config) viewstate.Store {
	s, err := viewstate.Open(cfg.StateDBPath())
	if err != nil {
		logging.Warn("view state storage unavailable, using memory", "err", err)
		return viewstate.NewMemory()
	}
	return s
}
