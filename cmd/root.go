package cmd

import (
	"fmt"

	"github.com/patenteapp/patente/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patente",
	Short: "Italian driving-theory trainer for Arabic speakers",
	Long:  "Patente — terminal trainer for the Italian patente B theory exam, with Arabic study material.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATENTE_DB env var)")

	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDSN returns the data source using the --db flag (highest priority),
// then PATENTE_DB, then the in-memory default.
func resolveDSN(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	return store.ResolveDSN(p)
}

func openStore(dsn string) (*store.Store, error) {
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
