package cmd

import (
	"fmt"
	"os"

	"github.com/patenteapp/patente/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded learner activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := resolveDSN(cmd)
		if err != nil {
			return fmt.Errorf("resolve data source: %w", err)
		}
		if dsn == store.MemoryDSN {
			fmt.Println("No database file configured; in-memory data vanishes on exit.")
			return nil
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete %s without --force", dsn)
		}

		// WAL sidecar files go with the database.
		for _, p := range []string{dsn, dsn + "-wal", dsn + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		fmt.Println("Removed", dsn)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the database file")
}
