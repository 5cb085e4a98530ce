package cmd

import (
	"github.com/spf13/cobra"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Jump straight into a mock exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}
