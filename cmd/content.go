package cmd

import (
	"fmt"
	"os"

	"github.com/patenteapp/patente/internal/content"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Export or validate study content",
}

var contentExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the active catalog as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		w := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer f.Close()
			w = f
		}
		return content.Export(w, catalog.Catalog())
	},
}

var contentImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a catalog file for use via PATENTE_CONTENT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()

		c, err := content.Import(f)
		if err != nil {
			return err
		}

		fmt.Printf("Catalog OK: %d sections, %d lessons, %d signs, %d questions, %d glossary entries\n",
			len(c.Sections), len(c.Lessons), len(c.Signs), len(c.Questions), len(c.Glossary))
		fmt.Printf("Use it with: PATENTE_CONTENT=%s patente\n", args[0])
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentExportCmd)
	contentCmd.AddCommand(contentImportCmd)
}
