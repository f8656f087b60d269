package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"builder-generator/internal/config"
	"builder-generator/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate builder files next to their records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := runContext()

		cfg, err := config.LoadFile(cfgPath)
		if err != nil {
			return err
		}

		res, err := gen.Run(ctx, cfg)
		if err != nil {
			return err
		}

		printDiagnostics(res.Diagnostics)

		// Records that failed were skipped whole; everything that
		// generated cleanly is still written.
		if err := gen.WriteFiles(res.Files); err != nil {
			return err
		}

		fmt.Printf("wrote %d files for %d records\n", len(res.Files), len(res.Plans))

		if res.Diagnostics.HasErrors() {
			return fmt.Errorf("%d records failed", len(res.Diagnostics.Errors))
		}

		return nil
	},
}
