package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"builder-generator/internal/config"
	"builder-generator/internal/gen"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate config, schemas, and plans without writing files",
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

		if res.Diagnostics.HasErrors() {
			return fmt.Errorf("check failed: %d errors", len(res.Diagnostics.Errors))
		}

		fmt.Printf("ok: %d records, %d files would be written\n", len(res.Plans), len(res.Files))

		return nil
	},
}
