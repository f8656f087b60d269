package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"builder-generator/internal/config"
	"builder-generator/internal/gen"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Dump the encoded builder plans for debugging",
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

		for _, p := range res.Plans {
			spew.Dump(p)
		}

		return nil
	},
}
