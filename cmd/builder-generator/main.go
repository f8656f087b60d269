// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator is a Go codegen tool that:
//   - Loads Go packages (go/types) and finds structs with `builder` field tags
//   - Classifies fields as required, zero-default, or expression-default
//   - Encodes a per-field set/unset state machine into generic type parameters
//   - Generates compile-time checked builder APIs next to each record
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"builder-generator/internal/ctxlog"
	"builder-generator/internal/diagnostic"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "builder-generator",
	Short:         "Generate compile-time checked builders for annotated structs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "builder.yaml", "path to generator config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(genCmd, checkCmd, describeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runContext builds the root context carrying the CLI logger.
func runContext() context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return ctxlog.WithLogger(context.Background(), logger)
}

// printDiagnostics reports warnings and errors on stderr, infos only in
// verbose mode.
func printDiagnostics(d diagnostic.Diagnostics) {
	if verbose {
		for _, info := range d.Infos {
			fmt.Fprintf(os.Stderr, "info: %s\n", info)
		}
	}

	for _, w := range d.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	for _, e := range d.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
}
