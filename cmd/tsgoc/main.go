// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsgoc/internal/config"
	diag "tsgoc/internal/errors"
	"tsgoc/internal/fixture"
	"tsgoc/internal/pipeline"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	ConfigPath string
	Strict     bool
	Verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tsgoc",
		Short:         "tsgoc maps a TypeScript-shaped source module onto idiomatic Go",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a strategy YAML file (defaults built in)")
	cmd.PersistentFlags().BoolVar(&opts.Strict, "strict", false, "abort the pipeline on the first error-level diagnostic")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print the source-map mapping count to stderr when source maps are enabled")

	cmd.AddCommand(newBuildCommand(opts))
	return cmd
}

func newBuildCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <file>",
		Short: "Parse, lower, optimize, and emit Go source for one module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0])
		},
	}
}

func runBuild(opts *rootOptions, path string) error {
	startTime := time.Now()

	cfg, err := loadStrategy(opts)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	mod, err := fixture.ParseSource(path, string(source))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		color.Red("parsing failed after %s", formatDuration(time.Since(startTime)))
		return err
	}

	result, err := pipeline.New(cfg, nil).Run(context.Background(), mod)
	duration := formatDuration(time.Since(startTime))

	reporter := diag.NewReporter(path, string(source))
	hasErrors := false
	if result.Diagnostics != nil {
		for _, d := range result.Diagnostics.All() {
			fmt.Print(reporter.FormatDiagnostic(d))
			if d.Level == diag.Error {
				hasErrors = true
			}
		}
	}

	if err != nil {
		color.Red("compilation aborted after %s: %v", duration, err)
		return err
	}

	if hasErrors {
		color.Red("compilation failed after %s", duration)
		return fmt.Errorf("tsgoc: %s has error-level diagnostics", path)
	}

	fmt.Print(result.Emitted.Source)
	if result.Emitted.Runtime != "" {
		fmt.Println("\n// --- runtime helper companion file ---")
		fmt.Print(result.Emitted.Runtime)
	}
	if opts.Verbose && result.Emitted.SourceMap != nil {
		fmt.Fprintf(os.Stderr, "wrote %d source-map mappings for %s\n", len(result.Emitted.SourceMap.Mappings), path)
	}
	color.Green("Successfully processed %s in %s", path, duration)
	return nil
}

func loadStrategy(opts *rootOptions) (config.Strategy, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return config.Strategy{}, err
		}
		cfg = loaded
	}
	cfg.Strict = cfg.Strict || opts.Strict
	if err := cfg.Validate(); err != nil {
		return config.Strategy{}, err
	}
	return cfg, nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
