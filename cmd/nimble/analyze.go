package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nimble/internal/diagfmt"
	"nimble/internal/driver"
	"nimble/internal/project"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Run semantic analysis over every .nim file in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("first-phase-only", false, "run only the scope/symbol phase")
	analyzeCmd.Flags().Bool("types", false, "print the inferred-type report per file")
	analyzeCmd.Flags().Bool("no-cache", false, "ignore and bypass the result cache")
	analyzeCmd.Flags().Int("workers", 0, "parallel analysis workers (0 = all CPUs)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	manifest, err := project.LoadDir(dir)
	if err != nil {
		return err
	}

	firstPhaseOnly, _ := cmd.Flags().GetBool("first-phase-only")
	showTypes, _ := cmd.Flags().GetBool("types")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	workers, _ := cmd.Flags().GetInt("workers")
	maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")
	if manifest.MaxDiagnostics > 0 && !cmd.Flags().Changed("max-diagnostics") {
		maxDiagnostics = manifest.MaxDiagnostics
	}
	if manifest.SourceDir != "" {
		dir = filepath.Join(dir, manifest.SourceDir)
	}

	opts := driver.Options{
		FirstPhaseOnly: firstPhaseOnly || manifest.FirstPhaseOnly,
		MaxDiagnostics: maxDiagnostics,
		Workers:        workers,
	}
	if manifest.Cache && !noCache {
		cache, err := driver.OpenDiskCache("nimble")
		if err == nil {
			opts.Cache = cache
		}
		// a cache that cannot be opened just means slower runs
	}

	results, fileSet, err := driver.AnalyzeDir(cmd.Context(), dir, opts)
	if err != nil {
		return err
	}

	fmtOpts := diagfmt.Options{Color: useColor(cmd)}
	hadErrors := false
	for _, res := range results {
		hadErrors = hadErrors || res.HadErrors
		if res.FromCache {
			for _, line := range res.Diagnostics {
				fmt.Println(line)
			}
		} else {
			diagfmt.Pretty(os.Stdout, res.Bag, fileSet, fmtOpts)
		}
		if showTypes && res.TypeReport != "" {
			fmt.Printf("%s:\n%s\n", res.Path, res.TypeReport)
		}
	}

	if hadErrors {
		os.Exit(1)
	}
	return nil
}
