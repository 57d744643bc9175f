// Package cmd implements the histwrap CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"histwrap/internal/config"
	"histwrap/internal/history"
	"histwrap/internal/model"
	"histwrap/internal/pipeline"
	"histwrap/internal/shell"

	"github.com/spf13/cobra"
)

var (
	flagYear     int
	flagShell    string
	flagHistfile string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "histwrap",
	Short: "Shell history year in review",
	Long:  "Analyze your shell history: most-used commands, activity by month, weekday, and hour.",
	RunE:  runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", 0, "Calendar year to analyze (default: current year)")
	rootCmd.PersistentFlags().StringVarP(&flagShell, "shell", "s", "", "Shell history to analyze: bash, zsh, or fish")
	rootCmd.PersistentFlags().StringVar(&flagHistfile, "histfile", "", "Explicit history file path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress per-record warnings")
}

// targetYear resolves the --year flag, defaulting to the current year.
func targetYear() int {
	if flagYear != 0 {
		return flagYear
	}
	return time.Now().Year()
}

// resolveSource picks the shell and history file from flags and config.
// Any failure here is fatal: no partial report is attempted.
func resolveSource(cfg config.Config) (shell.Kind, string, error) {
	name := flagShell
	if name == "" {
		name = cfg.General.DefaultShell
	}
	kind, err := shell.Parse(name)
	if err != nil {
		return kind, "", err
	}

	path, err := shell.ResolvePath(kind, flagHistfile, cfg.HistoryOverride(kind.String()))
	if err != nil {
		return kind, "", err
	}
	return kind, path, nil
}

// loadStats is the shared data loading path used by all commands: open the
// history file, aggregate one pass, warn about bad records on stderr.
func loadStats() (*model.YearStats, error) {
	cfg, _ := config.Load()

	kind, path, err := resolveSource(cfg)
	if err != nil {
		return nil, err
	}

	sc, err := history.Open(kind, path)
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	warn := func(command string, err error) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "  warning: skipping %q: %v\n", command, err)
	}

	return pipeline.Aggregate(sc, targetYear(), warn)
}
