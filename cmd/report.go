package cmd

import (
	"os"

	"histwrap/internal/config"
	"histwrap/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full wrapped report (the default command)",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	report.Write(os.Stdout, stats, cfg.General.TopCommands)
	return nil
}
