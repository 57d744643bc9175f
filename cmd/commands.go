package cmd

import (
	"fmt"

	"histwrap/internal/cli"
	"histwrap/internal/config"
	"histwrap/internal/report"

	"github.com/spf13/cobra"
)

var flagTop int

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Most used commands",
	RunE:  runCommands,
}

func init() {
	commandsCmd.Flags().IntVarP(&flagTop, "top", "n", 0, "Number of commands to show (default: from config)")
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(_ *cobra.Command, _ []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}
	if stats.Empty() {
		fmt.Printf("\n  No commands recorded for %d.\n", stats.Year)
		return nil
	}

	n := flagTop
	if n <= 0 {
		cfg, _ := config.Load()
		n = cfg.General.TopCommands
	}

	top := report.TopCommands(stats, n)
	rows := make([][]string, 0, len(top))
	for i, c := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Name,
			cli.FormatNumber(int64(c.Count)),
			cli.FormatShare(c.Count, stats.TotalCommands),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MOST USED COMMANDS  %d", stats.Year)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Command", "Count", "Share"},
		Rows:    rows,
	}))

	return nil
}
