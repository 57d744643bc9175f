package cmd

import (
	"fmt"

	"histwrap/internal/cli"
	"histwrap/internal/report"

	"github.com/spf13/cobra"
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "Activity by month, with each month's top commands",
	RunE:  runMonths,
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(_ *cobra.Command, _ []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}
	if stats.Empty() {
		fmt.Printf("\n  No commands recorded for %d.\n", stats.Year)
		return nil
	}

	months := report.TopMonths(stats, 12)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ACTIVITY BY MONTH  %d", stats.Year)))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	for _, mc := range months {
		rows = append(rows, []string{
			cli.MonthName(mc.Month),
			cli.FormatNumber(int64(mc.Count)),
			cli.FormatShare(mc.Count, stats.TotalCommands),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Commands", "Share"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Println(cli.RenderSection("Top commands per month"))
	for _, mc := range months {
		fmt.Printf("  %s\n", cli.MonthName(mc.Month))
		for _, c := range mc.TopCommands {
			fmt.Printf("    %-20s %s\n", c.Name, cli.FormatNumber(int64(c.Count)))
		}
	}
	fmt.Println()

	return nil
}
