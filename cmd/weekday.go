package cmd

import (
	"fmt"

	"histwrap/internal/cli"
	"histwrap/internal/report"

	"github.com/spf13/cobra"
)

var weekdayCmd = &cobra.Command{
	Use:   "weekday",
	Short: "Activity by day of week",
	RunE:  runWeekday,
}

func init() {
	rootCmd.AddCommand(weekdayCmd)
}

func runWeekday(_ *cobra.Command, _ []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ACTIVITY BY WEEKDAY  %d", stats.Year)))
	fmt.Println()

	maxCount := 0
	for _, n := range stats.Weekdays {
		if n > maxCount {
			maxCount = n
		}
	}

	const maxBarWidth = 40
	for day, n := range stats.Weekdays {
		fmt.Printf("  %s │ %6s │ %s\n",
			cli.WeekdayAbbrev(day),
			cli.FormatNumber(int64(n)),
			cli.RenderBar(n, maxCount, maxBarWidth))
	}

	if day, count, ok := report.BusiestWeekday(stats); ok {
		fmt.Printf("\n  Most active: %s (%s commands)\n\n",
			day, cli.FormatNumber(int64(count)))
	} else {
		fmt.Printf("\n  No data for %d.\n\n", stats.Year)
	}

	return nil
}
