package cmd

import (
	"fmt"

	"histwrap/internal/cli"
	"histwrap/internal/report"

	"github.com/spf13/cobra"
)

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Activity by hour of day",
	RunE:  runHourly,
}

func init() {
	rootCmd.AddCommand(hourlyCmd)
}

func runHourly(_ *cobra.Command, _ []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ACTIVITY BY HOUR  %d", stats.Year)))
	fmt.Println()

	// Find max for bar scaling
	maxCount := 0
	for _, n := range stats.Hours {
		if n > maxCount {
			maxCount = n
		}
	}

	const maxBarWidth = 40
	for hour, n := range stats.Hours {
		fmt.Printf("  %s │ %6s │ %s\n",
			cli.FormatHour(hour),
			cli.FormatNumber(int64(n)),
			cli.RenderBar(n, maxCount, maxBarWidth))
	}

	if hour, count, ok := report.BusiestHour(stats); ok {
		fmt.Printf("\n  Peak: %s (%s commands)\n\n",
			cli.FormatHour(hour), cli.FormatNumber(int64(count)))
	} else {
		fmt.Printf("\n  No data for %d.\n\n", stats.Year)
	}

	return nil
}
