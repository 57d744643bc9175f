package report

import (
	"fmt"
	"io"

	"histwrap/internal/cli"
	"histwrap/internal/model"
)

// Write renders the full wrapped report to w. It never fails on valid stats:
// dimensions with no data print as "no data" instead of erroring.
func Write(w io.Writer, s *model.YearStats, topN int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("COMMAND LINE WRAPPED  %d", s.Year)))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total commands", cli.FormatNumber(int64(s.TotalCommands))},
			{"Unique commands", cli.FormatNumber(int64(s.UniqueCommands()))},
			{"Active days", cli.FormatNumber(int64(ActiveDays(s)))},
		},
	}))
	fmt.Fprintln(w)

	if s.Empty() {
		fmt.Fprintf(w, "  No commands recorded for %d.\n\n", s.Year)
		return
	}

	if !s.FirstSeen.IsZero() {
		fmt.Fprintln(w, cli.RenderSection("First command of the year"))
		fmt.Fprintf(w, "  %s  %s\n\n",
			cli.Truncate(s.FirstCommand, 60),
			cli.RenderMuted(s.FirstSeen.Format("Jan 2 15:04")))
	}

	top := TopCommands(s, topN)
	rows := make([][]string, 0, len(top))
	for i, c := range top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Name,
			cli.FormatNumber(int64(c.Count)),
			cli.FormatShare(c.Count, s.TotalCommands),
		})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Most Used Commands",
		Headers: []string{"#", "Command", "Count", "Share"},
		Rows:    rows,
	}))
	fmt.Fprintln(w)

	months := TopMonths(s, 3)
	if len(months) > 0 {
		fmt.Fprintln(w, cli.RenderSection("Most Active Months"))
		for _, mc := range months {
			fmt.Fprintf(w, "  %-9s  %s commands\n",
				cli.MonthName(mc.Month), cli.FormatNumber(int64(mc.Count)))
			for _, c := range mc.TopCommands {
				fmt.Fprintf(w, "    %-20s %s\n", c.Name, cli.FormatNumber(int64(c.Count)))
			}
		}
		fmt.Fprintln(w)
	}

	if day, count, ok := BusiestWeekday(s); ok {
		fmt.Fprintf(w, "  Most active day:  %s (%s commands)\n",
			day, cli.FormatNumber(int64(count)))
	} else {
		fmt.Fprintln(w, "  Most active day:  no data")
	}

	if hour, count, ok := BusiestHour(s); ok {
		fmt.Fprintf(w, "  Most active hour: %s (%s commands)\n",
			cli.FormatHour(hour), cli.FormatNumber(int64(count)))
	} else {
		fmt.Fprintln(w, "  Most active hour: no data")
	}
	fmt.Fprintln(w)
}
