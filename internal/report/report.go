// Package report derives the ordered summary sections from final year stats.
// It only reads the accumulator; empty dimensions render as "no data" and
// never fail.
package report

import (
	"sort"
	"time"

	"histwrap/internal/model"
)

// TopCommands returns the n most-used base commands, sorted by count
// descending. Ties break by name ascending so output is deterministic.
func TopCommands(s *model.YearStats, n int) []model.CommandCount {
	return topOfMap(s.CommandCounts, n)
}

// TopMonths returns the n most active months by command count, each with its
// own top 3 commands. Ties break by month index ascending.
func TopMonths(s *model.YearStats, n int) []model.MonthCount {
	months := make([]model.MonthCount, 0, len(s.Months))
	for m, ms := range s.Months {
		months = append(months, model.MonthCount{
			Month:       m,
			Count:       ms.Count,
			TopCommands: topOfMap(ms.Commands, 3),
		})
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Count != months[j].Count {
			return months[i].Count > months[j].Count
		}
		return months[i].Month < months[j].Month
	})
	if len(months) > n {
		months = months[:n]
	}
	return months
}

// BusiestWeekday returns the weekday with the highest count. Ties break
// toward the lowest index (Sunday first). ok is false when no command was
// recorded on any weekday.
func BusiestWeekday(s *model.YearStats) (day time.Weekday, count int, ok bool) {
	for d, n := range s.Weekdays {
		if n > count {
			day, count = time.Weekday(d), n
		}
	}
	return day, count, count > 0
}

// BusiestHour returns the hour of day with the highest count, lowest hour
// winning ties. ok is false when no data exists.
func BusiestHour(s *model.YearStats) (hour, count int, ok bool) {
	for h, n := range s.Hours {
		if n > count {
			hour, count = h, n
		}
	}
	return hour, count, count > 0
}

// ActiveDays returns the number of distinct days of the year with at least
// one command.
func ActiveDays(s *model.YearStats) int {
	return len(s.Days)
}

func topOfMap(counts map[string]int, n int) []model.CommandCount {
	out := make([]model.CommandCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, model.CommandCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
