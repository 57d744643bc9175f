// Package model defines the aggregate state produced by a history analysis run.
package model

import "time"

// MonthStats holds the command tally for one calendar month.
type MonthStats struct {
	Count    int
	Commands map[string]int // base command -> count within the month
}

// YearStats is the single-owner accumulator for one analysis run. It is
// created once, mutated record-by-record by the aggregator, and read-only
// once report generation begins.
type YearStats struct {
	Year int

	TotalCommands int
	CommandCounts map[string]int // base command -> total; keys are the unique set

	Months   map[time.Month]*MonthStats
	Weekdays [7]int      // indexed by time.Weekday (Sunday = 0)
	Hours    [24]int     // hour of day 0-23
	Days     map[int]int // day of year 1-366

	// Earliest-timestamped admitted record. A zero FirstSeen means no
	// record has been admitted yet.
	FirstCommand string
	FirstSeen    time.Time

	// Records admitted by year but dropped because tokenization produced
	// no base command.
	Skipped int
}

// NewYearStats returns an empty accumulator for the given target year.
func NewYearStats(year int) *YearStats {
	return &YearStats{
		Year:          year,
		CommandCounts: make(map[string]int),
		Months:        make(map[time.Month]*MonthStats),
		Days:          make(map[int]int),
	}
}

// Month returns the bucket for a month, inserting an empty one on first use.
func (s *YearStats) Month(m time.Month) *MonthStats {
	ms, ok := s.Months[m]
	if !ok {
		ms = &MonthStats{Commands: make(map[string]int)}
		s.Months[m] = ms
	}
	return ms
}

// UniqueCommands returns the number of distinct base commands seen.
func (s *YearStats) UniqueCommands() int {
	return len(s.CommandCounts)
}

// Empty reports whether no records were admitted at all.
func (s *YearStats) Empty() bool {
	return s.TotalCommands == 0
}

// CommandCount pairs a base command with its total count, used by report
// selectors and rendering.
type CommandCount struct {
	Name  string
	Count int
}

// MonthCount pairs a month with its activity, including the month's own
// top commands.
type MonthCount struct {
	Month       time.Month
	Count       int
	TopCommands []CommandCount
}
