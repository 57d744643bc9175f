// Package pipeline drives the parse → filter → aggregate pass over a history file.
package pipeline

import (
	"fmt"

	"histwrap/internal/history"
	"histwrap/internal/model"
	"histwrap/internal/tokenize"
)

// WarnFunc receives non-fatal per-record problems. The run always continues.
type WarnFunc func(command string, err error)

// Aggregate consumes the scanner exactly once and folds every admitted record
// into a fresh YearStats. Records outside the target year are dropped before
// touching any counter; records whose tokenization yields no base command are
// counted as skipped. A single bad record never aborts the run — only a read
// error on the underlying file does.
func Aggregate(sc *history.Scanner, year int, warn WarnFunc) (*model.YearStats, error) {
	stats := model.NewYearStats(year)

	if warn != nil {
		sc.Warn = func(line string, err error) { warn(line, err) }
	}

	for sc.Next() {
		rec := sc.Record()
		if rec.Timestamp.Year() != year {
			continue
		}
		fold(stats, rec)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return stats, nil
}

// fold applies one admitted record to the accumulator.
func fold(s *model.YearStats, rec history.Record) {
	base := tokenize.Base(rec.Command)
	if base == "" {
		s.Skipped++
		return
	}

	s.TotalCommands++
	s.CommandCounts[base]++

	// "First" means earliest calendar time, not first in the stream.
	if s.FirstSeen.IsZero() || rec.Timestamp.Before(s.FirstSeen) {
		s.FirstCommand = rec.Command
		s.FirstSeen = rec.Timestamp
	}

	ms := s.Month(rec.Timestamp.Month())
	ms.Count++
	ms.Commands[base]++

	s.Weekdays[rec.Timestamp.Weekday()]++
	s.Hours[rec.Timestamp.Hour()]++
	s.Days[rec.Timestamp.YearDay()]++
}
