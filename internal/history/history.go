// Package history reads shell history files as a lazy stream of records.
package history

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"histwrap/internal/shell"
)

// Record is one parsed history entry: the raw command text and the best
// timestamp the file format provides.
type Record struct {
	Command   string
	Timestamp time.Time
}

// WarnFunc is called for lines that look like history entries but cannot be
// decoded (e.g. a malformed epoch field). The run continues past them.
type WarnFunc func(line string, err error)

// Scanner produces a lazy, finite, non-restartable sequence of records from
// one history file. It is consumed exactly once:
//
//	sc, err := history.Open(kind, path)
//	...
//	for sc.Next() {
//		r := sc.Record()
//	}
//	err = sc.Err()
type Scanner struct {
	f    *os.File
	buf  *bufio.Scanner
	kind shell.Kind
	rec  Record

	// Warn receives per-line decode errors. Nil means skip silently.
	Warn WarnFunc

	// Fallback timestamp for formats that store none (bash without
	// HISTTIMEFORMAT markers, fish entries without a when field).
	// Captured once at open so every fallback record shares it.
	now time.Time

	pendingEpoch time.Time // bash: epoch marker awaiting its command line
	fishCmd      string    // fish: cmd line awaiting its when line
	fishPending  bool
}

// Open opens the history file for the given shell. A missing or unreadable
// file is fatal for the run.
func Open(kind shell.Kind, path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %s", shell.ErrHistoryNotFound, kind, path)
	}

	buf := bufio.NewScanner(f)
	// History lines can be long (pasted scripts, one-liners); grow the
	// buffer well past the bufio default.
	buf.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Scanner{
		f:    f,
		buf:  buf,
		kind: kind,
		now:  time.Now(),
	}, nil
}

// Next advances to the next record. It returns false at end of input or on
// a read error (check Err).
func (s *Scanner) Next() bool {
	switch s.kind {
	case shell.Zsh:
		return s.nextZsh()
	case shell.Fish:
		return s.nextFish()
	default:
		return s.nextBash()
	}
}

// Record returns the record produced by the last successful Next.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error {
	return s.buf.Err()
}

// Close releases the underlying file.
func (s *Scanner) Close() error {
	return s.f.Close()
}

func (s *Scanner) warn(line string, err error) {
	if s.Warn != nil {
		s.Warn(line, err)
	}
}
