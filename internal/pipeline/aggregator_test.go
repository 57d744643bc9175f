package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"histwrap/internal/history"
	"histwrap/internal/shell"
)

// zshLine formats one extended-history entry at the given time.
func zshLine(ts time.Time, cmd string) string {
	return fmt.Sprintf(": %d:0;%s\n", ts.Unix(), cmd)
}

func openZsh(t *testing.T, content string) *history.Scanner {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".zsh_history")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	sc, err := history.Open(shell.Zsh, path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sc.Close() })
	return sc
}

func TestAggregate_CountsAndInvariants(t *testing.T) {
	jan := time.Date(2023, 1, 10, 9, 0, 0, 0, time.Local)
	content := zshLine(jan, "git status") +
		zshLine(jan.Add(time.Hour), "git commit -m 'x'") +
		zshLine(jan.Add(2*time.Hour), "ls -la") +
		zshLine(jan.Add(3*time.Hour), "git push")

	stats, err := Aggregate(openZsh(t, content), 2023, nil)
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalCommands != 4 {
		t.Errorf("TotalCommands = %d, want 4", stats.TotalCommands)
	}
	if stats.UniqueCommands() != 2 {
		t.Errorf("UniqueCommands = %d, want 2 (git, ls)", stats.UniqueCommands())
	}
	if stats.CommandCounts["git"] != 3 {
		t.Errorf("CommandCounts[git] = %d, want 3", stats.CommandCounts["git"])
	}

	// TotalCommands must equal the sum over every bucket dimension.
	sumCmds := 0
	for _, n := range stats.CommandCounts {
		sumCmds += n
	}
	if sumCmds != stats.TotalCommands {
		t.Errorf("sum(CommandCounts) = %d, want %d", sumCmds, stats.TotalCommands)
	}
	sumMonths, sumWeekdays, sumHours, sumDays := 0, 0, 0, 0
	for _, ms := range stats.Months {
		sumMonths += ms.Count
	}
	for _, n := range stats.Weekdays {
		sumWeekdays += n
	}
	for _, n := range stats.Hours {
		sumHours += n
	}
	for _, n := range stats.Days {
		sumDays += n
	}
	for name, sum := range map[string]int{
		"months": sumMonths, "weekdays": sumWeekdays, "hours": sumHours, "days": sumDays,
	} {
		if sum != stats.TotalCommands {
			t.Errorf("sum over %s = %d, want %d", name, sum, stats.TotalCommands)
		}
	}
}

func TestAggregate_YearFilter(t *testing.T) {
	in2022 := time.Date(2022, 6, 1, 12, 0, 0, 0, time.Local)
	in2023 := time.Date(2023, 6, 1, 12, 0, 0, 0, time.Local)
	content := zshLine(in2022, "old command") +
		zshLine(in2023, "new command") +
		zshLine(in2022.Add(time.Hour), "old again")

	stats, err := Aggregate(openZsh(t, content), 2023, nil)
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalCommands != 1 {
		t.Fatalf("TotalCommands = %d, want 1 (only the 2023 record)", stats.TotalCommands)
	}
	if _, ok := stats.CommandCounts["old"]; ok {
		t.Error("2022 record leaked into CommandCounts")
	}
	if len(stats.Months) != 1 {
		t.Errorf("Months has %d buckets, want 1", len(stats.Months))
	}
	if stats.FirstCommand != "new command" {
		t.Errorf("FirstCommand = %q, want %q", stats.FirstCommand, "new command")
	}
}

func TestAggregate_FirstCommandIsEarliest(t *testing.T) {
	// Stream order is deliberately non-chronological.
	t1 := time.Date(2023, 5, 1, 10, 0, 0, 0, time.Local)
	t2 := time.Date(2023, 2, 1, 10, 0, 0, 0, time.Local) // earliest
	t3 := time.Date(2023, 8, 1, 10, 0, 0, 0, time.Local)
	content := zshLine(t1, "middle") + zshLine(t2, "earliest") + zshLine(t3, "latest")

	stats, err := Aggregate(openZsh(t, content), 2023, nil)
	if err != nil {
		t.Fatal(err)
	}

	if stats.FirstCommand != "earliest" {
		t.Errorf("FirstCommand = %q, want %q", stats.FirstCommand, "earliest")
	}
	if !stats.FirstSeen.Equal(t2) {
		t.Errorf("FirstSeen = %v, want %v", stats.FirstSeen, t2)
	}
}

func TestAggregate_BadRecordDoesNotAbort(t *testing.T) {
	ts := time.Date(2023, 3, 1, 10, 0, 0, 0, time.Local)
	content := ": notanepoch:0;broken\n" + zshLine(ts, "good")

	var warnings int
	stats, err := Aggregate(openZsh(t, content), 2023, func(string, error) { warnings++ })
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalCommands != 1 {
		t.Errorf("TotalCommands = %d, want 1", stats.TotalCommands)
	}
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}
}

func TestAggregate_EmptyBaseCommandSkipped(t *testing.T) {
	ts := time.Date(2023, 3, 1, 10, 0, 0, 0, time.Local)
	// A lone quote tokenizes to nothing even in degraded mode.
	content := zshLine(ts, "'") + zshLine(ts.Add(time.Minute), "ls")

	stats, err := Aggregate(openZsh(t, content), 2023, nil)
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalCommands != 1 {
		t.Errorf("TotalCommands = %d, want 1", stats.TotalCommands)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
}
