package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.input); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatShare(t *testing.T) {
	if got := FormatShare(1, 3); got != "33.3%" {
		t.Errorf("FormatShare(1,3) = %q, want 33.3%%", got)
	}
	if got := FormatShare(5, 0); got != "0.0%" {
		t.Errorf("FormatShare(5,0) = %q, want 0.0%% (guarded)", got)
	}
}

func TestFormatHour(t *testing.T) {
	if got := FormatHour(9); got != "09:00" {
		t.Errorf("FormatHour(9) = %q", got)
	}
	if got := FormatHour(23); got != "23:00" {
		t.Errorf("FormatHour(23) = %q", got)
	}
}

func TestWeekdayAbbrev(t *testing.T) {
	if got := WeekdayAbbrev(int(time.Sunday)); got != "Sun" {
		t.Errorf("WeekdayAbbrev(Sunday) = %q", got)
	}
	if got := WeekdayAbbrev(9); got != "???" {
		t.Errorf("WeekdayAbbrev(9) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a very long command line", 10); got != "a very ..." {
		t.Errorf("Truncate = %q", got)
	}
}
