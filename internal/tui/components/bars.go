package components

import (
	"fmt"
	"strings"

	"histwrap/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BarRow is one labeled entry in a horizontal bar chart.
type BarRow struct {
	Label string
	Value int
}

// BarChart renders labeled horizontal bars scaled to the largest value.
// Partial cells use eighth-block characters so small differences stay visible.
func BarChart(rows []BarRow, width int) string {
	t := theme.Active

	peak := 0
	for _, r := range rows {
		if r.Value > peak {
			peak = r.Value
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)

	blocks := []rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-5s", r.Label)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%7d ", r.Value)))

		if peak > 0 && r.Value > 0 {
			cells := float64(r.Value) / float64(peak) * float64(width)
			full := int(cells)
			bar := strings.Repeat("█", full)
			if frac := cells - float64(full); frac > 0 && full < width {
				idx := int(frac * 8)
				if idx > 7 {
					idx = 7
				}
				bar += string(blocks[idx])
			}
			b.WriteString(barStyle.Render(bar))
		}
		b.WriteString("\n")
	}

	return b.String()
}
