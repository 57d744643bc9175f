// Package tui provides the interactive Bubble Tea dashboard for histwrap.
package tui

import (
	"fmt"
	"strings"

	"histwrap/internal/cli"
	"histwrap/internal/history"
	"histwrap/internal/model"
	"histwrap/internal/pipeline"
	"histwrap/internal/report"
	"histwrap/internal/shell"
	"histwrap/internal/tui/components"
	"histwrap/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatsLoadedMsg is sent when the analysis pass finishes.
type StatsLoadedMsg struct {
	Stats    *model.YearStats
	Warnings int
	Err      error
}

// App is the root Bubble Tea model.
type App struct {
	// Data source
	kind shell.Kind
	path string
	year int
	topN int

	// Loaded data
	stats    *model.YearStats
	warnings int
	loaded   bool
	loadErr  error

	// UI state
	width     int
	height    int
	activeTab int
	spinner   spinner.Model
	cmdTable  table.Model
}

// NewApp builds the dashboard for one history file and target year.
func NewApp(kind shell.Kind, path string, year, topN int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		kind:    kind,
		path:    path,
		year:    year,
		topN:    topN,
		spinner: sp,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.load)
}

// load runs the whole parse → aggregate pass off the UI loop.
func (a App) load() tea.Msg {
	sc, err := history.Open(a.kind, a.path)
	if err != nil {
		return StatsLoadedMsg{Err: err}
	}
	defer sc.Close()

	warnings := 0
	stats, err := pipeline.Aggregate(sc, a.year, func(string, error) { warnings++ })
	return StatsLoadedMsg{Stats: stats, Warnings: warnings, Err: err}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case StatsLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.stats = msg.Stats
		a.warnings = msg.Warnings
		if a.loadErr == nil {
			a.cmdTable = a.buildCommandTable()
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}
		if len(msg.String()) == 1 {
			if idx := components.TabIdxByKey(rune(msg.String()[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		// Scroll keys go to the command table when it is visible.
		if a.loaded && a.activeTab == 1 {
			var cmd tea.Cmd
			a.cmdTable, cmd = a.cmdTable.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

func (a App) View() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  histwrap — %s %d", a.kind, a.year)))
	b.WriteString("\n\n")

	switch {
	case a.loadErr != nil:
		b.WriteString(errStyle.Render(fmt.Sprintf("  %v", a.loadErr)))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("  q to quit"))

	case !a.loaded:
		b.WriteString(fmt.Sprintf("  %s Reading %s...", a.spinner.View(), a.path))

	default:
		b.WriteString(components.RenderTabBar(a.activeTab))
		b.WriteString("\n\n")
		switch a.activeTab {
		case 0:
			b.WriteString(a.viewOverview())
		case 1:
			b.WriteString(a.cmdTable.View())
		case 2:
			b.WriteString(a.viewMonths())
		case 3:
			b.WriteString(a.viewActivity())
		}
		b.WriteString("\n")

		footer := "  tab/arrows switch · q quit"
		if a.warnings > 0 {
			footer += fmt.Sprintf(" · %d lines skipped", a.warnings)
		}
		b.WriteString(mutedStyle.Render(footer))
	}

	return b.String()
}

func (a App) viewOverview() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	s := a.stats
	if s.Empty() {
		return labelStyle.Render(fmt.Sprintf("  No commands recorded for %d.", s.Year))
	}

	var b strings.Builder
	line := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	line("Total commands", cli.FormatNumber(int64(s.TotalCommands)))
	line("Unique commands", cli.FormatNumber(int64(s.UniqueCommands())))
	line("Active days", cli.FormatNumber(int64(report.ActiveDays(s))))
	if !s.FirstSeen.IsZero() {
		line("First command", fmt.Sprintf("%s (%s)",
			cli.Truncate(s.FirstCommand, 40), s.FirstSeen.Format("Jan 2 15:04")))
	}
	if day, count, ok := report.BusiestWeekday(s); ok {
		line("Most active day", fmt.Sprintf("%s (%s)", day, cli.FormatNumber(int64(count))))
	}
	if hour, count, ok := report.BusiestHour(s); ok {
		line("Most active hour", fmt.Sprintf("%s (%s)", cli.FormatHour(hour), cli.FormatNumber(int64(count))))
	}

	return b.String()
}

func (a App) viewMonths() string {
	months := report.TopMonths(a.stats, 12)
	if len(months) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).
			Render(fmt.Sprintf("  No commands recorded for %d.", a.year))
	}

	rows := make([]components.BarRow, 0, len(months))
	for _, mc := range months {
		rows = append(rows, components.BarRow{Label: mc.Month.String()[:3], Value: mc.Count})
	}
	return components.BarChart(rows, a.chartWidth())
}

func (a App) viewActivity() string {
	t := theme.Active
	headingStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	hourRows := make([]components.BarRow, 0, 24)
	for hour, n := range a.stats.Hours {
		hourRows = append(hourRows, components.BarRow{Label: cli.FormatHour(hour), Value: n})
	}
	dayRows := make([]components.BarRow, 0, 7)
	for day, n := range a.stats.Weekdays {
		dayRows = append(dayRows, components.BarRow{Label: cli.WeekdayAbbrev(day), Value: n})
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("  By weekday"))
	b.WriteString("\n")
	b.WriteString(components.BarChart(dayRows, a.chartWidth()))
	b.WriteString("\n")
	b.WriteString(headingStyle.Render("  By hour"))
	b.WriteString("\n")
	b.WriteString(components.BarChart(hourRows, a.chartWidth()))
	return b.String()
}

func (a App) chartWidth() int {
	w := a.width - 20
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}

func (a App) buildCommandTable() table.Model {
	t := theme.Active

	top := report.TopCommands(a.stats, a.topN)
	rows := make([]table.Row, 0, len(top))
	for i, c := range top {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			c.Name,
			cli.FormatNumber(int64(c.Count)),
			cli.FormatShare(c.Count, a.stats.TotalCommands),
		})
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Command", Width: 28},
		{Title: "Count", Width: 10},
		{Title: "Share", Width: 8},
	}

	height := len(rows)
	if height > 15 {
		height = 15
	}
	if height < 1 {
		height = 1
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		Bold(true).
		BorderForeground(t.Border)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(false)
	tbl.SetStyles(styles)

	return tbl
}
