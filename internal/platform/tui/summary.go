package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neurolink/internal/storage"
)

// maxSummaryRuns caps the rows printed after a session.
const maxSummaryRuns = 10

// RenderSessionSummary formats the session's best runs as a table, followed
// by the totals in stats when given. Returns an empty string when no run finished.
func RenderSessionSummary(title string, runs []storage.Run, stats *storage.SessionStats) string {
	if len(runs) == 0 {
		return ""
	}
	if len(runs) > maxSummaryRuns {
		runs = runs[:maxSummaryRuns]
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "Ended", Width: 10},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			r.CreatedAt.Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No cursor highlight outside an interactive view.
	s.Selected = s.Cell
	t.SetStyles(s)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(title) + " - SESSION RUNS"))
	b.WriteString("\n\n")
	b.WriteString(t.View())
	b.WriteString("\n")
	if stats != nil {
		fmt.Fprintf(&b, "%d runs  best %d  average %.0f  max level %d\n",
			stats.Runs, stats.Best, stats.AvgScore, stats.MaxLevel)
	}
	return b.String()
}
