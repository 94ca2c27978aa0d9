package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neurolink/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 codes).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorNeonBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorNeonTeal:   lipgloss.NewStyle().Foreground(lipgloss.Color("43")),
	core.ColorNeonCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorNeonPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorNeonPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorNeonRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
	core.ColorNeonOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorNeonYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorNeonGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

// helpStyle dims the bottom help line.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
