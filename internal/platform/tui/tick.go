// Package tui runs a registered game in the terminal with Bubble Tea.
// It maps keys to actions, drives the fixed-rate tick loop, forwards audio
// cues and records finished runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// holdTicks is how many ticks a movement key stays held after its last
// key event. Terminals report presses and auto-repeats, never releases.
func holdTicks(tickRate int) int {
	const window = 150 * time.Millisecond
	return max(1, int(window/tickInterval(tickRate)))
}
