// Package tui provides the Bubble Tea front end for the runner.
// It owns the tick loop, maps keys to game actions and draws the session
// onto the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after a frame interval.
// Each tick handler schedules the next one, so the loop stops when a handler
// returns without calling tickCmd.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
