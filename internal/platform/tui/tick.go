// Package tui provides the Bubble Tea integration for flappy.
// It owns the frame loop, maps keys and mouse clicks to session controls
// and draws the world into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// frameDuration returns the simulated time covered by one frame.
func frameDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
