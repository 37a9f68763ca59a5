// Package tui runs the quiz in a terminal with Bubble Tea, locally or over SSH.
// It owns the frame loop, input mapping, colored rendering and the answer review.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 60

// TickMsg is sent to trigger a frame. It carries the frame timestamp.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
