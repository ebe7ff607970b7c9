// Package tui provides the Bubble Tea front end for skyflap.
// It handles the terminal UI loop, input mapping, and scene rasterisation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// maxFrameGap caps the dt of a single frame after a stall (suspended
// terminal, slow redraw).
const maxFrameGap = 100 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks. The first tick
// has no predecessor and yields 0, which the game treats as an empty frame.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() || !now.After(last) {
		return 0
	}
	gap := now.Sub(last)
	if gap > maxFrameGap {
		gap = maxFrameGap
	}
	return gap.Seconds()
}
