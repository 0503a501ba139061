// Package tui provides the Bubble Tea integration for the frogger platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game model whose loop sent it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGenCounter atomic.Uint64

// nextTickGen returns a generation number for a new tick loop.
func nextTickGen() uint64 {
	return tickGenCounter.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
