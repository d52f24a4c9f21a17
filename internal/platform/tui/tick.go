// Package tui runs 2048 in Bubble Tea: the game screen, the menus around it
// and the SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// TickMsg drives a game step and redraw.
type TickMsg time.Time

// tickInterval converts a tick rate into a delay, clamped to the core bounds.
func tickInterval(tickRate int) time.Duration {
	tickRate = max(core.MinTickRate, min(tickRate, core.MaxTickRate))
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
