// Package tui provides the Bubble Tea presentation of the game: the terminal
// UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the pace of shake and pop animations.
const frameInterval = 60 * time.Millisecond

// FrameMsg advances running animations by one frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next animation frame.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// noticeExpiredMsg clears the notice it was scheduled for. Newer notices
// carry a higher id, so stale expiries are ignored.
type noticeExpiredMsg struct {
	id int
}

func noticeCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
