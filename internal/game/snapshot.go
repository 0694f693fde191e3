package game

import "github.com/vovakirdan/tui-wordle/internal/core"

// Snapshot captures the complete observable game state for rendering and
// testing. It is a copy; changing it does not affect the Machine.
type Snapshot struct {
	Board   Board
	Cursor  Cursor
	Hints   core.KeyHints
	Status  Status
	Signals Signals
	Answer  string // Populated only once the game is over
}

// Snapshot returns the current game snapshot.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Board:   m.board,
		Cursor:  m.cursor,
		Hints:   m.hints,
		Status:  m.status,
		Signals: m.signals,
	}
	if m.status.Over() {
		s.Answer = m.answer
	}
	return s
}
