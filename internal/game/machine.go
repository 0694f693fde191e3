// Package game implements the word-guessing state machine: row-by-row input
// accumulation, submission validation, win/loss detection and keyboard hints.
//
// A Machine is owned by a single caller and is not safe for concurrent use.
// Every operation completes synchronously.
package game

import (
	"errors"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// Validation failures reported by Submit. They never change the board.
var (
	ErrIncompleteRow   = errors.New("game: row is not complete")
	ErrNotInVocabulary = errors.New("game: word is not in the vocabulary")
)

// Lexicon answers whether a word may be guessed.
type Lexicon interface {
	Contains(word string) bool
}

// SubmitOutcome describes what Submit did.
type SubmitOutcome struct {
	Applied bool        // The guess was evaluated and stored
	Guess   string      // Lower-case word of the submitted row
	Result  core.Result // Feedback, valid when Applied
	Status  Status      // Status after the call
	Err     error       // ErrIncompleteRow or ErrNotInVocabulary
}

// Machine is one game session: a fixed answer and the board being filled.
type Machine struct {
	answer   string
	words    Lexicon
	messages MessagePicker

	board   Board
	cursor  Cursor
	hints   core.KeyHints
	status  Status
	signals Signals
}

// Option configures a Machine.
type Option func(*Machine)

// WithMessages sets the picker used for win notices.
func WithMessages(p MessagePicker) Option {
	return func(m *Machine) {
		m.messages = p
	}
}

// NewMachine creates a game for answer. Guesses are checked against words.
// The answer is lower-cased; callers are expected to pass a vocabulary word.
func NewMachine(answer string, words Lexicon, opts ...Option) *Machine {
	m := &Machine{
		answer:   strings.ToLower(answer),
		words:    words,
		messages: NewRandomMessages(nil, 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddCharacter places ch at the cursor and advances it.
// Returns false (no-op) when the game is over, the row is full or ch is not
// a letter.
func (m *Machine) AddCharacter(ch rune) bool {
	if m.status.Over() || m.cursor.Col >= Cols || !core.IsLetter(ch) {
		return false
	}

	pos := m.cursor
	m.board[pos.Row].Cells[pos.Col].Letter = unicode.ToUpper(ch)
	m.cursor.Col++
	m.signals.Pop = true
	m.signals.PopAt = pos
	return true
}

// DeleteCharacter removes the letter before the cursor.
// Returns false (no-op) when the game is over or the row is empty.
func (m *Machine) DeleteCharacter() bool {
	if m.status.Over() || m.cursor.Col == 0 {
		return false
	}

	m.cursor.Col--
	m.board[m.cursor.Row].Cells[m.cursor.Col] = Cell{}
	return true
}

// Submit evaluates the active row.
//
// An incomplete row or a word outside the vocabulary raises a notice and the
// shake signal and leaves the board untouched. A valid guess stores its
// feedback, updates the hints and either ends the game or moves to the next
// row. Submit is a no-op once the game is over.
func (m *Machine) Submit() SubmitOutcome {
	if m.status.Over() {
		return SubmitOutcome{Status: m.status}
	}

	row := &m.board[m.cursor.Row]
	guess := row.Word()

	if m.cursor.Col < Cols {
		m.reject(NoticeIncompleteRow)
		return SubmitOutcome{Guess: guess, Status: m.status, Err: ErrIncompleteRow}
	}
	if m.words == nil || !m.words.Contains(guess) {
		m.reject(NoticeNotInVocabulary)
		return SubmitOutcome{Guess: guess, Status: m.status, Err: ErrNotInVocabulary}
	}

	res := core.Evaluate(guess, m.answer)
	for i := range row.Cells {
		row.Cells[i].Feedback = res[i]
	}
	row.Submitted = true
	m.hints.Update(guess, res)

	switch {
	case res.Solved():
		m.status = StatusWon
		m.signals.Notice = m.messages.Pick()
		m.signals.Celebrate = true
	case m.cursor.Row == Rows-1:
		m.status = StatusLost
		m.signals.Notice = strings.ToUpper(m.answer)
	default:
		m.cursor.Row++
		m.cursor.Col = 0
	}

	return SubmitOutcome{Applied: true, Guess: guess, Result: res, Status: m.status}
}

func (m *Machine) reject(notice string) {
	m.signals.Notice = notice
	m.signals.Shake = true
}

// Status returns the current game status.
func (m *Machine) Status() Status {
	return m.status
}

// Cursor returns the current cursor position.
func (m *Machine) Cursor() Cursor {
	return m.cursor
}

// Answer returns the secret word.
func (m *Machine) Answer() string {
	return m.answer
}

// Attempts returns the number of submitted rows.
func (m *Machine) Attempts() int {
	n := 0
	for _, r := range m.board {
		if r.Submitted {
			n++
		}
	}
	return n
}

// Signals returns the pending one-shot signals without clearing them.
func (m *Machine) Signals() Signals {
	return m.signals
}

// ConsumeSignals returns the pending signals and clears them.
func (m *Machine) ConsumeSignals() Signals {
	s := m.signals
	m.signals = Signals{}
	return s
}
