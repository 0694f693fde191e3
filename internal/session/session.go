// Package session owns everything one player needs for a run of games: the
// vocabulary, the answer picker and the current game state machine.
//
// It replaces process-wide caches with an explicit object that is created at
// startup and passed to whichever presentation drives it. A Session is not
// safe for concurrent use; the presentation's event loop is its only caller.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/vocab"
)

// ErrNoProvider is returned by New when Options has no vocabulary provider.
var ErrNoProvider = errors.New("session: vocabulary provider is required")

// Options configures a Session.
type Options struct {
	Provider    vocab.Provider // Required
	Picker      vocab.Picker   // Defaults to a time-seeded RandomPicker
	WinMessages []string       // Defaults to game.DefaultWinMessages
	Seed        int64          // Seed for win message selection
	Logger      *log.Logger    // Defaults to a discarding logger
}

// Session is one player's sequence of games.
type Session struct {
	id       string
	provider vocab.Provider
	picker   vocab.Picker
	messages game.MessagePicker
	logger   *log.Logger

	words   *vocab.Vocabulary
	machine *game.Machine
	games   int
}

// New loads the vocabulary, picks an answer and starts the first game.
// Any failure here is a startup failure and no session is returned.
func New(opts Options) (*Session, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Picker == nil {
		opts.Picker = vocab.NewRandomPicker(opts.Seed)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	s := &Session{
		id:       id,
		provider: opts.Provider,
		picker:   opts.Picker,
		messages: game.NewRandomMessages(opts.WinMessages, opts.Seed),
		logger:   opts.Logger.With("session", id),
	}

	words, err := s.provider.Load()
	if err != nil {
		return nil, fmt.Errorf("session: loading vocabulary: %w", err)
	}
	if err := s.newGame(words); err != nil {
		return nil, err
	}
	return s, nil
}

// newGame picks an answer from words and replaces the state machine. On
// error the session is left untouched.
func (s *Session) newGame(words *vocab.Vocabulary) error {
	answer, err := s.picker.Pick(words)
	if err != nil {
		return fmt.Errorf("session: picking answer: %w", err)
	}

	s.words = words
	s.machine = game.NewMachine(answer, words, game.WithMessages(s.messages))
	s.games++

	s.logger.Info("game started", "game", s.games, "words", words.Len())
	s.logger.Debug("answer chosen", "answer", answer)
	return nil
}

// Apply performs one input action. Actions are applied in call order and
// each completes before Apply returns.
//
// Only a failed restart returns an error; the current game is kept in that
// case. Validation failures surface as signals on the Machine.
func (s *Session) Apply(a Action) error {
	switch a := a.(type) {
	case CharacterEntered:
		s.machine.AddCharacter(a.Char)
	case DeletePressed:
		s.machine.DeleteCharacter()
	case SubmitPressed:
		s.submit()
	case RestartRequested:
		return s.Restart(a.Reload)
	}
	return nil
}

func (s *Session) submit() {
	out := s.machine.Submit()

	switch {
	case out.Err != nil:
		s.logger.Debug("guess rejected", "guess", out.Guess, "reason", out.Err)
	case out.Applied:
		s.logger.Debug("guess", "guess", out.Guess, "result", out.Result.String())
		if out.Status.Over() {
			s.logger.Info("game over",
				"game", s.games,
				"status", out.Status,
				"attempts", s.machine.Attempts(),
				"answer", s.machine.Answer(),
			)
		}
	}
}

// Restart replaces the current game with a new one. With reload set the
// vocabulary is loaded again. If anything fails the current game and
// vocabulary stay in place and the error is returned.
func (s *Session) Restart(reload bool) error {
	words := s.words
	if reload {
		fresh, err := s.provider.Load()
		if err != nil {
			s.logger.Warn("vocabulary reload failed", "error", err)
			return fmt.Errorf("session: reloading vocabulary: %w", err)
		}
		s.logger.Info("vocabulary reloaded", "words", fresh.Len())
		words = fresh
	}
	return s.newGame(words)
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Games returns how many games this session has started.
func (s *Session) Games() int {
	return s.games
}

// Vocabulary returns the vocabulary in use.
func (s *Session) Vocabulary() *vocab.Vocabulary {
	return s.words
}

// Machine returns the current game.
func (s *Session) Machine() *game.Machine {
	return s.machine
}

// Snapshot returns the current game state.
func (s *Session) Snapshot() game.Snapshot {
	return s.machine.Snapshot()
}

// ConsumeSignals returns and clears the pending one-shot signals.
func (s *Session) ConsumeSignals() game.Signals {
	return s.machine.ConsumeSignals()
}
