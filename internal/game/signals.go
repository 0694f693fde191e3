package game

import (
	"math/rand"
)

// Notices shown for validation failures.
const (
	NoticeIncompleteRow   = "Not enough letters"
	NoticeNotInVocabulary = "Not in word list"
)

// DefaultWinMessages are the celebratory notices used when none are configured.
var DefaultWinMessages = []string{"Genius!", "Magnificent!", "Splendid!", "Great!"}

// Signals are one-shot cues for the presentation layer. They are raised by
// Machine operations and cleared by Machine.ConsumeSignals.
type Signals struct {
	Notice    string // Transient message text, empty if none
	Shake     bool   // The active row was rejected
	Celebrate bool   // The game was just won
	Pop       bool   // A letter was just placed at PopAt
	PopAt     Cursor
}

// Empty reports whether no signal is pending.
func (s Signals) Empty() bool {
	return s.Notice == "" && !s.Shake && !s.Celebrate && !s.Pop
}

// MessagePicker chooses the notice shown on a win.
type MessagePicker interface {
	Pick() string
}

// RandomMessages picks uniformly from a fixed list.
type RandomMessages struct {
	messages []string
	rng      *rand.Rand
}

// NewRandomMessages creates a picker over messages. An empty list falls back
// to DefaultWinMessages.
func NewRandomMessages(messages []string, seed int64) *RandomMessages {
	if len(messages) == 0 {
		messages = DefaultWinMessages
	}
	return &RandomMessages{
		messages: append([]string(nil), messages...),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Pick returns one of the messages.
func (r *RandomMessages) Pick() string {
	return r.messages[r.rng.Intn(len(r.messages))]
}

// FixedMessage always returns the same text.
type FixedMessage string

// Pick returns the message.
func (m FixedMessage) Pick() string {
	return string(m)
}
