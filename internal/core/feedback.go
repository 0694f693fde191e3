// Package core provides the pure word-guessing primitives: per-letter
// feedback, the guess judge and the keyboard hint aggregator.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Feedback is the result of comparing one guessed letter against the answer.
// Values are ordered so that a larger value is strictly more informative:
// Unknown < Absent < Present < Correct.
type Feedback uint8

const (
	FeedbackUnknown Feedback = iota // Not evaluated yet
	FeedbackAbsent                  // Letter not in the answer (or no occurrences left)
	FeedbackPresent                 // Letter in the answer at another position
	FeedbackCorrect                 // Letter in the answer at this position
)

// String returns a human-readable name for the feedback code.
func (f Feedback) String() string {
	switch f {
	case FeedbackUnknown:
		return "Unknown"
	case FeedbackAbsent:
		return "Absent"
	case FeedbackPresent:
		return "Present"
	case FeedbackCorrect:
		return "Correct"
	default:
		return "Invalid"
	}
}

// Symbol returns a single-character mark used by text renderers and tests.
func (f Feedback) Symbol() rune {
	switch f {
	case FeedbackAbsent:
		return '.'
	case FeedbackPresent:
		return '?'
	case FeedbackCorrect:
		return '='
	default:
		return ' '
	}
}

// Best returns the more informative of two feedback codes.
func Best(a, b Feedback) Feedback {
	if a > b {
		return a
	}
	return b
}
