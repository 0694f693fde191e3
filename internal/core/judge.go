package core

import (
	"errors"
	"strings"
)

// WordLength is the number of letters in every guess and answer.
const WordLength = 5

// ErrWordLength is returned by EvaluateStrict when an input is not WordLength letters.
var ErrWordLength = errors.New("core: word must be exactly 5 letters")

// Result holds the feedback for each position of a guess.
type Result [WordLength]Feedback

// Solved reports whether every position is Correct.
func (r Result) Solved() bool {
	for _, f := range r {
		if f != FeedbackCorrect {
			return false
		}
	}
	return true
}

// String renders the result with one symbol per position, e.g. "=?..=".
func (r Result) String() string {
	var sb strings.Builder
	for _, f := range r {
		sb.WriteRune(f.Symbol())
	}
	return sb.String()
}

// Evaluate compares guess against answer and returns per-position feedback.
//
// Pass 1 marks exact matches and counts the answer letters that were not
// matched in place. Pass 2 marks every other guess letter Present while the
// count for that letter is positive, consuming one occurrence each time.
// This keeps Present+Correct marks for a letter within its occurrences in the
// answer.
//
// Both words are lower-cased first. Positions beyond the shorter input are
// Absent; use EvaluateStrict to reject inputs of the wrong length.
func Evaluate(guess, answer string) Result {
	g := strings.ToLower(guess)
	a := strings.ToLower(answer)

	var res Result
	var remaining [26]int

	for i := 0; i < WordLength; i++ {
		if i < len(g) && i < len(a) && g[i] == a[i] {
			res[i] = FeedbackCorrect
			continue
		}
		if i < len(a) {
			if j := letterIndex(a[i]); j >= 0 {
				remaining[j]++
			}
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == FeedbackCorrect {
			continue
		}
		res[i] = FeedbackAbsent
		if i >= len(g) {
			continue
		}
		if j := letterIndex(g[i]); j >= 0 && remaining[j] > 0 {
			res[i] = FeedbackPresent
			remaining[j]--
		}
	}

	return res
}

// EvaluateStrict is Evaluate with length checking on both inputs.
func EvaluateStrict(guess, answer string) (Result, error) {
	if len(guess) != WordLength || len(answer) != WordLength {
		return Result{}, ErrWordLength
	}
	return Evaluate(guess, answer), nil
}

// letterIndex maps a lowercase ASCII letter to 0..25, or -1 for anything else.
func letterIndex(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}

// IsLetter reports whether r is an ASCII letter (either case).
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
