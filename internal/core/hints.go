package core

import "unicode"

// KeyHints tracks the best feedback observed for each letter A-Z across all
// submitted guesses. The zero value is ready to use and has no hints.
//
// Hints only ever increase: once a letter is Correct it stays Correct.
// KeyHints is a value type, so assigning it takes an independent copy.
type KeyHints struct {
	codes [26]Feedback
}

// Update merges the feedback of one evaluated guess into the hints.
// Applying the same guess twice leaves the hints unchanged.
func (h *KeyHints) Update(guess string, res Result) {
	for i, r := range guess {
		if i >= WordLength {
			break
		}
		j := hintIndex(r)
		if j < 0 {
			continue
		}
		h.codes[j] = Best(h.codes[j], res[i])
	}
}

// Get returns the hint for a letter. The boolean is false when the letter has
// not appeared in any submitted guess.
func (h KeyHints) Get(letter rune) (Feedback, bool) {
	j := hintIndex(letter)
	if j < 0 || h.codes[j] == FeedbackUnknown {
		return FeedbackUnknown, false
	}
	return h.codes[j], true
}

// Letters returns the observed letters in alphabetical order (upper case).
func (h KeyHints) Letters() []rune {
	var out []rune
	for i, f := range h.codes {
		if f != FeedbackUnknown {
			out = append(out, rune('A'+i))
		}
	}
	return out
}

// Len returns the number of letters with a hint.
func (h KeyHints) Len() int {
	n := 0
	for _, f := range h.codes {
		if f != FeedbackUnknown {
			n++
		}
	}
	return n
}

func hintIndex(r rune) int {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return -1
	}
	return int(r - 'A')
}
