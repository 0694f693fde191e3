// Package vocab loads and validates the list of words that may be guessed and
// chosen as answers.
//
// A Vocabulary is immutable once built and safe to share between sessions.
package vocab

import (
	"errors"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// Errors returned while building or loading a vocabulary.
var (
	ErrEmpty                 = errors.New("vocab: no valid five-letter words")
	ErrMalformed             = errors.New("vocab: malformed vocabulary resource")
	ErrUnsupportedFormat     = errors.New("vocab: unsupported vocabulary format")
	ErrAnswerNotInVocabulary = errors.New("vocab: answer is not in the vocabulary")
)

// Vocabulary is a sorted, deduplicated set of lower-case five-letter words.
type Vocabulary struct {
	words []string
	set   map[string]struct{}
}

// New builds a vocabulary from candidate words. Entries are trimmed and
// lower-cased; anything that is not exactly five ASCII letters is dropped.
// Returns ErrEmpty if nothing valid remains.
func New(candidates []string) (*Vocabulary, error) {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		w, ok := Normalize(c)
		if !ok {
			continue
		}
		set[w] = struct{}{}
	}

	if len(set) == 0 {
		return nil, ErrEmpty
	}

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)

	return &Vocabulary{words: words, set: set}, nil
}

// MustNew is New that panics on error. Intended for tests and literals.
func MustNew(candidates ...string) *Vocabulary {
	v, err := New(candidates)
	if err != nil {
		panic(err)
	}
	return v
}

// Normalize trims and lower-cases s and reports whether it is a valid word.
func Normalize(s string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != core.WordLength {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}
	return w, true
}

// Contains reports whether word (any case) is in the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.set[strings.ToLower(word)]
	return ok
}

// Len returns the number of words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// At returns the i-th word in sorted order.
func (v *Vocabulary) At(i int) string {
	return v.words[i]
}

// Words returns a copy of all words in sorted order.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}
