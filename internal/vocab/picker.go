package vocab

import (
	"fmt"
	"math/rand"
	"time"
)

// Picker chooses the answer for a new game.
type Picker interface {
	Pick(v *Vocabulary) (string, error)
}

// RandomPicker picks uniformly at random.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a picker from seed. A zero seed uses the current time.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a random word from v.
func (p *RandomPicker) Pick(v *Vocabulary) (string, error) {
	if v == nil || v.Len() == 0 {
		return "", ErrEmpty
	}
	return v.At(p.rng.Intn(v.Len())), nil
}

// FixedPicker always returns Word. It fails when Word is not in the vocabulary.
type FixedPicker struct {
	Word string
}

// Pick returns the fixed word after checking it belongs to v.
func (p FixedPicker) Pick(v *Vocabulary) (string, error) {
	w, ok := Normalize(p.Word)
	if !ok || v == nil || !v.Contains(w) {
		return "", fmt.Errorf("%w: %q", ErrAnswerNotInVocabulary, p.Word)
	}
	return w, nil
}
