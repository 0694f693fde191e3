package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// wordSet is a minimal Lexicon for tests.
type wordSet map[string]bool

func (w wordSet) Contains(word string) bool {
	return w[word]
}

var testWords = wordSet{
	"crane": true, "slate": true, "bumpy": true, "fight": true,
	"sworn": true, "pivot": true, "dwelt": true, "lucky": true,
}

// newTestMachine creates a machine with answer "crane" and a fixed win notice.
func newTestMachine() *Machine {
	return NewMachine("crane", testWords, WithMessages(FixedMessage("Genius!")))
}

// typeWord enters every letter of word.
func typeWord(m *Machine, word string) {
	for _, r := range word {
		m.AddCharacter(r)
	}
}

// guess types and submits word.
func guess(m *Machine, word string) SubmitOutcome {
	typeWord(m, word)
	return m.Submit()
}

func TestNewMachine(t *testing.T) {
	m := NewMachine("CRANE", testWords)

	if m.Answer() != "crane" {
		t.Errorf("Answer() = %q, expected lower-cased %q", m.Answer(), "crane")
	}
	if m.Status() != StatusInProgress {
		t.Errorf("Status() = %v, expected in_progress", m.Status())
	}
	if m.Cursor() != (Cursor{}) {
		t.Errorf("Cursor() = %+v, expected origin", m.Cursor())
	}
	if m.Attempts() != 0 {
		t.Errorf("Attempts() = %d, expected 0", m.Attempts())
	}
}

func TestAddCharacter(t *testing.T) {
	m := newTestMachine()

	if !m.AddCharacter('s') {
		t.Fatal("AddCharacter('s') should be accepted")
	}

	snap := m.Snapshot()
	if snap.Board[0].Cells[0].Letter != 'S' {
		t.Errorf("cell (0,0) = %q, expected 'S'", snap.Board[0].Cells[0].Letter)
	}
	if snap.Cursor != (Cursor{Row: 0, Col: 1}) {
		t.Errorf("Cursor = %+v, expected {0 1}", snap.Cursor)
	}

	sig := m.ConsumeSignals()
	if !sig.Pop || sig.PopAt != (Cursor{Row: 0, Col: 0}) {
		t.Errorf("pop signal = %v at %+v, expected pop at {0 0}", sig.Pop, sig.PopAt)
	}
	if !m.Signals().Empty() {
		t.Error("signals should be cleared after ConsumeSignals")
	}
}

func TestAddCharacterRejectsNonLetters(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
	}{
		{"digit", '1'},
		{"space", ' '},
		{"punctuation", '!'},
		{"non-ascii letter", 'é'},
		{"null", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine()
			if m.AddCharacter(tc.ch) {
				t.Errorf("AddCharacter(%q) should be a no-op", tc.ch)
			}
			if m.Cursor() != (Cursor{}) {
				t.Errorf("Cursor moved to %+v", m.Cursor())
			}
			if !m.Signals().Empty() {
				t.Error("no signal expected for ignored input")
			}
		})
	}
}

func TestAddCharacterFullRowIsNoop(t *testing.T) {
	m := newTestMachine()
	typeWord(m, "slate")

	before := m.Snapshot()
	if m.AddCharacter('x') {
		t.Error("AddCharacter on a full row should be a no-op")
	}
	after := m.Snapshot()

	if after.Cursor != (Cursor{Row: 0, Col: Cols}) {
		t.Errorf("Cursor = %+v, expected {0 5}", after.Cursor)
	}
	if after.Board != before.Board {
		t.Error("board changed after ignored input")
	}
}

func TestDeleteCharacter(t *testing.T) {
	m := newTestMachine()

	if m.DeleteCharacter() {
		t.Error("DeleteCharacter at column 0 should be a no-op")
	}
	if m.Cursor() != (Cursor{}) {
		t.Errorf("Cursor = %+v, expected origin", m.Cursor())
	}

	typeWord(m, "sl")
	if !m.DeleteCharacter() {
		t.Fatal("DeleteCharacter should remove a letter")
	}

	snap := m.Snapshot()
	if snap.Cursor != (Cursor{Row: 0, Col: 1}) {
		t.Errorf("Cursor = %+v, expected {0 1}", snap.Cursor)
	}
	if !snap.Board[0].Cells[1].Empty() {
		t.Errorf("cell (0,1) = %q, expected empty", snap.Board[0].Cells[1].Letter)
	}
	if snap.Board[0].Word() != "s" {
		t.Errorf("row word = %q, expected %q", snap.Board[0].Word(), "s")
	}
}

func TestDeleteDoesNotCrossRows(t *testing.T) {
	m := newTestMachine()
	guess(m, "slate")

	if m.DeleteCharacter() {
		t.Error("DeleteCharacter at the start of row 1 should be a no-op")
	}
	if m.Cursor() != (Cursor{Row: 1, Col: 0}) {
		t.Errorf("Cursor = %+v, expected {1 0}", m.Cursor())
	}
	if m.Snapshot().Board[0].Word() != "slate" {
		t.Error("submitted row must not be edited")
	}
}

func TestSubmitIncompleteRow(t *testing.T) {
	m := newTestMachine()
	typeWord(m, "cra")
	before := m.Snapshot()

	out := m.Submit()

	if out.Applied {
		t.Error("incomplete row must not be applied")
	}
	if !errors.Is(out.Err, ErrIncompleteRow) {
		t.Errorf("Err = %v, expected ErrIncompleteRow", out.Err)
	}

	after := m.Snapshot()
	if after.Board != before.Board || after.Cursor != before.Cursor {
		t.Error("board or cursor changed after validation failure")
	}

	sig := m.ConsumeSignals()
	if sig.Notice != NoticeIncompleteRow {
		t.Errorf("Notice = %q, expected %q", sig.Notice, NoticeIncompleteRow)
	}
	if !sig.Shake {
		t.Error("expected shake signal")
	}
}

func TestSubmitNotInVocabulary(t *testing.T) {
	m := newTestMachine()
	typeWord(m, "xxxxx")
	before := m.Snapshot()

	out := m.Submit()

	if !errors.Is(out.Err, ErrNotInVocabulary) {
		t.Errorf("Err = %v, expected ErrNotInVocabulary", out.Err)
	}
	after := m.Snapshot()
	if after.Board != before.Board || after.Cursor != before.Cursor {
		t.Error("board or cursor changed after validation failure")
	}
	if after.Signals.Notice != NoticeNotInVocabulary || !after.Signals.Shake {
		t.Errorf("signals = %+v, expected not-in-list notice with shake", after.Signals)
	}

	// The same row stays active for correction.
	for i := 0; i < Cols; i++ {
		m.DeleteCharacter()
	}
	out = guess(m, "slate")
	if !out.Applied {
		t.Fatalf("corrected guess should be applied, got %v", out.Err)
	}
}

func TestSubmitAdvancesRow(t *testing.T) {
	m := newTestMachine()

	out := guess(m, "slate")
	if !out.Applied {
		t.Fatalf("Submit() not applied: %v", out.Err)
	}

	expected := core.Result{core.FeedbackAbsent, core.FeedbackAbsent, core.FeedbackCorrect, core.FeedbackAbsent, core.FeedbackCorrect}
	if out.Result != expected {
		t.Errorf("Result = %s, expected %s", out.Result, expected)
	}

	snap := m.Snapshot()
	if snap.Cursor != (Cursor{Row: 1, Col: 0}) {
		t.Errorf("Cursor = %+v, expected {1 0}", snap.Cursor)
	}
	if !snap.Board[0].Submitted || snap.Board[0].Result() != expected {
		t.Errorf("row 0 = %+v, expected stored feedback", snap.Board[0])
	}
	if got, ok := snap.Hints.Get('A'); !ok || got != core.FeedbackCorrect {
		t.Errorf("hint A = %v, %v; expected Correct", got, ok)
	}
	if snap.Status != StatusInProgress {
		t.Errorf("Status = %v, expected in_progress", snap.Status)
	}
	if snap.Answer != "" {
		t.Error("answer must stay hidden while in progress")
	}
}

func TestWinScenario(t *testing.T) {
	m := newTestMachine()

	guess(m, "slate")
	out := guess(m, "crane")

	if out.Status != StatusWon || m.Status() != StatusWon {
		t.Fatalf("Status = %v, expected won", m.Status())
	}
	if !out.Result.Solved() {
		t.Errorf("Result = %s, expected all correct", out.Result)
	}

	snap := m.Snapshot()
	if snap.Board[1].Result() != (core.Result{core.FeedbackCorrect, core.FeedbackCorrect, core.FeedbackCorrect, core.FeedbackCorrect, core.FeedbackCorrect}) {
		t.Errorf("row 1 feedback = %s", snap.Board[1].Result())
	}
	if snap.Signals.Notice != "Genius!" || !snap.Signals.Celebrate {
		t.Errorf("signals = %+v, expected celebration", snap.Signals)
	}
	if snap.Answer != "crane" {
		t.Errorf("Answer = %q, expected revealed answer", snap.Answer)
	}
	if m.Attempts() != 2 {
		t.Errorf("Attempts() = %d, expected 2", m.Attempts())
	}
}

func TestLossScenario(t *testing.T) {
	m := newTestMachine()
	misses := []string{"slate", "bumpy", "fight", "sworn", "pivot", "dwelt"}

	for i, w := range misses {
		out := guess(m, w)
		if !out.Applied {
			t.Fatalf("guess %d (%s) not applied: %v", i+1, w, out.Err)
		}
		if i < len(misses)-1 && out.Status != StatusInProgress {
			t.Fatalf("game ended early after guess %d", i+1)
		}
	}

	if m.Status() != StatusLost {
		t.Fatalf("Status = %v, expected lost", m.Status())
	}
	if m.Cursor().Row != Rows-1 {
		t.Errorf("Cursor row = %d, expected to stay on the last row %d", m.Cursor().Row, Rows-1)
	}
	if m.Attempts() != Rows {
		t.Errorf("Attempts() = %d, expected %d", m.Attempts(), Rows)
	}

	sig := m.ConsumeSignals()
	if sig.Notice != "CRANE" {
		t.Errorf("Notice = %q, expected answer reveal", sig.Notice)
	}
	if sig.Celebrate {
		t.Error("loss must not celebrate")
	}
}

func TestTerminalImmutability(t *testing.T) {
	finish := map[string]func(m *Machine){
		"won": func(m *Machine) { guess(m, "crane") },
		"lost": func(m *Machine) {
			for _, w := range []string{"slate", "bumpy", "fight", "sworn", "pivot", "dwelt"} {
				guess(m, w)
			}
		},
	}

	for name, play := range finish {
		t.Run(name, func(t *testing.T) {
			m := newTestMachine()
			play(m)
			m.ConsumeSignals()

			before := m.Snapshot()

			if m.AddCharacter('a') {
				t.Error("AddCharacter accepted after game over")
			}
			if m.DeleteCharacter() {
				t.Error("DeleteCharacter accepted after game over")
			}
			if out := m.Submit(); out.Applied || out.Err != nil {
				t.Errorf("Submit() after game over = %+v, expected no-op", out)
			}

			after := m.Snapshot()
			if after != before {
				t.Errorf("snapshot changed after game over:\nbefore %+v\nafter  %+v", before, after)
			}
		})
	}
}

func TestSubmitWithoutLexiconRejects(t *testing.T) {
	m := NewMachine("crane", nil)
	out := guess(m, "crane")

	if !errors.Is(out.Err, ErrNotInVocabulary) {
		t.Errorf("Err = %v, expected ErrNotInVocabulary", out.Err)
	}
}

func TestRandomMessages(t *testing.T) {
	msgs := []string{"one", "two", "three"}
	p := NewRandomMessages(msgs, 42)

	for i := 0; i < 50; i++ {
		got := p.Pick()
		found := false
		for _, m := range msgs {
			if got == m {
				found = true
			}
		}
		if !found {
			t.Fatalf("Pick() = %q, not in configured list", got)
		}
	}

	if d := NewRandomMessages(nil, 1).Pick(); d == "" {
		t.Error("default messages should be used for an empty list")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
		over     bool
	}{
		{StatusInProgress, "in_progress", false},
		{StatusWon, "won", true},
		{StatusLost, "lost", true},
	}
	for _, tc := range tests {
		if tc.status.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.status.String(), tc.expected)
		}
		if tc.status.Over() != tc.over {
			t.Errorf("%v.Over() = %v, expected %v", tc.status, tc.status.Over(), tc.over)
		}
	}
}
