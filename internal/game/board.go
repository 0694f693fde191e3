package game

import (
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// Board dimensions.
const (
	Rows = 6
	Cols = core.WordLength
)

// Cell is one tile of the board.
type Cell struct {
	Letter   rune          // Upper-case letter, or 0 when empty
	Feedback core.Feedback // FeedbackUnknown until the row is submitted
}

// Empty reports whether the cell has no letter.
func (c Cell) Empty() bool {
	return c.Letter == 0
}

// Row is one guess attempt.
type Row struct {
	Cells     [Cols]Cell
	Submitted bool
}

// Word returns the letters entered so far, lower-cased.
func (r Row) Word() string {
	var sb strings.Builder
	for _, c := range r.Cells {
		if c.Empty() {
			break
		}
		sb.WriteRune(c.Letter)
	}
	return strings.ToLower(sb.String())
}

// Result returns the feedback stored on the row.
func (r Row) Result() core.Result {
	var res core.Result
	for i, c := range r.Cells {
		res[i] = c.Feedback
	}
	return res
}

// Board holds every row of a game.
type Board [Rows]Row

// Cursor is the position where the next letter goes.
// Col is in [0, Cols]; Row is in [0, Rows).
type Cursor struct {
	Row int
	Col int
}
