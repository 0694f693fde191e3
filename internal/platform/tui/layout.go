package tui

import (
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/game"
)

// Screen geometry, in terminal cells from the top-left of the view.
const (
	leftMargin = 2

	tileWidth = 5
	tileGap   = 1

	keyWidth     = 3
	wideKeyWidth = 7
	keyGap       = 1

	titleLine   = 0
	noticeLine  = 1
	boardTop    = 3
	keyboardTop = boardTop + game.Rows + 1
	panelTop    = keyboardTop + 4

	buttonGap = 3
)

// Labels of the non-letter keys and the game over buttons.
const (
	keyEnter  = "ENTER"
	keyDelete = "⌫"

	buttonPlayAgain = "PLAY AGAIN"
	buttonQuit      = "QUIT"
)

var keyboardRows = [][]string{
	strings.Split("QWERTYUIOP", ""),
	strings.Split("ASDFGHJKL", ""),
	append(append([]string{keyEnter}, strings.Split("ZXCVBNM", "")...), keyDelete),
}

// shakeOffsets are the horizontal offsets of the active row on successive
// animation frames after a rejected guess.
var shakeOffsets = []int{2, 0, 2, 0, 1, 0}

// popFrames is how many animation frames a freshly typed tile stays highlighted.
const popFrames = 3

// hitBox is a clickable area on a single line.
type hitBox struct {
	label string
	x, y  int
	width int
}

func (b hitBox) contains(x, y int) bool {
	return y == b.y && x >= b.x && x < b.x+b.width
}

func labelWidth(label string) int {
	if label == keyEnter {
		return wideKeyWidth
	}
	return keyWidth
}

func rowWidth(row []string) int {
	w := 0
	for i, label := range row {
		if i > 0 {
			w += keyGap
		}
		w += labelWidth(label)
	}
	return w
}

var (
	keyboardWidth = func() int {
		w := 0
		for _, row := range keyboardRows {
			w = max(w, rowWidth(row))
		}
		return w
	}()
	boardWidth  = game.Cols*tileWidth + (game.Cols-1)*tileGap
	boardIndent = (keyboardWidth - boardWidth) / 2

	keyBoxes    = layoutKeyboard()
	buttonBoxes = layoutButtons()
)

func rowIndent(row []string) int {
	return (keyboardWidth - rowWidth(row)) / 2
}

func layoutKeyboard() []hitBox {
	var boxes []hitBox
	for r, row := range keyboardRows {
		x := leftMargin + rowIndent(row)
		for _, label := range row {
			w := labelWidth(label)
			boxes = append(boxes, hitBox{label: label, x: x, y: keyboardTop + r, width: w})
			x += w + keyGap
		}
	}
	return boxes
}

// buttonText is how a panel button is drawn.
func buttonText(label string) string {
	return " " + label + " "
}

func buttonsIndent() int {
	w := len(buttonText(buttonPlayAgain)) + buttonGap + len(buttonText(buttonQuit))
	return (keyboardWidth - w) / 2
}

func layoutButtons() []hitBox {
	y := panelTop + 2
	x := leftMargin + buttonsIndent()
	again := hitBox{label: buttonPlayAgain, x: x, y: y, width: len(buttonText(buttonPlayAgain))}
	quit := hitBox{label: buttonQuit, x: again.x + again.width + buttonGap, y: y, width: len(buttonText(buttonQuit))}
	return []hitBox{again, quit}
}

// keyAt returns the on-screen keyboard key under a cell.
func keyAt(x, y int) (string, bool) {
	return hit(keyBoxes, x, y)
}

// buttonAt returns the game over panel button under a cell.
func buttonAt(x, y int) (string, bool) {
	return hit(buttonBoxes, x, y)
}

func hit(boxes []hitBox, x, y int) (string, bool) {
	for _, b := range boxes {
		if b.contains(x, y) {
			return b.label, true
		}
	}
	return "", false
}
