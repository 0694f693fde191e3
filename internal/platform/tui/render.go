package tui

import (
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/game"
)

const title = "W O R D L E"

// frame is the presentation-only state layered on top of a game snapshot.
type frame struct {
	notice    string
	shake     int // Horizontal offset of the active row
	pop       bool
	popAt     game.Cursor
	celebrate bool
	help      string
}

// render draws the whole screen. Line positions match the constants in
// layout.go so mouse hit tests line up with what is shown.
func render(snap game.Snapshot, f frame, t Theme) string {
	lines := make([]string, panelTop)

	lines[titleLine] = renderTitle(f.celebrate, t)
	if f.notice != "" {
		lines[noticeLine] = centered(t.Notice.Render(f.notice), len([]rune(f.notice)))
	}
	for r := range snap.Board {
		lines[boardTop+r] = renderRow(snap, r, f, t)
	}
	for r, row := range keyboardRows {
		lines[keyboardTop+r] = renderKeyRow(snap, row, t)
	}

	if snap.Status.Over() {
		lines = append(lines, renderPanel(snap, t)...)
		lines = append(lines, "")
	}
	if f.help != "" {
		lines = append(lines, pad(leftMargin)+f.help)
	}
	return strings.Join(lines, "\n")
}

func renderTitle(celebrate bool, t Theme) string {
	if celebrate {
		text := "★ " + title + " ★"
		return centered(t.Celebrate.Render(text), len([]rune(text)))
	}
	return centered(t.Title.Render(title), len(title))
}

func renderRow(snap game.Snapshot, r int, f frame, t Theme) string {
	row := snap.Board[r]
	indent := leftMargin + boardIndent
	if r == snap.Cursor.Row && !snap.Status.Over() {
		indent += f.shake
	}

	var sb strings.Builder
	sb.WriteString(pad(indent))
	for c, cell := range row.Cells {
		if c > 0 {
			sb.WriteString(pad(tileGap))
		}
		style := t.tileStyle(cell.Feedback, !cell.Empty())
		if f.pop && f.popAt == (game.Cursor{Row: r, Col: c}) && !row.Submitted {
			style = t.TilePop
		}
		letter := " "
		if !cell.Empty() {
			letter = string(cell.Letter)
		}
		sb.WriteString(style.Render(letter))
	}
	return sb.String()
}

func renderKeyRow(snap game.Snapshot, row []string, t Theme) string {
	var sb strings.Builder
	sb.WriteString(pad(leftMargin + rowIndent(row)))
	for i, label := range row {
		if i > 0 {
			sb.WriteString(pad(keyGap))
		}
		switch label {
		case keyEnter, keyDelete:
			sb.WriteString(t.KeyAction.Width(labelWidth(label)).Render(label))
		default:
			fb, _ := snap.Hints.Get([]rune(label)[0])
			sb.WriteString(t.keyStyle(fb).Render(label))
		}
	}
	return sb.String()
}

func renderPanel(snap game.Snapshot, t Theme) []string {
	heading := "Game Over"
	if snap.Status == game.StatusWon {
		heading = "Congratulations!"
	}
	answer := "The word was " + strings.ToUpper(snap.Answer)

	again, quit := buttonText(buttonPlayAgain), buttonText(buttonQuit)
	buttons := pad(leftMargin+buttonsIndent()) +
		t.PanelButton.Render(again) + pad(buttonGap) + t.PanelQuit.Render(quit)

	return []string{
		centered(t.PanelTitle.Render(heading), len(heading)),
		centered(t.PanelText.Render(answer), len(answer)),
		buttons,
	}
}

// centered indents styled text of the given visible width to the middle of
// the keyboard.
func centered(styled string, width int) string {
	return pad(leftMargin+max(0, (keyboardWidth-width)/2)) + styled
}

func pad(n int) string {
	return strings.Repeat(" ", n)
}

// RenderResult draws one evaluated guess as a row of colored tiles followed
// by its symbol line, for use outside the game screen.
func RenderResult(guess string, res core.Result, t Theme) string {
	var tiles strings.Builder
	for i, r := range strings.ToUpper(guess) {
		if i >= core.WordLength {
			break
		}
		if i > 0 {
			tiles.WriteString(pad(tileGap))
		}
		tiles.WriteString(t.tileStyle(res[i], true).Render(string(r)))
	}

	var symbols strings.Builder
	for i, f := range res {
		if i > 0 {
			symbols.WriteString(pad(tileGap))
		}
		symbols.WriteString(centeredIn(string(f.Symbol()), tileWidth))
	}
	return tiles.String() + "\n" + symbols.String()
}

func centeredIn(s string, width int) string {
	left := (width - len([]rune(s))) / 2
	right := width - len([]rune(s)) - left
	return pad(left) + s + pad(right)
}
