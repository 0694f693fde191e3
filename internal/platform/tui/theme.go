package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
)

// Theme contains all visual styles of the game screen.
type Theme struct {
	// Tile styles by feedback
	TileCorrect lipgloss.Style
	TilePresent lipgloss.Style
	TileAbsent  lipgloss.Style
	TileFilled  lipgloss.Style // Typed, not yet submitted
	TileEmpty   lipgloss.Style
	TilePop     lipgloss.Style // Most recently typed tile

	// Keyboard styles by hint
	KeyCorrect lipgloss.Style
	KeyPresent lipgloss.Style
	KeyAbsent  lipgloss.Style
	KeyUnknown lipgloss.Style
	KeyAction  lipgloss.Style // ENTER and delete

	Title     lipgloss.Style
	Celebrate lipgloss.Style
	Notice    lipgloss.Style

	// Game over panel
	PanelTitle  lipgloss.Style
	PanelText   lipgloss.Style
	PanelButton lipgloss.Style
	PanelQuit   lipgloss.Style
}

// NewTheme builds styles from configured colors. Styles are bound to r so
// color detection follows the output they are written to; nil uses the
// default renderer.
func NewTheme(c config.ThemeConfig, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	tile := r.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(c.Text))
	key := r.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(c.Text))

	return Theme{
		TileCorrect: tile.Background(lipgloss.Color(c.Correct)),
		TilePresent: tile.Background(lipgloss.Color(c.Present)),
		TileAbsent:  tile.Background(lipgloss.Color(c.Absent)),
		TileFilled:  tile.Background(lipgloss.Color(c.Border)),
		TileEmpty:   tile.Background(lipgloss.Color(c.Empty)),
		TilePop:     tile.Background(lipgloss.Color(c.Accent)),

		KeyCorrect: key.Background(lipgloss.Color(c.Correct)),
		KeyPresent: key.Background(lipgloss.Color(c.Present)),
		KeyAbsent:  key.Background(lipgloss.Color(c.Absent)).Faint(true),
		KeyUnknown: key.Background(lipgloss.Color(c.Border)),
		KeyAction:  key.Background(lipgloss.Color(c.Border)).Bold(true),

		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Text)),
		Celebrate: r.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Correct)),
		Notice:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Accent)),

		PanelTitle: r.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Accent)),
		PanelText:  r.NewStyle().Foreground(lipgloss.Color(c.Text)),
		PanelButton: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Correct)),
		PanelQuit: r.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Absent)),
	}
}

// DefaultTheme returns the theme for the built-in colors.
func DefaultTheme() Theme {
	return NewTheme(config.Default().Theme, nil)
}

// tileStyle picks the style for a board cell.
func (t Theme) tileStyle(fb core.Feedback, filled bool) lipgloss.Style {
	switch fb {
	case core.FeedbackCorrect:
		return t.TileCorrect
	case core.FeedbackPresent:
		return t.TilePresent
	case core.FeedbackAbsent:
		return t.TileAbsent
	}
	if filled {
		return t.TileFilled
	}
	return t.TileEmpty
}

// keyStyle picks the style for a letter key from its hint.
func (t Theme) keyStyle(fb core.Feedback) lipgloss.Style {
	switch fb {
	case core.FeedbackCorrect:
		return t.KeyCorrect
	case core.FeedbackPresent:
		return t.KeyPresent
	case core.FeedbackAbsent:
		return t.KeyAbsent
	default:
		return t.KeyUnknown
	}
}
