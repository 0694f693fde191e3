package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/session"
)

// NoticeReloadFailed is shown when the vocabulary could not be reloaded.
const NoticeReloadFailed = "Could not reload word list"

// Options configures the game screen.
type Options struct {
	Theme          Theme
	NoticeDuration time.Duration // Zero keeps notices until replaced
	Logger         *log.Logger
}

// Model is the Bubble Tea model for one player's game screen.
type Model struct {
	sess   *session.Session
	keys   KeyMap
	help   help.Model
	theme  Theme
	ttl    time.Duration
	logger *log.Logger

	notice    string
	noticeID  int
	shaking   int // Remaining shake frames
	popping   int // Remaining pop frames
	popAt     game.Cursor
	animating bool
	celebrate bool
	width     int
	height    int
	quitting  bool
}

// NewModel creates a game screen driving sess.
func NewModel(sess *session.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		sess:   sess,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  opts.Theme,
		ttl:    opts.NoticeDuration,
		logger: opts.Logger,
	}
	m.keys.SetGameOver(sess.Snapshot().Status.Over())
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("wordle")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width - leftMargin
		return m, nil

	case FrameMsg:
		return m.handleFrame()

	case noticeExpiredMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == nil {
		return m, nil
	}
	return m.apply(action)
}

// handleMouse maps left clicks on the on-screen keyboard and the game over
// buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.sess.Snapshot().Status.Over() {
		switch label, _ := buttonAt(msg.X, msg.Y); label {
		case buttonPlayAgain:
			return m.apply(session.RestartRequested{})
		case buttonQuit:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	label, ok := keyAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if action := MapLabel(label); action != nil {
		return m.apply(action)
	}
	return m, nil
}

// apply forwards an action to the session and picks up its signals.
func (m Model) apply(action session.Action) (tea.Model, tea.Cmd) {
	err := m.sess.Apply(action)

	var cmds []tea.Cmd
	if _, restart := action.(session.RestartRequested); restart {
		if err != nil {
			m.logger.Error("restart failed", "error", err)
			cmds = append(cmds, m.showNotice(NoticeReloadFailed))
		} else {
			m.resetEffects()
		}
	}

	cmds = append(cmds, m.syncSignals())
	return m, tea.Batch(cmds...)
}

// syncSignals consumes one-shot signals and starts the matching effects.
func (m *Model) syncSignals() tea.Cmd {
	sig := m.sess.ConsumeSignals()
	m.keys.SetGameOver(m.sess.Snapshot().Status.Over())

	var cmds []tea.Cmd
	if sig.Notice != "" {
		cmds = append(cmds, m.showNotice(sig.Notice))
	}
	if sig.Shake {
		m.shaking = len(shakeOffsets)
	}
	if sig.Pop {
		m.popping = popFrames
		m.popAt = sig.PopAt
	}
	if sig.Celebrate {
		m.celebrate = true
	}

	if (m.shaking > 0 || m.popping > 0) && !m.animating {
		m.animating = true
		cmds = append(cmds, frameCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeID++
	if m.ttl <= 0 {
		return nil
	}
	return noticeCmd(m.noticeID, m.ttl)
}

func (m *Model) resetEffects() {
	m.notice = ""
	m.noticeID++
	m.shaking = 0
	m.popping = 0
	m.celebrate = false
}

// handleFrame advances animations.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.shaking > 0 {
		m.shaking--
	}
	if m.popping > 0 {
		m.popping--
	}

	if m.shaking == 0 && m.popping == 0 {
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}

// shakeOffset returns the current horizontal offset of the active row.
func (m Model) shakeOffset() int {
	if m.shaking == 0 {
		return 0
	}
	return shakeOffsets[len(shakeOffsets)-m.shaking]
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return render(m.sess.Snapshot(), frame{
		notice:    m.notice,
		shake:     m.shakeOffset(),
		pop:       m.popping > 0,
		popAt:     m.popAt,
		celebrate: m.celebrate,
		help:      m.help.View(m.keys),
	}, m.theme)
}

// Run starts the Bubble Tea program for sess in the current terminal.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(sess, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
