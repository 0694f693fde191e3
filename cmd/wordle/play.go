package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/session"
	"github.com/vovakirdan/tui-wordle/internal/vocab"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  A-Z            - Type a letter
  Enter          - Submit the guess
  Backspace/Del  - Delete the last letter
  Ctrl+N         - New word
  Ctrl+R         - Reload the word list and start a new word
  Enter/R        - Play again (after game over)
  Q/Esc          - Quit (after game over)
  Ctrl+C         - Quit

The on-screen keyboard and the game over buttons also accept mouse clicks.

Examples:
  wordle play
  wordle play --vocab ./vocabulary.json
  wordle play --answer crane
  wordle play --config ./my-wordle.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "wordle")
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := session.New(session.Options{
		Provider:    vocab.FileProvider{Path: cfg.Vocabulary.Path},
		Picker:      pickerFor(cfg),
		WinMessages: cfg.Game.WinMessages,
		Seed:        cfg.Game.Seed,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	return tui.Run(sess, tui.Options{
		Theme:          tui.NewTheme(cfg.Theme, nil),
		NoticeDuration: cfg.NoticeDuration(),
		Logger:         logger,
	})
}
