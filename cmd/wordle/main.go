// wordle is a terminal word-guessing game.
//
// Usage:
//
//	wordle                         - Play in this terminal (same as play)
//	wordle play                    - Play in this terminal
//	wordle serve                   - Start SSH server for remote play
//	wordle judge <guess> <answer>  - Show the feedback for one guess
//	wordle vocab check <path>      - Validate a word list
//	wordle vocab import <src> <db> - Copy a word list into a SQLite database
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.wordle, ./configs)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/vocab"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Game flags, shared by play, serve and the root command
	flagVocab  string
	flagAnswer string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - guess the five-letter word in six tries",
	Long: `Wordle is a terminal word-guessing game. Guess the hidden five-letter
word in six tries; after each guess every letter is marked as correct,
present elsewhere in the word, or absent.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  judge    - Show the feedback for one guess
  vocab    - Check or import word lists

Examples:
  wordle
  wordle play --vocab ./words.json
  wordle serve --ssh :2222
  wordle judge speed erase
  wordle vocab import ./words.txt ~/.wordle/words.db`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	addGameFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(judgeCmd)
	rootCmd.AddCommand(vocabCmd)
}

// addGameFlags registers the flags that shape a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagVocab, "vocab", "", "Word list (.json, .txt, .yaml or .db); empty uses the built-in list")
	cmd.Flags().StringVar(&flagAnswer, "answer", "", "Fixed answer (must be in the word list)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

// loadConfig reads .env, the config file and the environment, then applies
// any game flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("vocab") {
		cfg.Vocabulary.Path = flagVocab
	}
	if flags.Changed("answer") {
		cfg.Vocabulary.Answer = flagAnswer
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned function closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// pickerFor returns the answer picker the config asks for.
func pickerFor(cfg config.Config) vocab.Picker {
	if cfg.Vocabulary.Answer != "" {
		return vocab.FixedPicker{Word: cfg.Vocabulary.Answer}
	}
	return vocab.NewRandomPicker(cfg.Game.Seed)
}
