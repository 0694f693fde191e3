// Package config provides YAML-based configuration loading for the game,
// with environment variable overrides.
package config

import "time"

// Config contains all user-facing settings.
type Config struct {
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Game       GameConfig       `yaml:"game"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// VocabularyConfig selects where words come from.
type VocabularyConfig struct {
	Path   string `yaml:"path" env:"WORDLE_VOCAB"`
	Answer string `yaml:"answer" env:"WORDLE_ANSWER"` // Fixed answer, empty = random
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	Seed          int64    `yaml:"seed" env:"WORDLE_SEED"`
	NoticeSeconds float64  `yaml:"notice_seconds" env:"WORDLE_NOTICE_SECONDS"`
	WinMessages   []string `yaml:"win_messages"`
}

// ThemeConfig holds ANSI 256-color codes for the terminal renderer.
type ThemeConfig struct {
	Correct string `yaml:"correct"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
	Empty   string `yaml:"empty"`
	Border  string `yaml:"border"`
	Text    string `yaml:"text"`
	Accent  string `yaml:"accent"`
}

// NoticeDuration returns how long a transient notice stays visible.
func (c Config) NoticeDuration() time.Duration {
	return time.Duration(c.Game.NoticeSeconds * float64(time.Second))
}
