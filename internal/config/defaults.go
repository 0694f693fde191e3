package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultWordleYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Seed:          0,
			NoticeSeconds: 1.4,
			WinMessages:   []string{"Genius!", "Magnificent!", "Splendid!", "Great!"},
		},
		Theme: ThemeConfig{
			Correct: "28",
			Present: "178",
			Absent:  "240",
			Empty:   "236",
			Border:  "245",
			Text:    "255",
			Accent:  "33",
		},
	}
}

// fillDefaults replaces zero values left by a partial config file.
func (c *Config) fillDefaults() {
	d := Default()

	if c.Game.NoticeSeconds <= 0 {
		c.Game.NoticeSeconds = d.Game.NoticeSeconds
	}
	if len(c.Game.WinMessages) == 0 {
		c.Game.WinMessages = d.Game.WinMessages
	}

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Theme.Correct, d.Theme.Correct)
	fill(&c.Theme.Present, d.Theme.Present)
	fill(&c.Theme.Absent, d.Theme.Absent)
	fill(&c.Theme.Empty, d.Theme.Empty)
	fill(&c.Theme.Border, d.Theme.Border)
	fill(&c.Theme.Text, d.Theme.Text)
	fill(&c.Theme.Accent, d.Theme.Accent)
}
