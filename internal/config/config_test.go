package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory so no user config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Vocabulary.Path)
	assert.Equal(t, 1.4, cfg.Game.NoticeSeconds)
	assert.Equal(t, []string{"Genius!", "Magnificent!", "Splendid!", "Great!"}, cfg.Game.WinMessages)
	assert.Equal(t, "28", cfg.Theme.Correct)
	assert.Equal(t, 1400*time.Millisecond, cfg.NoticeDuration())
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
vocabulary:
  path: /srv/words.json
  answer: crane
game:
  seed: 42
  win_messages: ["Nice!"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/words.json", cfg.Vocabulary.Path)
	assert.Equal(t, "crane", cfg.Vocabulary.Answer)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, []string{"Nice!"}, cfg.Game.WinMessages)

	// Omitted values fall back to defaults
	assert.Equal(t, 1.4, cfg.Game.NoticeSeconds)
	assert.Equal(t, "178", cfg.Theme.Present)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("game: [unclosed"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".wordle")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("game:\n  seed: 7\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Game.Seed)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("WORDLE_VOCAB", "/tmp/words.txt")
	t.Setenv("WORDLE_ANSWER", "slate")
	t.Setenv("WORDLE_SEED", "99")
	t.Setenv("WORDLE_NOTICE_SECONDS", "2.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/words.txt", cfg.Vocabulary.Path)
	assert.Equal(t, "slate", cfg.Vocabulary.Answer)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, 2500*time.Millisecond, cfg.NoticeDuration())
}

func TestLoadDotEnv(t *testing.T) {
	// Missing file is fine
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDLE_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("WORDLE_TEST_DOTENV", "")
	os.Unsetenv("WORDLE_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("WORDLE_TEST_DOTENV"))
}
