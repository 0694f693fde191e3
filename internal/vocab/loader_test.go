package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// writeFile creates a file with content in a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadJSONObject(t *testing.T) {
	path := writeFile(t, "vocabulary.json", `{"Crane": 1, "slate": {"freq": 2}, "toolong": 3, "12345": 4}`)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, v.Words())
}

func TestLoadJSONArray(t *testing.T) {
	path := writeFile(t, "vocabulary.json", `["pivot", "PIVOT", "crane", 42, null, "abc"]`)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "pivot"}, v.Words())
}

func TestLoadJSONMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `{"crane": `},
		{"scalar document", `"crane"`},
		{"number document", `12`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "vocabulary.json", tc.content))
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoadJSONNoValidWords(t *testing.T) {
	_, err := Load(writeFile(t, "vocabulary.json", `["a", "toolong", "12345"]`))
	require.ErrorIs(t, err, ErrEmpty)
	assert.Contains(t, err.Error(), "vocabulary.json", "error should name the resource")
}

func TestLoadText(t *testing.T) {
	content := "# answers\ncrane\n\nSLATE\n  pivot  \nbad\n"

	for _, name := range []string{"words.txt", "words.list", "words"} {
		t.Run(name, func(t *testing.T) {
			v, err := Load(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, []string{"crane", "pivot", "slate"}, v.Words())
		})
	}
}

func TestLoadYAML(t *testing.T) {
	t.Run("document", func(t *testing.T) {
		v, err := Load(writeFile(t, "words.yaml", "name: small\nwords:\n  - crane\n  - Slate\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "slate"}, v.Words())
	})

	t.Run("bare sequence", func(t *testing.T) {
		v, err := Load(writeFile(t, "words.yml", "- crane\n- pivot\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "pivot"}, v.Words())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeFile(t, "words.yaml", "words: [crane\n"))
		require.ErrorIs(t, err, ErrMalformed)
	})
}

func TestLoadSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "words.db")
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	_, err = store.ReplaceWords([]string{"crane", "slate", "bad"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	v, err := Load(dbPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, v.Words())
}

func TestLoadSQLiteNotADatabase(t *testing.T) {
	_, err := Load(writeFile(t, "words.db", "this is not a sqlite file, just some text padding it out well past the header size"))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(writeFile(t, "words.csv", "crane,slate"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadDefault(t *testing.T) {
	v, err := Load("")
	require.NoError(t, err)

	assert.Greater(t, v.Len(), 100)
	assert.True(t, v.Contains("crane"))
	assert.True(t, v.Contains("slate"))
	for _, w := range v.Words() {
		_, ok := Normalize(w)
		require.True(t, ok, "built-in word %q is invalid", w)
	}
}

func TestFileProviderReloads(t *testing.T) {
	path := writeFile(t, "words.txt", "crane\n")
	p := FileProvider{Path: path}

	v, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())

	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o600))

	v, err = p.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len(), "provider should re-read the resource")
}

func TestStaticProvider(t *testing.T) {
	v := MustNew("crane")

	got, err := StaticProvider{Vocabulary: v}.Load()
	require.NoError(t, err)
	assert.Same(t, v, got)

	_, err = StaticProvider{}.Load()
	require.ErrorIs(t, err, ErrEmpty)
}
