package vocab

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/tui-wordle/internal/storage"
)

//go:embed words/default.txt
var defaultWords []byte

// Default returns the built-in vocabulary.
func Default() (*Vocabulary, error) {
	words, err := ParseText(defaultWords)
	if err != nil {
		return nil, fmt.Errorf("vocab: built-in list: %w", err)
	}
	return New(words)
}

// Load reads a vocabulary resource, choosing the parser from the extension.
// An empty path loads the built-in list.
//
// A missing file yields an error wrapping fs.ErrNotExist. Resources that
// cannot be parsed yield ErrMalformed, and resources without a single valid
// word yield ErrEmpty.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default()
	}

	resolved, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("vocab: %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("vocab: %s: %w: is a directory", path, ErrMalformed)
	}

	format, err := FormatForPath(resolved)
	if err != nil {
		return nil, fmt.Errorf("vocab: %s: %w", path, err)
	}

	words, err := readWords(resolved, format)
	if err != nil {
		return nil, fmt.Errorf("vocab: %s: %w", path, err)
	}

	v, err := New(words)
	if err != nil {
		return nil, fmt.Errorf("vocab: %s: %w", path, err)
	}
	return v, nil
}

// readWords returns the raw entries of a resource in the given format.
func readWords(path string, format Format) ([]string, error) {
	if format == FormatSQLite {
		return readSQLite(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	default:
		return ParseText(data)
	}
}

func readSQLite(path string) ([]string, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	defer store.Close()

	return store.Words()
}

// IsNotExist reports whether err was caused by a missing resource.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Provider supplies a vocabulary. Sessions call Load at start and on reload.
type Provider interface {
	Load() (*Vocabulary, error)
}

// FileProvider reads the resource at Path on every Load.
// An empty Path means the built-in list.
type FileProvider struct {
	Path string
}

// Load reads the vocabulary from disk.
func (p FileProvider) Load() (*Vocabulary, error) {
	return Load(p.Path)
}

// StaticProvider always returns the same, already loaded vocabulary.
type StaticProvider struct {
	Vocabulary *Vocabulary
}

// Load returns the stored vocabulary.
func (p StaticProvider) Load() (*Vocabulary, error) {
	if p.Vocabulary == nil {
		return nil, ErrEmpty
	}
	return p.Vocabulary, nil
}
