package vocab

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies how a vocabulary resource is encoded.
type Format string

const (
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// FormatForPath picks a format from the file extension. Files without an
// extension are read as plain text.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case "", ".txt", ".list":
		return FormatText, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ParseJSON accepts either an object whose keys are words or an array of
// strings. Non-string array entries are skipped.
func ParseJSON(data []byte) ([]string, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch v := raw.(type) {
	case map[string]any:
		out := make([]string, 0, len(v))
		for k := range v {
			out = append(out, k)
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected a JSON object or array", ErrMalformed)
	}
}

// ParseText reads one word per line. Blank lines and '#' comments are skipped.
func ParseText(data []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// YAMLVocabulary is the document layout of a YAML vocabulary file.
type YAMLVocabulary struct {
	Name  string   `yaml:"name,omitempty"`
	Words []string `yaml:"words"`
}

// ParseYAML accepts a `words:` document or a bare sequence of strings.
func ParseYAML(data []byte) ([]string, error) {
	var doc YAMLVocabulary
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc.Words, nil
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return list, nil
}
