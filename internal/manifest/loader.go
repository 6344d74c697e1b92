package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads stack files of arbitrary shape
type Loader struct{}

// NewLoader creates a new stack file loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes a stack file from the given path. The decoded
// value keeps whatever shape the file has; use ExtractPaths to resolve it
// into a flat path list.
func (l *Loader) Load(path string) (any, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stack file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes decodes stack data from raw bytes based on extension
func (l *Loader) LoadFromBytes(data []byte, ext string) (any, error) {
	ext = strings.ToLower(ext)

	var doc any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	return doc, nil
}
