package manifest

import (
	"encoding/json"
	"os"

	"github.com/quantmind-br/stackkit-go/internal/utils"
)

// Writer serializes a stack to a JSON file
type Writer struct {
	path string
}

// NewWriter creates a writer targeting the given output path
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write serializes the stack as pretty-printed JSON, creating parent
// directories as needed
func (w *Writer) Write(stack *Stack) error {
	data, err := json.MarshalIndent(stack, "", "  ")
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(w.path); err != nil {
		return err
	}

	return os.WriteFile(w.path, append(data, '\n'), 0644)
}

// Path returns the output path
func (w *Writer) Path() string {
	return w.path
}
