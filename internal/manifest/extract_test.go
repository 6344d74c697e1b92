package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPaths_String(t *testing.T) {
	assert.Equal(t, []string{"a/b.md"}, ExtractPaths("a/b.md"))
}

func TestExtractPaths_PathMappings(t *testing.T) {
	data := []any{
		map[string]any{"path": "x"},
		map[string]any{"path": "y"},
	}

	assert.Equal(t, []string{"x", "y"}, ExtractPaths(data))
}

func TestExtractPaths_EmptyMapping(t *testing.T) {
	assert.Empty(t, ExtractPaths(map[string]any{}))
}

func TestExtractPaths_FilesDelegation(t *testing.T) {
	// extract({"files": X}) == extract(X) for any X
	inner := []any{
		"bare/path.md",
		map[string]any{"path": "agents\\reviewer.md"},
		map[string]any{"files": []any{map[string]any{"path": "nested.md"}}},
		42,
	}

	assert.Equal(t, ExtractPaths(inner), ExtractPaths(map[string]any{"files": inner}))
}

func TestExtractPaths_FullManifest(t *testing.T) {
	data := map[string]any{
		"files": []any{
			map[string]any{"type": "agents", "path": "agents\\a.md", "description": "first"},
			map[string]any{"type": "prompts", "path": "prompts\\b.md", "description": ""},
		},
	}

	assert.Equal(t, []string{"agents\\a.md", "prompts\\b.md"}, ExtractPaths(data))
}

func TestExtractPaths_MappingWithNonStringPath(t *testing.T) {
	assert.Empty(t, ExtractPaths(map[string]any{"path": 7}))
}

func TestExtractPaths_OtherShapes(t *testing.T) {
	assert.Empty(t, ExtractPaths(nil))
	assert.Empty(t, ExtractPaths(3.14))
	assert.Empty(t, ExtractPaths(true))
}

func TestExtractPaths_SequenceOrder(t *testing.T) {
	data := []any{
		"first.md",
		map[string]any{"files": []any{"second.md"}},
		map[string]any{"path": "third.md"},
	}

	assert.Equal(t, []string{"first.md", "second.md", "third.md"}, ExtractPaths(data))
}

func TestStack_Paths(t *testing.T) {
	stack := &Stack{Files: []FileEntry{
		{Type: "agents", Path: "agents\\a.md"},
		{Type: "prompts", Path: "prompts\\b.md"},
	}}

	assert.Equal(t, []string{"agents\\a.md", "prompts\\b.md"}, stack.Paths())
}
