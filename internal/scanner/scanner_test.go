package scanner

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/stackkit-go/internal/manifest"
	"github.com/quantmind-br/stackkit-go/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *utils.Logger {
	return utils.NewLogger(utils.LoggerOptions{Level: "error", Output: io.Discard})
}

func newTestScanner(root string) *Scanner {
	return New(Options{
		RepoRoot:    root,
		ShallowDirs: []string{"skills", "plugins"},
		Logger:      quietLogger(),
	})
}

func TestScanner_Scan_DeepWithDescriptions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "agents", "reviewer.md"),
		"---\ndescription: Reviews pull requests\n---\n# Reviewer\n")
	writeFile(t, filepath.Join(root, "agents", "nested", "helper.md"),
		"# No frontmatter\n")

	stack, stats, err := newTestScanner(root).Scan([]string{"agents"})
	require.NoError(t, err)

	require.Len(t, stack.Files, 2)
	assert.Equal(t, manifest.FileEntry{
		Type:        "agents",
		Path:        `agents\nested\helper.md`,
		Description: "",
	}, stack.Files[0])
	assert.Equal(t, manifest.FileEntry{
		Type:        "agents",
		Path:        `agents\reviewer.md`,
		Description: "Reviews pull requests",
	}, stack.Files[1])

	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, 1, stats.DirectoriesScanned)
	assert.Equal(t, 1, stats.FilesWithDescription)
	assert.Equal(t, 1, stats.FilesWithoutDescription())
	assert.InDelta(t, 50.0, stats.DescriptionRate(), 0.01)
}

func TestScanner_Scan_ShallowListsSubdirsOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "skills", "search", "SKILL.md"),
		"---\ndescription: should not be read\n---\n")
	writeFile(t, filepath.Join(root, "skills", "browse", "SKILL.md"), "")
	// Loose file directly under a shallow category is not listed
	writeFile(t, filepath.Join(root, "skills", "README.md"), "")

	stack, _, err := newTestScanner(root).Scan([]string{"skills"})
	require.NoError(t, err)

	require.Len(t, stack.Files, 2)
	assert.Equal(t, manifest.FileEntry{Type: "skills", Path: `skills\browse`}, stack.Files[0])
	assert.Equal(t, manifest.FileEntry{Type: "skills", Path: `skills\search`}, stack.Files[1])
}

func TestScanner_Scan_DirectoriesInConfiguredOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "prompts", "p.md"), "")
	writeFile(t, filepath.Join(root, "agents", "a.md"), "")

	stack, _, err := newTestScanner(root).Scan([]string{"prompts", "agents"})
	require.NoError(t, err)

	require.Len(t, stack.Files, 2)
	assert.Equal(t, "prompts", stack.Files[0].Type)
	assert.Equal(t, "agents", stack.Files[1].Type)
}

func TestScanner_Scan_SkipsMissingDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "agents", "a.md"), "")

	stack, stats, err := newTestScanner(root).Scan([]string{"agents", "instructions", "hooks"})
	require.NoError(t, err)

	assert.Len(t, stack.Files, 1)
	assert.Equal(t, 1, stats.DirectoriesScanned)
}

func TestScanner_Scan_RootNotFound(t *testing.T) {
	sc := newTestScanner(filepath.Join(t.TempDir(), "missing"))

	stack, _, err := sc.Scan([]string{"agents"})

	assert.Nil(t, stack)
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestScanner_Scan_NoFiles(t *testing.T) {
	root := t.TempDir()

	stack, _, err := newTestScanner(root).Scan([]string{"agents", "prompts"})

	assert.Nil(t, stack)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestScanner_Scan_EmptyDescriptionRate(t *testing.T) {
	var stats Stats
	assert.Equal(t, 0.0, stats.DescriptionRate())
}

func TestScanner_Scan_NonMarkdownFilesIncluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "hooks", "pre-commit.sh"), "#!/bin/sh\n")

	stack, _, err := newTestScanner(root).Scan([]string{"hooks"})
	require.NoError(t, err)

	require.Len(t, stack.Files, 1)
	assert.Equal(t, `hooks\pre-commit.sh`, stack.Files[0].Path)
	assert.Equal(t, "", stack.Files[0].Description)
}
