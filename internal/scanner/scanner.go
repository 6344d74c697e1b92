package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quantmind-br/stackkit-go/internal/manifest"
	"github.com/quantmind-br/stackkit-go/internal/utils"
)

// Sentinel errors for the scanner package
var (
	// ErrRootNotFound indicates the repository root does not exist
	ErrRootNotFound = errors.New("repository root not found")

	// ErrNoFiles indicates no files were found in any scanned directory
	ErrNoFiles = errors.New("no files found in any directory")
)

// Scanner walks category directories under a repository root and builds
// stack entries from the files it finds.
type Scanner struct {
	repoRoot    string
	shallowDirs map[string]bool
	log         *utils.Logger
}

// Options contains options for creating a scanner
type Options struct {
	RepoRoot string
	// ShallowDirs are category names listed as immediate subdirectories
	// only, with no description extraction.
	ShallowDirs []string
	Logger      *utils.Logger
}

// Stats aggregates the outcome of a scan
type Stats struct {
	TotalFiles           int
	DirectoriesScanned   int
	FilesWithDescription int
}

// FilesWithoutDescription returns the count of entries with no description
func (s Stats) FilesWithoutDescription() int {
	return s.TotalFiles - s.FilesWithDescription
}

// DescriptionRate returns the percentage of entries with a description
func (s Stats) DescriptionRate() float64 {
	if s.TotalFiles == 0 {
		return 0
	}
	return float64(s.FilesWithDescription) / float64(s.TotalFiles) * 100
}

// New creates a new scanner
func New(opts Options) *Scanner {
	shallow := make(map[string]bool, len(opts.ShallowDirs))
	for _, d := range opts.ShallowDirs {
		shallow[d] = true
	}

	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}

	return &Scanner{
		repoRoot:    opts.RepoRoot,
		shallowDirs: shallow,
		log:         log.WithComponent("scanner"),
	}
}

// Scan processes the named category directories in order and returns the
// resulting stack. Directories that do not exist are warned about and
// skipped; a missing repository root or an empty result is an error.
func (s *Scanner) Scan(dirs []string) (*manifest.Stack, Stats, error) {
	var stats Stats

	if info, err := os.Stat(s.repoRoot); err != nil || !info.IsDir() {
		return nil, stats, fmt.Errorf("%w: %s", ErrRootNotFound, s.repoRoot)
	}

	stack := &manifest.Stack{}

	for _, dir := range dirs {
		dirPath := filepath.Join(s.repoRoot, dir)
		if info, err := os.Stat(dirPath); err != nil || !info.IsDir() {
			s.log.Warn().Str("dir", dirPath).Msg("directory not found, skipping")
			continue
		}

		entries, err := s.scanDir(dir, dirPath)
		if err != nil {
			return nil, stats, fmt.Errorf("failed to scan %s: %w", dirPath, err)
		}
		if len(entries) == 0 {
			continue
		}

		stack.Files = append(stack.Files, entries...)
		stats.DirectoriesScanned++
		s.log.WithCategory(dir).Info().Int("count", len(entries)).Msg("added entries")
	}

	for _, entry := range stack.Files {
		stats.TotalFiles++
		if entry.Description != "" {
			stats.FilesWithDescription++
		}
	}

	if stats.TotalFiles == 0 {
		return nil, stats, ErrNoFiles
	}

	return stack, stats, nil
}

// scanDir lists one category directory. Shallow categories yield their
// immediate subdirectories with empty descriptions; all others yield
// every file recursively, sorted, with frontmatter descriptions.
func (s *Scanner) scanDir(category, dirPath string) ([]manifest.FileEntry, error) {
	if s.shallowDirs[category] {
		return s.scanShallow(category, dirPath)
	}
	return s.scanDeep(category, dirPath)
}

func (s *Scanner) scanShallow(category, dirPath string) ([]manifest.FileEntry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var entries []manifest.FileEntry
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		entry, ok := s.newEntry(category, filepath.Join(dirPath, de.Name()), "")
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *Scanner) scanDeep(category, dirPath string) ([]manifest.FileEntry, error) {
	var paths []string
	err := filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var entries []manifest.FileEntry
	for _, path := range paths {
		entry, ok := s.newEntry(category, path, extractDescription(path))
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// newEntry builds a FileEntry for a path under the repository root.
// Paths outside the root are dropped.
func (s *Scanner) newEntry(category, path, description string) (manifest.FileEntry, bool) {
	rel, err := filepath.Rel(s.repoRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return manifest.FileEntry{}, false
	}

	return manifest.FileEntry{
		Type:        category,
		Path:        normalizePath(rel),
		Description: description,
	}, true
}

// normalizePath converts a relative path to the manifest's fixed
// backslash-separated form regardless of the host separator.
func normalizePath(rel string) string {
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", `\`)
}
