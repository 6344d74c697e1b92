package copier

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/stackkit-go/internal/utils"
	"github.com/schollz/progressbar/v3"
)

// Outcome is the per-path result of a copy attempt
type Outcome int

const (
	// OutcomeCopied indicates the file was copied
	OutcomeCopied Outcome = iota
	// OutcomeSkipped indicates the source file does not exist
	OutcomeSkipped
	// OutcomeFailed indicates an I/O error during the copy
	OutcomeFailed
)

// Result records the outcome for a single manifest path
type Result struct {
	Path    string
	Outcome Outcome
	Dest    string
	Err     error
}

// Stats aggregates a copy batch
type Stats struct {
	Copied  int
	Skipped int
	Failed  int
}

// Total returns the number of paths processed
func (s Stats) Total() int {
	return s.Copied + s.Skipped + s.Failed
}

// SuccessRate returns the percentage of paths that were copied
func (s Stats) SuccessRate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Copied) / float64(s.Total()) * 100
}

// Copier copies manifest-listed files from a repository root into a
// destination root, preserving relative paths.
type Copier struct {
	repoRoot string
	destRoot string
	log      *utils.Logger
	progress bool
}

// Options contains options for creating a copier
type Options struct {
	RepoRoot string
	// DestDir is used as-is when absolute, otherwise resolved against
	// RepoRoot.
	DestDir  string
	Logger   *utils.Logger
	Progress bool
}

// New creates a new copier
func New(opts Options) *Copier {
	destRoot := opts.DestDir
	if !filepath.IsAbs(destRoot) {
		destRoot = filepath.Join(opts.RepoRoot, destRoot)
	}

	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}

	return &Copier{
		repoRoot: opts.RepoRoot,
		destRoot: destRoot,
		log:      log.WithComponent("copier"),
		progress: opts.Progress,
	}
}

// Dest returns the resolved destination root
func (c *Copier) Dest() string {
	return c.destRoot
}

// CopyAll copies every path in order. Missing sources are counted as
// skips and I/O errors as failures; the batch never aborts early. Every
// skip and failure is logged individually.
func (c *Copier) CopyAll(paths []string) ([]Result, Stats) {
	results := make([]Result, 0, len(paths))
	var stats Stats

	var bar *progressbar.ProgressBar
	if c.progress {
		bar = utils.NewProgressBar(len(paths), utils.DescCopying)
	}

	for _, path := range paths {
		res := c.copyOne(path)
		results = append(results, res)

		switch res.Outcome {
		case OutcomeCopied:
			stats.Copied++
		case OutcomeSkipped:
			stats.Skipped++
			c.log.Warn().Str("path", res.Path).Msg("source not found, skipping")
		case OutcomeFailed:
			stats.Failed++
			c.log.Warn().Str("path", res.Path).Err(res.Err).Msg("copy failed")
		}

		if c.progress {
			_ = bar.Add(1)
		}
	}
	if c.progress {
		_ = bar.Finish()
	}

	return results, stats
}

// copyOne copies a single relative path. Manifest paths use backslash
// separators; both separators are accepted and normalized to the host.
func (c *Copier) copyOne(path string) Result {
	rel := filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
	src := filepath.Join(c.repoRoot, rel)
	dest := filepath.Join(c.destRoot, rel)

	if _, err := os.Stat(src); err != nil {
		return Result{Path: path, Outcome: OutcomeSkipped, Dest: dest}
	}

	if err := utils.EnsureDir(dest); err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Dest: dest, Err: err}
	}
	if err := utils.CopyFile(src, dest); err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Dest: dest, Err: err}
	}

	return Result{Path: path, Outcome: OutcomeCopied, Dest: dest}
}
