package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRepoRootNotFound indicates the configured repository root does not
// exist or is not a directory
var ErrRepoRootNotFound = errors.New("repository root not found")

// Config represents the application configuration. It is built once per
// invocation (CLI flags > environment > defaults) and passed into each
// operation; nothing reads configuration from process-wide state after
// load.
type Config struct {
	RepoRoot string        `mapstructure:"repo_root" yaml:"repo_root"`
	Scan     ScanConfig    `mapstructure:"scan" yaml:"scan"`
	Output   OutputConfig  `mapstructure:"output" yaml:"output"`
	Copy     CopyConfig    `mapstructure:"copy" yaml:"copy"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ScanConfig contains generator scan settings
type ScanConfig struct {
	Dirs        []string `mapstructure:"dirs" yaml:"dirs"`
	ShallowDirs []string `mapstructure:"shallow_dirs" yaml:"shallow_dirs"`
}

// OutputConfig contains generator output settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Filename  string `mapstructure:"filename" yaml:"filename"`
}

// CopyConfig contains copier settings
type CopyConfig struct {
	StackDir string `mapstructure:"stack_dir" yaml:"stack_dir"`
	DestDir  string `mapstructure:"dest_dir" yaml:"dest_dir"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate backfills empty values with defaults
func (c *Config) Validate() error {
	if c.RepoRoot == "" {
		c.RepoRoot = DefaultRepoRoot
	}
	if len(c.Scan.Dirs) == 0 {
		c.Scan.Dirs = DefaultScanDirs
	}
	if len(c.Scan.ShallowDirs) == 0 {
		c.Scan.ShallowDirs = DefaultShallowDirs
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Output.Filename == "" {
		c.Output.Filename = DefaultOutputFilename
	}
	if c.Copy.StackDir == "" {
		c.Copy.StackDir = DefaultStackDir
	}
	if c.Copy.DestDir == "" {
		c.Copy.DestDir = DefaultDestDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// VerifyRepoRoot checks that the repository root exists
func (c *Config) VerifyRepoRoot() error {
	info, err := os.Stat(c.RepoRoot)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s (set REPO_ROOT or --repo-root to override)", ErrRepoRootNotFound, c.RepoRoot)
	}
	return nil
}

// OutputPath returns the generator's full output path
func (c *Config) OutputPath() string {
	return filepath.Join(c.Output.Directory, c.Output.Filename)
}

// StackFilePath returns the copier's stack file path for a source
// identifier, e.g. "java" resolves to <stack_dir>/stack-java.json.
func (c *Config) StackFilePath(source string) string {
	return filepath.Join(c.Copy.StackDir, fmt.Sprintf("stack-%s.json", source))
}
