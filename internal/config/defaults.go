package config

// Default values
const (
	DefaultRepoRoot       = "."
	DefaultOutputDir      = "."
	DefaultOutputFilename = "stack.json"
	DefaultStackDir       = "."
	DefaultDestDir        = "github-base"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultScanDirs are the category directories scanned when none are
// configured
var DefaultScanDirs = []string{"agents", "instructions", "prompts", "skills", "plugins", "hooks"}

// DefaultShallowDirs are the categories listed as immediate
// subdirectories instead of recursive file trees
var DefaultShallowDirs = []string{"skills", "plugins"}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		RepoRoot: DefaultRepoRoot,
		Scan: ScanConfig{
			Dirs:        DefaultScanDirs,
			ShallowDirs: DefaultShallowDirs,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
			Filename:  DefaultOutputFilename,
		},
		Copy: CopyConfig{
			StackDir: DefaultStackDir,
			DestDir:  DefaultDestDir,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
