package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/quantmind-br/stackkit-go/internal/config"
	"github.com/quantmind-br/stackkit-go/internal/copier"
	"github.com/quantmind-br/stackkit-go/internal/manifest"
	"github.com/quantmind-br/stackkit-go/internal/utils"
	"github.com/quantmind-br/stackkit-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	source  string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stackcopy",
	Short: "Copy files referenced by a stack manifest",
	Long: `Stackcopy reads a stack-<source>.json manifest, extracts the file
paths it references, and copies each file from the repository root into
a destination folder, preserving relative paths and modification times.

Missing source files are skipped and I/O failures are counted; the batch
never aborts early. Configuration precedence is CLI flags, then
environment variables (REPO_ROOT, STACK_DIR, DEST_DIR), then defaults.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&source, "source", "", "Stack identifier (e.g. 'java') to load stack-<source>.json")
	rootCmd.PersistentFlags().String("repo-root", config.DefaultRepoRoot, "Repository root directory")
	rootCmd.PersistentFlags().String("stack-dir", config.DefaultStackDir, "Directory containing stack files")
	rootCmd.PersistentFlags().String("dest", config.DefaultDestDir, "Destination folder (relative to repo root or absolute)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	_ = rootCmd.MarkPersistentFlagRequired("source")

	_ = viper.BindPFlag("repo_root", rootCmd.PersistentFlags().Lookup("repo-root"))
	_ = viper.BindPFlag("copy.stack_dir", rootCmd.PersistentFlags().Lookup("stack-dir"))
	_ = viper.BindPFlag("copy.dest_dir", rootCmd.PersistentFlags().Lookup("dest"))

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// Load .env before viper reads the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	stackPath := cfg.StackFilePath(source)

	log.Info().
		Str("repo_root", cfg.RepoRoot).
		Str("stack_file", stackPath).
		Str("dest", cfg.Copy.DestDir).
		Msg("configuration")

	if err := cfg.VerifyRepoRoot(); err != nil {
		return err
	}

	loader := manifest.NewLoader()
	doc, err := loader.Load(stackPath)
	if err != nil {
		return err
	}

	paths := manifest.ExtractPaths(doc)
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s", manifest.ErrNoPaths, stackPath)
	}

	c := copier.New(copier.Options{
		RepoRoot: cfg.RepoRoot,
		DestDir:  cfg.Copy.DestDir,
		Logger:   log,
		Progress: !verbose,
	})

	log.Info().Int("count", len(paths)).Str("dest", c.Dest()).Msg("copying files")

	results, stats := c.CopyAll(paths)

	for _, res := range results {
		if res.Outcome != copier.OutcomeCopied {
			continue
		}
		if rel, err := filepath.Rel(cfg.RepoRoot, res.Dest); err == nil {
			log.Debug().Str("path", rel).Msg("copied")
		} else {
			log.Debug().Str("path", res.Dest).Msg("copied")
		}
	}

	log.Info().
		Int("copied", stats.Copied).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Str("success_rate", fmt.Sprintf("%.1f%%", stats.SuccessRate())).
		Msg("copy complete")

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
