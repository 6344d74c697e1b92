package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/quantmind-br/stackkit-go/internal/config"
	"github.com/quantmind-br/stackkit-go/internal/manifest"
	"github.com/quantmind-br/stackkit-go/internal/scanner"
	"github.com/quantmind-br/stackkit-go/internal/utils"
	"github.com/quantmind-br/stackkit-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
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
	Use:   "stackgen",
	Short: "Generate a stack manifest from repository directories",
	Long: `Stackgen scans configured category directories under a repository
root, extracts the description field from each markdown file's YAML
frontmatter, and writes a stack.json manifest listing every file's
category, path, and description.

Configuration precedence is CLI flags, then environment variables
(REPO_ROOT, STACK_DIRS, STACK_OUTPUT, OUTPUT_DIR), then defaults.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	rootCmd.PersistentFlags().String("repo-root", config.DefaultRepoRoot, "Repository root directory")
	rootCmd.PersistentFlags().StringSlice("dirs", config.DefaultScanDirs, "Directories to scan")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputFilename, "Output filename")
	rootCmd.PersistentFlags().String("output-dir", config.DefaultOutputDir, "Output directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("repo_root", rootCmd.PersistentFlags().Lookup("repo-root"))
	_ = viper.BindPFlag("scan.dirs", rootCmd.PersistentFlags().Lookup("dirs"))
	_ = viper.BindPFlag("output.filename", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("output.directory", rootCmd.PersistentFlags().Lookup("output-dir"))

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

	log.Info().
		Str("repo_root", cfg.RepoRoot).
		Strs("dirs", cfg.Scan.Dirs).
		Str("output", cfg.OutputPath()).
		Msg("configuration")

	if err := cfg.VerifyRepoRoot(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", cfg.Output.Directory, err)
	}

	sc := scanner.New(scanner.Options{
		RepoRoot:    cfg.RepoRoot,
		ShallowDirs: cfg.Scan.ShallowDirs,
		Logger:      log,
	})

	stack, stats, err := sc.Scan(cfg.Scan.Dirs)
	if err != nil {
		return err
	}

	log.Info().
		Int("total_files", stats.TotalFiles).
		Int("directories_scanned", stats.DirectoriesScanned).
		Int("with_descriptions", stats.FilesWithDescription).
		Int("without_descriptions", stats.FilesWithoutDescription()).
		Str("description_rate", fmt.Sprintf("%.1f%%", stats.DescriptionRate())).
		Msg("scan complete")

	writer := manifest.NewWriter(cfg.OutputPath())
	if err := writer.Write(stack); err != nil {
		return fmt.Errorf("failed to write %s: %w", writer.Path(), err)
	}

	log.Info().Str("path", writer.Path()).Int("files", stats.TotalFiles).Msg("stack generated")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
