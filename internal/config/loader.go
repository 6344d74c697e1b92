package config

import (
	"github.com/spf13/viper"
)

// Environment variable bindings. These are fixed names (no prefix):
// each sits below an explicit CLI flag and above the hard-coded default.
var envBindings = map[string]string{
	"repo_root":        "REPO_ROOT",
	"scan.dirs":        "STACK_DIRS",
	"output.filename":  "STACK_OUTPUT",
	"output.directory": "OUTPUT_DIR",
	"copy.stack_dir":   "STACK_DIR",
	"copy.dest_dir":    "DEST_DIR",
}

// Load loads configuration from flags, environment, config file, and
// defaults. Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration from the given viper instance
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Optional config file in the working directory
	v.SetConfigName("stackkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("repo_root", DefaultRepoRoot)
	v.SetDefault("scan.dirs", DefaultScanDirs)
	v.SetDefault("scan.shallow_dirs", DefaultShallowDirs)
	v.SetDefault("output.directory", DefaultOutputDir)
	v.SetDefault("output.filename", DefaultOutputFilename)
	v.SetDefault("copy.stack_dir", DefaultStackDir)
	v.SetDefault("copy.dest_dir", DefaultDestDir)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
