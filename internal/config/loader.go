package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (READMEDL_*)
	v.SetEnvPrefix("READMEDL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// GITHUB_TOKEN is the conventional fallback for the download token
	if cfg.Download.Token == "" {
		cfg.Download.Token = os.Getenv("GITHUB_TOKEN")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.directory", DefaultOutputDir)
	v.SetDefault("output.report_name", DefaultReportName)

	// Download defaults
	v.SetDefault("download.branch", DefaultBranch)
	v.SetDefault("download.readme_name", DefaultReadmeName)
	v.SetDefault("download.timeout", DefaultTimeout)
	v.SetDefault("download.max_retries", DefaultMaxRetries)
	v.SetDefault("download.clone_depth", DefaultCloneDepth)
	v.SetDefault("download.token", "")
	v.SetDefault("download.user_agent", "")

	// Combine defaults
	v.SetDefault("combine.enabled", false)
	v.SetDefault("combine.filename", DefaultCombinedName)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
