package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Output defaults
	DefaultOutputDir  = "./readmes"
	DefaultReportName = "download_report.txt"

	// Download defaults
	DefaultBranch     = "main"
	DefaultReadmeName = "README.md"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultCloneDepth = 1

	// Combine defaults
	DefaultCombinedName = "combined_readmes.md"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".readmedl"
	}
	return filepath.Join(home, ".readmedl")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Directory:  DefaultOutputDir,
			ReportName: DefaultReportName,
		},
		Download: DownloadConfig{
			Branch:     DefaultBranch,
			ReadmeName: DefaultReadmeName,
			Timeout:    DefaultTimeout,
			MaxRetries: DefaultMaxRetries,
			CloneDepth: DefaultCloneDepth,
		},
		Combine: CombineConfig{
			Filename: DefaultCombinedName,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
