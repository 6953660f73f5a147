package config

import "time"

// Config represents the application configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Download DownloadConfig `mapstructure:"download" yaml:"download"`
	Combine  CombineConfig  `mapstructure:"combine" yaml:"combine"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory  string `mapstructure:"directory" yaml:"directory"`
	ReportName string `mapstructure:"report_name" yaml:"report_name"`
}

// DownloadConfig contains download settings
type DownloadConfig struct {
	Branch     string        `mapstructure:"branch" yaml:"branch"`
	ReadmeName string        `mapstructure:"readme_name" yaml:"readme_name"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries"`
	CloneDepth int           `mapstructure:"clone_depth" yaml:"clone_depth"`
	Token      string        `mapstructure:"token" yaml:"token"`
	UserAgent  string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// CombineConfig contains settings for the combine step
type CombineConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Filename string `mapstructure:"filename" yaml:"filename"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and backfills out-of-range values
func (c *Config) Validate() error {
	if c.Output.ReportName == "" {
		c.Output.ReportName = DefaultReportName
	}
	if c.Download.Branch == "" {
		c.Download.Branch = DefaultBranch
	}
	if c.Download.ReadmeName == "" {
		c.Download.ReadmeName = DefaultReadmeName
	}
	if c.Download.Timeout < time.Second {
		c.Download.Timeout = DefaultTimeout
	}
	if c.Download.MaxRetries < 0 {
		c.Download.MaxRetries = DefaultMaxRetries
	}
	if c.Download.CloneDepth < 1 {
		c.Download.CloneDepth = DefaultCloneDepth
	}
	if c.Combine.Filename == "" {
		c.Combine.Filename = DefaultCombinedName
	}
	return nil
}
