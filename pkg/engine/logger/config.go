package logger

import (
	"os"
	"strconv"
)

// Config holds logging configuration. It is embedded under the `logging`
// key of the game config file.
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	Format         string `yaml:"format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// DefaultConfig logs INFO and above to a rotated file. The console is off
// because the terminal belongs to the renderer.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: false,
		Format:         "text",
		FileEnabled:    true,
		FilePath:       "logs/darkdelve.log",
		FileMaxSizeMB:  5,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// ApplyEnv overrides fields from LOG_LEVEL, LOG_FORMAT, LOG_FILE_ENABLED and
// LOG_FILE_PATH when they are set.
func (c *Config) ApplyEnv() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		c.Format = format
	}
	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			c.FileEnabled = enabled
		}
	}
	if path := os.Getenv("LOG_FILE_PATH"); path != "" {
		c.FilePath = path
	}
}
