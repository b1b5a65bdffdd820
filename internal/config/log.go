package config

import "strings"

// Log formats understood by obslog.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	LogFormatLegacy  = "legacy"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Caller  bool   `yaml:"caller"`
	Console bool   `yaml:"console"`
	// File is an optional path; empty disables file output.
	File string `yaml:"file"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:   "info",
		Format:  LogFormatConsole,
		Console: true,
	}
}

func (c *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return invalid("log.level %q", c.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "", LogFormatConsole, LogFormatJSON, LogFormatLegacy:
	default:
		return invalid("log.format %q", c.Format)
	}
	return nil
}
