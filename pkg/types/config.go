package types

import (
	"errors"
	"strings"
)

// Config holds the runtime settings of the fleet CLI.
type Config struct {
	Log   LogConfig `json:"log" yaml:"log" mapstructure:"log"`
	Color bool      `json:"color" yaml:"color" mapstructure:"color"`
}

// LogConfig selects the level, encoding and destination of log output.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"`
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// Supported log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config validation errors.
var (
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
	ErrLogOutputEmpty   = errors.New("log output must not be empty")
)

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var knownLogFormats = map[string]bool{
	LogFormatConsole: true,
	LogFormatJSON:    true,
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: LogFormatConsole,
			Output: "stderr",
		},
		Color: true,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !knownLogLevels[strings.ToLower(c.Log.Level)] {
		return ErrLogLevelUnknown
	}
	if !knownLogFormats[strings.ToLower(c.Log.Format)] {
		return ErrLogFormatUnknown
	}
	if c.Log.Output == "" {
		return ErrLogOutputEmpty
	}
	return nil
}
