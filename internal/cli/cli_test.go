package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/fleet/pkg/types"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when config.yaml is missing", func(t *testing.T) {
		cfg, err := loadConfig(t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, types.DefaultConfig(), cfg)
	})

	t.Run("values from config.yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log:\n  level: debug\n  format: json\n  output: stdout\ncolor: false\n")

		cfg, err := loadConfig(dir, nil)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, types.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.False(t, cfg.Color)
	})

	t.Run("environment overrides config.yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log:\n  level: debug\n")
		t.Setenv("FLEET_LOG_LEVEL", "ERROR")

		cfg, err := loadConfig(dir, nil)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("FLEET_LOG_LEVEL", "error")
		cmd := NewRootCmd()
		require.NoError(t, cmd.PersistentFlags().Set(flagLogLevel, "info"))

		cfg, err := loadConfig(t.TempDir(), cmd.PersistentFlags())
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("unset flag keeps default", func(t *testing.T) {
		cmd := NewRootCmd()
		cfg, err := loadConfig(t.TempDir(), cmd.PersistentFlags())
		require.NoError(t, err)
		assert.Equal(t, types.DefaultConfig().Log.Level, cfg.Log.Level)
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log:\n  level: loud\n")

		_, err := loadConfig(dir, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrLogLevelUnknown)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log: [unclosed\n")

		_, err := loadConfig(dir, nil)
		assert.ErrorContains(t, err, "read config")
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("console and json formats build", func(t *testing.T) {
		for _, format := range []string{types.LogFormatConsole, types.LogFormatJSON} {
			logger, err := newLogger(types.LogConfig{Level: "info", Format: format, Output: "stderr"})
			require.NoError(t, err, format)
			assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
			assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		}
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fleet.log")
		logger, err := newLogger(types.LogConfig{Level: "debug", Format: types.LogFormatJSON, Output: path})
		require.NoError(t, err)
		logger.Info("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := newLogger(types.LogConfig{Level: "loud", Format: types.LogFormatJSON, Output: "stderr"})
		assert.Error(t, err)
	})
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")

	out, err := run(t, "", "init", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to")

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	var cfg types.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.DefaultConfig(), cfg)

	t.Run("second run leaves the file alone", func(t *testing.T) {
		writeConfig(t, dir, "color: false\n")

		out, err := run(t, "", "init", "--config-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration already exists")

		data, err := os.ReadFile(filepath.Join(dir, configFileExt))
		require.NoError(t, err)
		assert.Equal(t, "color: false\n", string(data))
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fleet v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestShellSession(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log:\n  level: error\n")

	// Add a car, list, then exit.
	input := strings.Join([]string{
		"1", "3", "Model 3", "250", "Tesla", "AB123", "4", "Electric",
		"3",
		"5",
	}, "\n") + "\n"

	for _, args := range [][]string{
		{"--config-dir", dir, "--no-color"},
		{"shell", "--config-dir", dir, "--no-color"},
	} {
		out, err := run(t, input, args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, `Added: Car{name="Model 3"`)
		assert.Contains(t, out, `0: Car{name="Model 3" maxSpeed=250 manufacturer="Tesla"`)
		assert.Contains(t, out, "Shutting down...")
	}
}

func TestShellSession_EOFExits(t *testing.T) {
	out, err := run(t, "", "--config-dir", t.TempDir(), "--no-color", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Add")
}

func TestShellSession_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log:\n  format: xml\n")

	_, err := run(t, "5\n", "--config-dir", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLogFormatUnknown)
}
