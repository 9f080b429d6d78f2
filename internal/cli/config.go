package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/fleet/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Environment variables are FLEET_ followed by the key with dots as
	// underscores, e.g. FLEET_LOG_LEVEL.
	envPrefix = "FLEET"

	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"
	cfgKeyLogOutput = "log.output"
	cfgKeyColor     = "color"

	flagLogLevel = "log-level"
)

// loadConfig reads config.yaml from configDir, applies FLEET_ environment
// overrides and the --log-level flag, and validates the result. A missing
// config.yaml is not an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, def.Log.Level)
	v.SetDefault(cfgKeyLogFormat, def.Log.Format)
	v.SetDefault(cfgKeyLogOutput, def.Log.Output)
	v.SetDefault(cfgKeyColor, def.Color)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup(flagLogLevel); f != nil {
			if err := v.BindPFlag(cfgKeyLogLevel, f); err != nil {
				return types.Config{}, fmt.Errorf("bind flag %s: %w", flagLogLevel, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Log: types.LogConfig{
			Level:  strings.ToLower(v.GetString(cfgKeyLogLevel)),
			Format: strings.ToLower(v.GetString(cfgKeyLogFormat)),
			Output: v.GetString(cfgKeyLogOutput),
		},
		Color: v.GetBool(cfgKeyColor),
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
