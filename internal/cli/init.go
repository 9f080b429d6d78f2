package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/fleet/internal/paths"
	"github.com/mesh-intelligence/fleet/pkg/types"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and write config.yaml with default values if it does not exist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}
}

func runInit(cmd *cobra.Command, opts *options) error {
	configDir, err := paths.ResolveConfigDir(opts.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configPath)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", configPath)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. An existing file is left untouched and reported as not
// written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := types.DefaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
