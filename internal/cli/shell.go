package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/fleet/internal/collection"
	"github.com/mesh-intelligence/fleet/internal/observe"
	"github.com/mesh-intelligence/fleet/internal/paths"
	"github.com/mesh-intelligence/fleet/internal/shell"
)

func newShellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

// runShell is the composition root: it loads configuration, builds the logger,
// the collection and its observers, and runs the shell on the command's
// input and output.
func runShell(cmd *cobra.Command, opts *options) error {
	configDir, err := paths.ResolveConfigDir(opts.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.noColor {
		cfg.Color = false
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	metrics, err := observe.NewMetrics()
	if err != nil {
		return err
	}

	store := collection.Observe(collection.New(),
		observe.Logger(logger.Named("collection")),
		metrics,
	)

	sh := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithColor(cfg.Color),
		shell.WithLogger(logger.Named("shell")),
	)
	if err := sh.Run(); err != nil {
		return err
	}

	summary, err := metrics.Summary()
	if err != nil {
		logger.Warn("collect session summary", zap.Error(err))
		return nil
	}
	logger.Info("session summary", zap.Any("operations", summary))
	return nil
}
