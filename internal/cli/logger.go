package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/fleet/pkg/types"
)

// newLogger builds a zap logger from the log settings. Output is "stderr",
// "stdout" or a file path.
func newLogger(cfg types.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Format == types.LogFormatConsole {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Format
	zc.Sampling = nil
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{cfg.Output}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
