// Package observe provides collection observers: a structured logger and a
// Prometheus metrics recorder.
package observe

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/fleet/internal/collection"
)

// Logger returns an observer that writes one log entry per event: debug on
// success, warn on failure. A nil logger is replaced by a no-op logger.
func Logger(logger *zap.Logger) collection.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return collection.ObserverFunc(func(e collection.Event) {
		fields := []zap.Field{
			zap.String("op", e.Op),
			zap.Stringer("call_id", e.CallID),
			zap.Any("args", e.Args),
			zap.Duration("duration", e.Duration),
		}
		if e.Err != nil {
			logger.Warn("operation failed", append(fields, zap.Error(e.Err))...)
			return
		}
		result := zap.Any("result", e.Result)
		if s, ok := e.Result.(fmt.Stringer); ok {
			result = zap.Stringer("result", s)
		}
		logger.Debug("operation completed", append(fields, result)...)
	})
}
