// Package logs holds the process-wide debug logger. It is silent until
// Initialize points it at a file, so command output and the full-screen UI
// are never interleaved with log lines.
package logs

import (
	"sync"

	"go.uber.org/zap"
)

var (
	Logger = zap.NewNop()
	mu     sync.Mutex
)

// Initialize switches Logger to a JSON logger appending to path. An empty
// path keeps logging disabled.
func Initialize(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l
	Logger.Debug("logger initialized", zap.String("path", path))
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	_ = Logger.Sync()
}
