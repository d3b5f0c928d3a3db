// Package logging builds the zap logger. Every error a view swallows
// (sync failures, summary load failures, train failures) ends up here.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/idilsaglam/packup/internal/config"
)

// New returns a file-backed logger. When no log file can be set up,
// a no-op logger is returned together with the error so the client
// still runs.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
		return zap.NewNop(), fmt.Errorf("log dir: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := zc.Build()
	if err != nil {
		return zap.NewNop(), fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
