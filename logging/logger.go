// Package logging builds the zap logger shared by the roboshep hosts.
// Interactive hosts own the terminal, so logs go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"roboshep/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger writing JSON lines to cfg.File. verbose
// forces debug level. An empty File disables logging.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
