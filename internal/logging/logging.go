// Package logging builds the zap logger used by the kadane CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/admirerr/DSA-Collection/internal/config"
)

// New creates a logger writing to w at the configured level and format.
func New(cfg config.LoggingConfig, w zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("failed to initialize logger: unknown format %q", cfg.Format)
	}

	return zap.New(zapcore.NewCore(encoder, w, zap.NewAtomicLevelAt(level))), nil
}
