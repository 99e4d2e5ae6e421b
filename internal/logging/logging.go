// Package logging provides the application logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates a console logger; verbose enables debug output.
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return &Logger{zap.NewNop().Sugar()}
	}
	return &Logger{logger.Sugar()}
}
