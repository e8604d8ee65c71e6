// Package logging builds the zap loggers used by the CLI and server and
// adapts them to the calculation engine's logger interface.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger for the given level and format. An empty
// level defaults to info; an empty format defaults to json.
func NewLogger(level, format string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	if format == "" {
		format = "json"
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	return config.Build()
}

// EngineLogger adapts a zap logger to the calculation engine's printf-style
// interface.
type EngineLogger struct {
	sugar *zap.SugaredLogger
}

// NewEngineLogger wraps l for use as a calculation.Logger. A nil l produces an
// adapter over zap.NewNop().
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &EngineLogger{sugar: l.Sugar()}
}

func (el *EngineLogger) Debugf(format string, args ...any) { el.sugar.Debugf(format, args...) }
func (el *EngineLogger) Infof(format string, args ...any)  { el.sugar.Infof(format, args...) }
func (el *EngineLogger) Warnf(format string, args ...any)  { el.sugar.Warnf(format, args...) }
func (el *EngineLogger) Errorf(format string, args ...any) { el.sugar.Errorf(format, args...) }
