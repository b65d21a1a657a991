package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates the process logger. Debug enables debug-level output;
// quiet raises the floor to warnings for scripted runs.
func NewLogger(debug, quiet bool) *zap.Logger {
	config := zap.NewProductionConfig()

	switch {
	case debug:
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case quiet:
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		panic("failed to initialize logging: " + err.Error())
	}
	return log
}
