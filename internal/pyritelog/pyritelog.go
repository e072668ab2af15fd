// ==============================================================================================
// FILE: internal/pyritelog/pyritelog.go
// ==============================================================================================
// PACKAGE: pyritelog
// PURPOSE: The process-wide structured logger, wrapping go.uber.org/zap, with its verbosity
//          configurable from one place (see config.Config.LogLevel). The REPL logs evaluation
//          failures through it; the CLI's fatal error message is written to stderr directly.
// ==============================================================================================

package pyritelog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.Mutex
	log *zap.SugaredLogger
)

// Init installs the process-wide logger at the given level ("debug",
// "info", "warn", "error"; anything unrecognized falls back to "info").
// Safe to call more than once: each call replaces the logger.
func Init(level string) {
	mu.Lock()
	defer mu.Unlock()

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = ""

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	log = logger.Sugar()
}

// L returns the process-wide logger, initializing a default info-level
// one on first use if Init was never called.
func L() *zap.SugaredLogger {
	mu.Lock()
	needsInit := log == nil
	mu.Unlock()
	if needsInit {
		Init("info")
	}
	mu.Lock()
	defer mu.Unlock()
	return log
}

// Sync flushes any buffered log entries; call before process exit.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if log != nil {
		_ = log.Sync()
	}
}
