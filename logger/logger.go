// Package logger provides the process-wide zap sugared logger.
// Log output goes to stderr so it never mixes with the report on stdout.
package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
)

func initLoggerInternal() {
	if lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level.SetLevel(lvl)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	zapLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	logger = zapLogger.Sugar()
}

// GetLogger returns the shared logger, initializing it on first use.
func GetLogger() *zap.SugaredLogger {
	once.Do(initLoggerInternal)
	return logger
}

// SetLevel changes the level of the shared logger. Unknown names leave it unchanged.
func SetLevel(name string) error {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(lvl)
	return nil
}

// Close flushes buffered entries
func Close() {
	if logger != nil {
		// Sync on a console file handle returns EINVAL on some platforms; nothing to do about it.
		_ = logger.Sync()
	}
}

// MaskAPIKey hides a provider key for logs and error text, keeping the last
// four characters so two keys can still be told apart. Short keys are hidden entirely.
func MaskAPIKey(key string) string {
	const visible = 4
	switch {
	case key == "":
		return ""
	case len(key) <= 2*visible:
		return "..."
	default:
		return "..." + key[len(key)-visible:]
	}
}
