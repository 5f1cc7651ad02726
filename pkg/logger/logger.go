// pkg/logger/logger.go

package logger

import (
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	log   *zap.Logger
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// L returns the process-wide logger, or nil if none has been installed.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger installs the given logger as the zap and otelzap global.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// GetLogger returns the installed logger, initializing the fallback if needed.
func GetLogger() *zap.Logger {
	if l := L(); l != nil {
		return l
	}
	InitFallback()
	return L()
}

// SetLevel adjusts the level of the installed logger at runtime.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// SetDebug maps the --debug count flag onto log verbosity. Zero leaves the
// configured level alone, one raises to info, two or more to debug.
func SetDebug(count int) {
	switch {
	case count >= 2:
		SetLevel(zapcore.DebugLevel)
	case count == 1:
		SetLevel(zapcore.InfoLevel)
	}
}

// Sync flushes any buffered log entries.
func Sync() error {
	if l := L(); l != nil {
		return l.Sync()
	}
	return nil
}
