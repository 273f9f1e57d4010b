package serializer

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/docwriter/result"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	loggerMu   sync.RWMutex
)

// Logger returns the package logger. It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMu.Unlock()
	})
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the package logger. A nil logger restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerOnce.Do(func() {})
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// LogReporter returns a reporting callback that writes one entry per
// diagnostic and leaves the status unchanged. Failures are logged at warn
// level, everything else at debug level.
func LogReporter(l *zap.Logger) result.ReportFunc {
	return func(message string, status result.Status, path string) result.Status {
		fields := []zap.Field{
			zap.String("path", path),
			zap.Stringer("task", status.Task),
			zap.Stringer("outcome", status.Outcome),
		}
		if status.Failed() {
			l.Warn(message, fields...)
		} else {
			l.Debug(message, fields...)
		}
		return status
	}
}
