package monitoring

import (
	"context"
	"fmt"
	"log/slog"
)

type logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Logger is the logging interface accepted by the With*Logger options.
type Logger = logger

func newNoopLogger() logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}

// NewSlogLogger adapts a *slog.Logger. A nil logger yields a no-op logger.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		return newNoopLogger()
	}
	return slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) logf(level slog.Level, format string, args ...interface{}) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.Log(ctx, level, fmt.Sprintf(format, args...))
}

func (s slogLogger) Debugf(format string, args ...interface{}) { s.logf(slog.LevelDebug, format, args...) }
func (s slogLogger) Infof(format string, args ...interface{})  { s.logf(slog.LevelInfo, format, args...) }
func (s slogLogger) Warnf(format string, args ...interface{})  { s.logf(slog.LevelWarn, format, args...) }
func (s slogLogger) Errorf(format string, args ...interface{}) { s.logf(slog.LevelError, format, args...) }
