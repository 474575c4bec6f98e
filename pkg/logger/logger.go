package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Logger is a printf-style leveled logger on top of slog.
type Logger struct {
	base  *slog.Logger
	info  *slog.Logger
	warn  *slog.Logger
	error *slog.Logger
}

func New() *Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo)
}

// NewWithWriter builds a Logger writing colored tint output to w.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    w != os.Stdout,
	})
	base := slog.New(handler)
	return &Logger{
		base:  base,
		info:  base,
		warn:  base,
		error: base,
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.base.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Log(context.Background(), slog.LevelError, fmt.Sprintf(format, args...))
}

// With returns a Logger that attaches the given key/value pairs to every record.
func (l *Logger) With(args ...interface{}) *Logger {
	base := l.base.With(args...)
	return &Logger{base: base, info: base, warn: base, error: base}
}

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger {
	return l.base
}
