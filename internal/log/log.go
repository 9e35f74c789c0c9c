// Package log is the logger used by the raadgen command, backed by zap.
// Library packages never log; they return errors and warnings as values.
package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging contract of the command
type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	// With returns a Logger with additional key value pairs
	With(args ...interface{}) Logger
	Sync() error
}

type logger struct {
	sugar *zap.SugaredLogger
}

// ParseLevel converts a level name (debug, info, warn, error) into a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// NewLogger returns a console logger writing to stderr at the given level
func NewLogger(level string) (Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.TimeKey = ""

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &logger{sugar: z.Sugar()}, nil
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() Logger {
	return &logger{sugar: zap.NewNop().Sugar()}
}

// New wraps an existing zap logger. Caller annotations skip the wrapper.
func New(z *zap.Logger) Logger {
	return &logger{sugar: z.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *logger) Debug(msg string) { l.sugar.Debug(msg) }

func (l *logger) Debugf(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

func (l *logger) Info(msg string) { l.sugar.Info(msg) }

func (l *logger) Infof(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

func (l *logger) Warn(msg string) { l.sugar.Warn(msg) }

func (l *logger) Warnf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

func (l *logger) Error(msg string) { l.sugar.Error(msg) }

func (l *logger) Errorf(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

func (l *logger) With(args ...interface{}) Logger {
	return &logger{sugar: l.sugar.With(args...)}
}

func (l *logger) Sync() error {
	return l.sugar.Sync()
}
