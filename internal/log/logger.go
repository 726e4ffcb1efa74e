// Package log provides structured logging for the ferry application,
// backed by logrus. The TUI owns the terminal, so the default sink is
// io.Discard; enabling debug mode redirects output to a log file.
package log

import (
	"io"
	"os"

	"ferry/internal/errors"

	"github.com/sirupsen/logrus"
)

var logger = NewLogger()

// Field is a single structured logging key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger
type Logger struct {
	lr   *logrus.Logger
	file *os.File
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput directs log output to the given writer
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.lr.SetOutput(w)
	}
}

// WithJSON switches the log format to JSON
func WithJSON() Option {
	return func(l *Logger) {
		l.lr.SetFormatter(&logrus.JSONFormatter{})
	}
}

// WithFile appends log output to the named file, creating it if needed.
// Falls back to the current output if the file cannot be opened.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.lr.Warnf("cannot open log file %s: %v", path, err)
			return
		}
		l.file = f
		l.lr.SetOutput(f)
	}
}

// NewLogger creates a Logger. With no options the output is discarded,
// which is the right default for a fullscreen TUI.
func NewLogger(opts ...Option) *Logger {
	lr := logrus.New()
	lr.SetOutput(io.Discard)
	lr.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l := &Logger{lr: lr}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the global logger's settings
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

// SetDebug toggles debug-level logging on the global logger
func SetDebug(debug bool) {
	if debug {
		logger.lr.SetLevel(logrus.DebugLevel)
	} else {
		logger.lr.SetLevel(logrus.InfoLevel)
	}
}

// Close releases the log file if one was opened
func Close() {
	if logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
}

// Entry is a logrus entry carrying accumulated fields
type Entry = logrus.Entry

// With returns an entry with the given fields attached
func (l *Logger) With(fields ...Field) *Entry {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return l.lr.WithFields(lf)
}

func (l *Logger) Info(args ...interface{})                  { l.lr.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.lr.Infof(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.lr.Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.lr.Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.lr.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.lr.Errorf(format, args...) }
func (l *Logger) Debug(args ...interface{})                 { l.lr.Debug(args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.lr.Debugf(format, args...) }

// Package-level logging on the global logger

func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warn(args ...interface{})                  { logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// LogWithFields returns a global-logger entry with the given fields
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError returns an entry annotated with the error and, where the
// error carries them, its kind and paths
func LogWithError(err error) *Entry {
	fields := []Field{F("error", err)}

	var listErr *errors.ListingError
	var trErr *errors.TransferError
	var cfgErr *errors.ConfigError
	var appErr *errors.ApplicationError

	switch {
	case errors.As(err, &listErr):
		fields = append(fields, F("error_kind", int(listErr.Kind())), F("path", listErr.Path()))
	case errors.As(err, &trErr):
		fields = append(fields, F("error_kind", int(trErr.Kind())),
			F("source", trErr.Source()), F("dest", trErr.Dest()))
	case errors.As(err, &cfgErr):
		fields = append(fields, F("error_kind", int(cfgErr.Kind())), F("param", cfgErr.Param()))
	case errors.As(err, &appErr):
		fields = append(fields, F("error_kind", int(appErr.Kind())))
	}

	return logger.With(fields...)
}
