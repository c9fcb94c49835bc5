package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is the minimum severity a logger writes
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps debug, info, warn and error to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger is the logging interface services depend on
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger writes through logrus
type DefaultLogger struct {
	level Level
	entry *logrus.Entry
}

// NewDefaultLogger creates a text logger on stderr
func NewDefaultLogger(level Level) *DefaultLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return &DefaultLogger{level: level, entry: logrus.NewEntry(l)}
}

// WithOutput redirects the logger, mainly for tests
func (l *DefaultLogger) WithOutput(w io.Writer) *DefaultLogger {
	l.entry.Logger.SetOutput(w)
	return l
}

// WithField returns a logger that tags every line with key=value
func (l *DefaultLogger) WithField(key string, value interface{}) *DefaultLogger {
	return &DefaultLogger{level: l.level, entry: l.entry.WithField(key, value)}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.entry.Debugf(format, v...)
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.entry.Infof(format, v...)
	}
}

func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	if l.level <= WarnLevel {
		l.entry.Warnf(format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.entry.Errorf(format, v...)
	}
}

type nop struct{}

func (nop) Debug(string, ...interface{}) {}
func (nop) Info(string, ...interface{})  {}
func (nop) Warn(string, ...interface{})  {}
func (nop) Error(string, ...interface{}) {}

// Nop discards everything
func Nop() Logger { return nop{} }
