package logger

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface used across the app.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

// New builds a Logger writing to stderr at the given level.
// Unknown levels fall back to info.
func New(level string) Logger {
	l := charmlog.New(os.Stderr)
	l.SetReportTimestamp(true)
	l.SetLevel(parseLevel(level))
	return &charmLogger{l: l}
}

// Nop returns a logger that discards everything, for tests.
func Nop() Logger {
	l := charmlog.New(os.Stderr)
	l.SetLevel(charmlog.FatalLevel)
	return &charmLogger{l: l}
}

func parseLevel(level string) charmlog.Level {
	switch level {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
