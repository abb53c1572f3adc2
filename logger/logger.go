// Package logger provides a prefixed, leveled logger whose output mirrors
// the "[PREFIX] [LEVEL] message" lines used across the application.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes colored, prefixed lines at info, warning and error level.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger that tags each line with prefix, painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.ColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	)
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	l, _ := New("", "", io.Discard)
	return l
}
