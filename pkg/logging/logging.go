// Package logging sets up the shared diagnostic logger. Command output goes
// to stdout; everything logged here goes to stderr so results stay pipeable.
// Set TEND_DEBUG to any value to see debug lines.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide diagnostic logger.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           defaultLevel(),
})

func defaultLevel() log.Level {
	if os.Getenv("TEND_DEBUG") != "" {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// Debug logs a debug message
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// WithPrefix returns a logger with a prefix
func WithPrefix(prefix string) *log.Logger {
	return Logger.WithPrefix(prefix)
}
