// Package logger provides the structured logging wrapper used by the
// structcompile driver and its tests. The compiler core itself never logs —
// it is a pure state machine — this package exists for the host-facing
// driver and diagnostics only.
package logger

import (
	"log"
	"os"
)

// Logger provides basic leveled logging functionality.
type Logger struct {
	*log.Logger
}

// NewLogger creates a new logger instance writing to stdout.
func NewLogger() *Logger {
	return &Logger{
		Logger: log.New(os.Stdout, "[STRUCTCOMPILE] ", log.LstdFlags|log.Lshortfile),
	}
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Printf("[DEBUG] "+format, args...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Printf("[INFO] "+format, args...)
}

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Printf("[WARN] "+format, args...)
}

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Printf("[ERROR] "+format, args...)
}
