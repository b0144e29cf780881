// Package logger provides leveled diagnostic logging for the quantum CLI.
// Diagnostics go to a separate writer (stderr when verbose) so they never
// interleave with the console protocol on stdout.
package logger

import (
	"io"
	"log"
)

// Logger provides leveled logging with an event helper.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger writing every level to w.
func New(w io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmicroseconds
	return &Logger{
		infoLogger:  log.New(w, "[VAULT-INFO] ", flags),
		warnLogger:  log.New(w, "[VAULT-WARN] ", flags),
		errorLogger: log.New(w, "[VAULT-ERROR] ", flags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Event logs one session action against an object.
func (l *Logger) Event(action string, entityID string, details string) {
	l.infoLogger.Printf("[EVENT:%s] Object:%s | %s", action, entityID, details)
}
