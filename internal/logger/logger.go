package logger

import (
	"io"
	"os"
)

// Log levels accepted by --log-level and the config file.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a logger writing to stderr; stdout is reserved for tables,
// charts and exports.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return newZapLogger(ErrorLevel, io.Discard)
}
