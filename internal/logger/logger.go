// Package logger provides levelled stderr logging for the raylink CLI.
// Warnings are always printed; -v adds info messages and -vv adds debug
// output showing how each deeplink is assembled.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level controls which messages are printed.
type Level int

// Levels in increasing verbosity.
const (
	LevelWarn Level = iota
	LevelInfo
	LevelDebug
)

var (
	mu     sync.RWMutex
	level  = LevelWarn
	output io.Writer = os.Stderr
)

// SetLevel sets the verbosity level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetVerbosity maps a -v flag count to a level.
func SetVerbosity(count int) {
	switch {
	case count >= 2:
		SetLevel(LevelDebug)
	case count == 1:
		SetLevel(LevelInfo)
	default:
		SetLevel(LevelWarn)
	}
}

// CurrentLevel returns the verbosity level.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// IsVerbose returns true if info messages are printed.
func IsVerbose() bool {
	return CurrentLevel() >= LevelInfo
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// logf holds the write lock so concurrent messages never interleave.
func logf(min Level, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level >= min {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message at debug level.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Section prints a section header at debug level.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if level >= LevelDebug {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints a message at info level.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a warning. Warnings are printed at every level.
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}
