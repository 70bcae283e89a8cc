// Package logger provides leveled logging to stderr. Debug output is
// gated behind the verbose flag; everything else always prints.
package logger

import (
	"fmt"
	"os"
)

var verbose bool

// SetVerbose enables or disables debug output
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose reports whether debug output is enabled
func IsVerbose() bool {
	return verbose
}

// Debug prints a message only when verbose mode is enabled
func Debug(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational message
func Info(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Success prints a message with a checkmark
func Success(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "✓ "+format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
