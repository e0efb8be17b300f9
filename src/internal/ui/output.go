// Package ui provides colored diagnostic output for the plugin CLI.
// Everything is written to stderr because stdout carries the JSON
// responses read by the host.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions for different message types
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	debugColor   = color.New(color.FgHiBlack)

	// Symbols
	successSymbol = "✓"
	errorSymbol   = "✗"
	warningSymbol = "⚠"
	infoSymbol    = "→"
	debugSymbol   = "·"

	verboseMode bool

	output io.Writer = os.Stderr
)

// VerboseEnv enables debug output when set to "1" or "true".
const VerboseEnv = "PROTO_PLUGIN_CRYSTAL_VERBOSE"

// SetOutput redirects all diagnostic output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// SetVerbose toggles debug output
func SetVerbose(v bool) {
	verboseMode = v
}

// CheckVerboseEnv enables verbose mode if VerboseEnv is set
func CheckVerboseEnv() {
	switch strings.ToLower(os.Getenv(VerboseEnv)) {
	case "1", "true":
		verboseMode = true
	}
}

// Success prints a success message in green with a checkmark
func Success(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = successColor.Fprintf(output, "%s %s\n", successSymbol, message)
}

// Error prints an error message in red with an X
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = errorColor.Fprintf(output, "%s %s\n", errorSymbol, message)
}

// Warning prints a warning message in yellow with a warning symbol
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = warningColor.Fprintf(output, "%s %s\n", warningSymbol, message)
}

// Info prints an info message in cyan with an arrow
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = infoColor.Fprintf(output, "%s %s\n", infoSymbol, message)
}

// Debug prints a message only when verbose mode is on
func Debug(format string, args ...interface{}) {
	if !verboseMode {
		return
	}
	message := fmt.Sprintf(format, args...)
	_, _ = debugColor.Fprintf(output, "%s %s\n", debugSymbol, message)
}

// HighlightVersion returns a version string in a highlighted color
func HighlightVersion(version string) string {
	return color.New(color.FgMagenta, color.Bold).Sprint(version)
}
