// Package ui prints status lines for the flowgenie command.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	boldColor    = color.New(color.Bold)
)

// Output is where status lines go. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

// IsInteractive reports whether f is a terminal a full-screen view can take over.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DisableColor turns colored output off, e.g. when stdout is piped.
func DisableColor() {
	color.NoColor = true
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	successColor.Fprintf(Output, "✓ %s\n", fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	errorColor.Fprintf(Output, "✗ %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	infoColor.Fprintf(Output, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// PrintBold prints a bold line
func PrintBold(format string, args ...interface{}) {
	boldColor.Fprintln(Output, fmt.Sprintf(format, args...))
}
