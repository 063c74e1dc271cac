package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
)

// colorEnabled tracks whether color output is enabled.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Success renders a message for an operation that went through.
func Success(s string) string {
	return wrap(colorGreen, s)
}

// Failure renders a message for a rejected or failed operation.
func Failure(s string) string {
	return wrap(colorRed, s)
}

// Heading renders a section title.
func Heading(s string) string {
	return wrap(colorBold, s)
}

// Status picks the success or failure message for a store result.
func Status(ok bool, success, failure string) string {
	if ok {
		return Success(success)
	}
	return Failure(failure)
}

func wrap(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}
