// Package log provides colored console logging for the helloworld command
// and its helpers.
package log

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes prefixed, colored lines to a single writer.
// Debug lines are dropped unless verbose is set.
type Logger struct {
	w       io.Writer
	verbose bool

	red    *color.Color
	blue   *color.Color
	yellow *color.Color
}

// New returns a Logger writing to w.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{
		w:       w,
		verbose: verbose,
		red:     color.New(color.FgRed),
		blue:    color.New(color.FgBlue),
		yellow:  color.New(color.FgYellow),
	}
}

// SetColor forces colors on or off, overriding terminal detection.
func (l *Logger) SetColor(on bool) {
	for _, c := range []*color.Color{l.red, l.blue, l.yellow} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// SetVerbose toggles Debug output.
func (l *Logger) SetVerbose(v bool) { l.verbose = v }

// Verbose reports whether Debug output is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

// Error prints an error message in red.
func (l *Logger) Error(format string, a ...interface{}) {
	l.red.Fprintf(l.w, "[!] Error: "+format+"\n", a...)
}

// Info prints an informational message in blue.
func (l *Logger) Info(format string, a ...interface{}) {
	l.blue.Fprintf(l.w, "[+] "+format+"\n", a...)
}

// Debug prints a message in yellow when verbose.
func (l *Logger) Debug(format string, a ...interface{}) {
	if !l.verbose {
		return
	}
	l.yellow.Fprintf(l.w, "[*] "+format+"\n", a...)
}

var std = New(os.Stderr, false)

// Default returns the process-wide logger writing to stderr.
func Default() *Logger { return std }

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) { std.Error(format, a...) }
