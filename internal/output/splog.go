// Package output provides progress logging for the uprev pipeline.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// Splog provides structured logging and output
type Splog struct {
	writer  io.Writer
	colored bool
	verbose bool
}

// NewSplog creates a new splog instance writing to stdout.
// Colors are enabled only when stdout is a terminal.
func NewSplog() *Splog {
	return &Splog{
		writer:  os.Stdout,
		colored: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewSplogWithWriter creates a splog instance writing to w, without colors.
func NewSplogWithWriter(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// SetVerbose enables debug output
func (s *Splog) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Success writes a success message
func (s *Splog) Success(format string, args ...interface{}) {
	if s.colored {
		_, _ = successColor.Fprintf(s.writer, format+"\n", args...)
		return
	}
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	if s.colored {
		_, _ = warnColor.Fprintf(s.writer, "warning: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(s.writer, "warning: "+format+"\n", args...)
}

// Debug writes a debug message, shown only in verbose mode
func (s *Splog) Debug(format string, args ...interface{}) {
	if !s.verbose {
		return
	}
	if s.colored {
		_, _ = dimColor.Fprintf(s.writer, format+"\n", args...)
		return
	}
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
