// Package output formats CLI output. The printer's accent colors follow
// the active theme: the theme store applies changes here, and everything
// else just prints.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/stocktake-dev/stocktake/internal/cli/theme"
)

// Printer handles formatted output to the terminal.
type Printer struct {
	out    io.Writer
	err    io.Writer
	accent *color.Color
	dim    *color.Color
}

// NewPrinter creates a printer writing to stdout/stderr with light-theme
// accents.
func NewPrinter() *Printer {
	p := &Printer{out: os.Stdout, err: os.Stderr}
	p.Apply(theme.Light)
	return p
}

// NewPrinterWithWriter creates a printer writing everything to w.
func NewPrinterWithWriter(w io.Writer) *Printer {
	p := &Printer{out: w, err: w}
	p.Apply(theme.Light)
	return p
}

// Apply switches the accent palette. Satisfies theme.Applier, so the
// printer can be handed to the theme store directly.
func (p *Printer) Apply(t theme.Theme) {
	if t == theme.Dark {
		p.accent = color.New(color.FgHiCyan, color.Bold)
		p.dim = color.New(color.FgHiBlack)
		return
	}
	p.accent = color.New(color.FgBlue, color.Bold)
	p.dim = color.New(color.Faint)
}

// Out returns the writer plain output goes to, for table rendering.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Success prints a green checkmarked message.
func (p *Printer) Success(format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
}

// Error prints a red message to stderr.
func (p *Printer) Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
}

// Warning prints a yellow message to stderr.
func (p *Printer) Warning(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
}

// Print prints a plain message.
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a themed section header.
func (p *Printer) Header(title string) {
	p.accent.Fprintf(p.out, "%s\n", title)
}

// Dim prints a de-emphasized message.
func (p *Printer) Dim(format string, args ...interface{}) {
	p.dim.Fprintf(p.out, format+"\n", args...)
}
