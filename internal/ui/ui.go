package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// Printer writes status lines, colored only when the destination is a terminal.
type Printer struct {
	w     io.Writer
	color bool
	quiet bool
}

// New returns a Printer for w. Colors are enabled when w is a terminal.
func New(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{w: w, color: color}
}

// SetQuiet suppresses success lines. Errors and warnings are still printed.
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

func (p *Printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + ColorReset
}

func (p *Printer) PrintHeader(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, "%s\n", p.paint(ColorBold, msg))
}

func (p *Printer) PrintSuccess(label, detail string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, "  %s %-10s %s\n", p.paint(ColorGreen, "✔"), label, p.paint(ColorGreen, detail))
}

func (p *Printer) PrintError(label, detail string) {
	fmt.Fprintf(p.w, "  %s %-10s %s\n", p.paint(ColorRed, "✘"), label, p.paint(ColorRed, detail))
}

func (p *Printer) PrintWarning(label, detail string) {
	fmt.Fprintf(p.w, "  %s %-10s %s\n", p.paint(ColorYellow, "!"), label, p.paint(ColorYellow, detail))
}
