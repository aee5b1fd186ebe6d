// Package ui holds the terminal palette and the log helpers used across
// orbitfield.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Palette
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

const prefix = "orbitfield: "

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects log output. tty mode sends it to io.Discard while
// tcell owns the terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func logf(c *color.Color, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	c.Fprintf(out, prefix+format+"\n", args...)
}

// Logf prints an informational line.
func Logf(format string, args ...any) { logf(Info, format, args...) }

// Warnf prints a non-fatal problem.
func Warnf(format string, args ...any) { logf(Warn, format, args...) }

// Errorf prints an error.
func Errorf(format string, args ...any) { logf(Bad, format, args...) }

// Banner prints the startup line.
func Banner(page string, w, h int) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", Brand.Sprint("orbitfield"), Subtle.Sprintf("page=%s %dx%d", page, w, h))
}
