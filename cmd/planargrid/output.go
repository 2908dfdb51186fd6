package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"

	"github.com/planargrid/planargrid/cliconfig"
	"github.com/planargrid/planargrid/diagram"
	"github.com/planargrid/planargrid/parser"
)

// colorEnabled resolves the effective color mode against whether stdout is
// actually a terminal, the way cliconfig.ColorAuto is documented to behave.
func colorEnabled(mode cliconfig.ColorMode) bool {
	switch mode {
	case cliconfig.ColorAlways:
		return true
	case cliconfig.ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// printJSON marshals v as indented JSON to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printParseSummary renders a parser.Result as a colorized plain-text
// summary, or plain text when color is disabled.
func printParseSummary(w io.Writer, res *parser.Result, useColor bool) {
	label := plainLabel
	if useColor {
		label = colorLabel
	}

	fmt.Fprintln(w, label("anchors", fmt.Sprintf("%d", len(res.Anchors))))
	for p, a := range res.Anchors {
		_, bullet := res.Bullets[p]
		fmt.Fprintf(w, "  %s  kind=%s bullet=%t\n", p, a.Kind, bullet)
	}

	fmt.Fprintln(w, label("segments", fmt.Sprintf("%d", len(res.Segments))))
	for _, s := range res.Segments {
		fmt.Fprintf(w, "  %s -> %s  kind=%s draw=%s\n", s.Start, s.End, s.Kind, s.Draw)
	}
}

// printExtractSummary renders the cycles and filaments of a Diagram.
func printExtractSummary(w io.Writer, d *diagram.Diagram, useColor bool) {
	label := plainLabel
	if useColor {
		label = colorLabel
	}

	fmt.Fprintln(w, label("cycles", fmt.Sprintf("%d", len(d.Cycles))))
	for i, c := range d.Cycles {
		fmt.Fprintf(w, "  [%d] %v\n", i, c)
	}

	fmt.Fprintln(w, label("filaments", fmt.Sprintf("%d", len(d.Filaments))))
	for i, f := range d.Filaments {
		fmt.Fprintf(w, "  [%d] %v\n", i, f)
	}
}

func plainLabel(name, count string) string {
	return fmt.Sprintf("%s: %s", name, count)
}

func colorLabel(name, count string) string {
	return color.Bold.Render(name+":") + " " + color.Green.Render(count)
}
