// Package diagfmt renders diagnostics for humans. Formatting lives here so
// diag stays a pure data model.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"nimble/internal/diag"
	"nimble/internal/source"
)

// Options control rendering.
type Options struct {
	Color bool
	Notes bool
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Pretty writes the bag's diagnostics in emission order, one line each:
// <path>:<line>:<col>: <SEVERITY> <CODE>: <message>
// Notes follow indented when Options.Notes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) {
	if bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		fmt.Fprintln(w, Line(d, fs, opts))
		if !opts.Notes {
			continue
		}
		for _, n := range d.Notes {
			file := fs.Get(n.Span.File)
			pos := file.Position(n.Span.Start)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, pos.Line, pos.Col, n.Msg)
		}
	}
}

// Line renders a single diagnostic without a trailing newline.
func Line(d diag.Diagnostic, fs *source.FileSet, opts Options) string {
	file := fs.Get(d.Primary.File)
	pos := file.Position(d.Primary.Start)
	return fmt.Sprintf("%s:%d:%d: %s %s: %s",
		file.Path, pos.Line, pos.Col,
		severityLabel(d.Severity, opts.Color), d.Code, d.Message)
}
