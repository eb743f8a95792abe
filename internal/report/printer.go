// Package report prints case results for people.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/concrete"
	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/prettyprinter"
	"github.com/funvibe/patcover/internal/suite"
)

// Printer writes one line per case. Failing cases, and every case in
// verbose mode, are followed by their clause table.
type Printer struct {
	out     io.Writer
	color   bool
	verbose bool
}

func NewPrinter(out io.Writer, color, verbose bool) *Printer {
	return &Printer{out: out, color: color, verbose: verbose}
}

func (p *Printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + colorReset
}

// PrintFile prints the header of a fixture file.
func (p *Printer) PrintFile(path string) {
	fmt.Fprintln(p.out, p.paint(colorDim, "== "+path))
}

// PrintResults prints results in order. previous maps case ids to the
// verdicts of an earlier run; a case whose verdict differs is flagged.
// previous may be nil.
func (p *Printer) PrintResults(results []*suite.Result, previous map[string]string) {
	for _, r := range results {
		p.printResult(r, previous)
	}
}

func (p *Printer) printResult(r *suite.Result, previous map[string]string) {
	var line strings.Builder
	if r.Pass {
		line.WriteString(p.paint(colorGreen, "PASS"))
	} else {
		line.WriteString(p.paint(colorRed, "FAIL"))
	}
	line.WriteString(" ")
	line.WriteString(r.Case.ID())
	line.WriteString(": ")
	line.WriteString(r.Verdict())
	if !r.Pass {
		line.WriteString(", want ")
		line.WriteString(r.Case.Expected())
	}
	if was, ok := previous[r.Case.ID()]; ok && was != r.Verdict() {
		line.WriteString(" ")
		line.WriteString(p.paint(colorYellow, "(was "+was+")"))
	}
	fmt.Fprintln(p.out, line.String())

	if !r.Pass || p.verbose {
		p.printTable(r)
	}
}

// printTable renders the patterns of a case. Bindings are named once per
// case so the same binding reads the same in every row.
func (p *Printer) printTable(r *suite.Result) {
	c := r.Case
	t := newTable(c)

	switch c.Kind {
	case config.CoverageKind, config.CoveringKind:
		fmt.Fprintf(p.out, "    params: %s\n", c.Params)
		for i, row := range c.Rows {
			fmt.Fprintf(p.out, "    %d | %s\n", i, t.row(row))
		}
		if c.Kind == config.CoveringKind {
			fmt.Fprintf(p.out, "    row: %s\n", t.row(c.Row))
			for i, subst := range r.Substs {
				fmt.Fprintf(p.out, "    %d: %s\n", r.Indices[i], t.subst(subst))
			}
		}
	case config.RefinesKind, config.UnifyKind:
		fmt.Fprintf(p.out, "    params: %s\n", c.Params)
		fmt.Fprintf(p.out, "    left:  %s\n", t.row(c.Left))
		fmt.Fprintf(p.out, "    right: %s\n", t.row(c.Right))
		if r.Got && r.LeftSubst != nil {
			fmt.Fprintf(p.out, "    left bindings:  %s\n", t.subst(r.LeftSubst))
			fmt.Fprintf(p.out, "    right bindings: %s\n", t.subst(r.RightSubst))
		}
	}
}

// PrintErrors prints diagnostics, one per line.
func (p *Printer) PrintErrors(errs []error) {
	for _, err := range errs {
		fmt.Fprintln(p.out, p.paint(colorRed, "ERROR")+" "+err.Error())
	}
}

// PrintSummary prints the totals of a run.
func (p *Printer) PrintSummary(s suite.Summary, errors int) {
	status := p.paint(colorGreen, "ok")
	if s.Failed > 0 || errors > 0 {
		status = p.paint(colorRed, "FAILED")
	}
	fmt.Fprintf(p.out, "%s: %d passed, %d failed", status, s.Passed, s.Failed)
	if errors > 0 {
		fmt.Fprintf(p.out, ", %d errors", errors)
	}
	fmt.Fprintln(p.out)
}

type table struct {
	renamer concrete.Renamer
	factory concrete.Factory
	cache   map[*core.Binding]*ast.Identifier
}

func newTable(c *suite.Case) *table {
	var taken func(string) bool
	if c.Scope != nil {
		taken = c.Scope.IsGlobal
	}
	return &table{
		renamer: concrete.NewRenamer(taken),
		factory: concrete.NewFactory(),
		cache:   make(map[*core.Binding]*ast.Identifier),
	}
}

func (t *table) row(row []pattern.Pattern) string {
	return prettyprinter.PrintPatterns(concrete.ToConcreteRow(row, t.renamer, t.factory, t.cache))
}

func (t *table) subst(s *pattern.Subst) string {
	parts := make([]string, 0, s.Len())
	for _, b := range s.Keys() {
		image, _ := s.Get(b)
		name := prettyprinter.Print(concrete.ToConcrete(pattern.Bind(b), t.renamer, t.factory, t.cache))
		value := prettyprinter.Print(concrete.ToConcrete(image, t.renamer, t.factory, t.cache))
		parts = append(parts, name+" := "+value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
