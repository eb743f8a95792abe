// Package suite holds elaborated queries, ready to be run through the
// coverage checker, and their results.
package suite

import (
	"fmt"
	"strings"

	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/symbols"
)

// Case is one query of a fixture with every pattern elaborated.
type Case struct {
	Kind   string // config.CoverageKind, CoveringKind, RefinesKind or UnifyKind
	Name   string
	Params *core.Telescope

	// Rows are the clauses of a coverage case or the existing rows of a
	// covering case.
	Rows [][]pattern.Pattern
	// Row is the new row of a covering case.
	Row []pattern.Pattern
	// Left and Right are the rows compared by refines and unify cases.
	Left, Right []pattern.Pattern

	// Want is the expected answer of coverage, refines and unify cases.
	Want bool
	// WantCovered and WantIndices are the expected answer of a covering case.
	WantCovered bool
	WantIndices []int

	// Scope resolves the names used by the case; renderers use it to keep
	// binding names apart from definitions.
	Scope *symbols.SymbolTable
}

// ID identifies a case within its fixture.
func (c *Case) ID() string {
	return c.Kind + "/" + c.Name
}

// Expected renders the expected verdict.
func (c *Case) Expected() string {
	if c.Kind == config.CoveringKind {
		return coveringVerdict(c.WantIndices, c.WantCovered)
	}
	return boolVerdict(c.Kind, c.Want)
}

// Result is the outcome of running a Case.
type Result struct {
	Case *Case
	Pass bool

	// Got is the answer of coverage, refines and unify cases, and whether
	// the row was covered for covering cases.
	Got bool
	// Indices and Substs are filled for covered covering cases.
	Indices []int
	Substs  []*pattern.Subst
	// LeftSubst and RightSubst are filled for unify cases.
	LeftSubst, RightSubst *pattern.Subst
}

// Verdict renders the actual answer in the same form as Case.Expected.
func (r *Result) Verdict() string {
	if r.Case.Kind == config.CoveringKind {
		return coveringVerdict(r.Indices, r.Got)
	}
	return boolVerdict(r.Case.Kind, r.Got)
}

func boolVerdict(kind string, b bool) string {
	var yes, no string
	switch kind {
	case config.CoverageKind:
		yes, no = "covers", "does not cover"
	case config.RefinesKind:
		yes, no = "refines", "does not refine"
	case config.UnifyKind:
		yes, no = "unifies", "does not unify"
	default:
		yes, no = "true", "false"
	}
	if b {
		return yes
	}
	return no
}

func coveringVerdict(indices []int, covered bool) string {
	if !covered {
		return "uncovered"
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprint(idx)
	}
	return "covered by [" + strings.Join(parts, ", ") + "]"
}

// Summary counts results.
type Summary struct {
	Passed int
	Failed int
}

func Summarize(results []*Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Pass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
