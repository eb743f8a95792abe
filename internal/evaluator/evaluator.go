// Package evaluator runs elaborated cases through the coverage checker.
package evaluator

import (
	"slices"

	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/suite"
)

// Evaluate answers the query of c and compares the answer with the
// expectation.
func Evaluate(c *suite.Case) *suite.Result {
	r := &suite.Result{Case: c}
	switch c.Kind {
	case config.CoverageKind:
		r.Got = pattern.CheckRowsCoverage(c.Rows, c.Params)
		r.Pass = r.Got == c.Want
	case config.CoveringKind:
		r.Indices, r.Substs, r.Got = pattern.ComputeCoveringSubst(c.Rows, c.Row)
		r.Pass = r.Got == c.WantCovered && (!r.Got || slices.Equal(r.Indices, c.WantIndices))
	case config.RefinesKind:
		r.Got = pattern.RefinesRow(c.Left, c.Right)
		r.Pass = r.Got == c.Want
	case config.UnifyKind:
		r.LeftSubst, r.RightSubst = pattern.NewSubst(), pattern.NewSubst()
		r.Got = pattern.UnifyRow(c.Left, c.Right, r.LeftSubst, r.RightSubst)
		r.Pass = r.Got == c.Want
	}
	return r
}

// EvaluateAll runs every case in order.
func EvaluateAll(cases []*suite.Case) []*suite.Result {
	results := make([]*suite.Result, len(cases))
	for i, c := range cases {
		results[i] = Evaluate(c)
	}
	return results
}
