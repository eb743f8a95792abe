package analyzer

import (
	"fmt"

	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/suite"
)

// ElaborateCases turns every query of fx into a suite.Case. A case that
// fails to elaborate is reported and left out; the others are still
// returned.
func (a *Analyzer) ElaborateCases(fx *fixture.Fixture) ([]*suite.Case, []error) {
	var cases []*suite.Case
	var errs []error
	add := func(kind, name string, build func(c *suite.Case, e *Elaborator) error, params []fixture.Param) {
		c := &suite.Case{Kind: kind, Name: name}
		if err := a.elaborateCase(c, params, build); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.ID(), err))
			return
		}
		cases = append(cases, c)
	}

	for _, cc := range fx.Coverage {
		add(config.CoverageKind, cc.Name, func(c *suite.Case, e *Elaborator) error {
			rows, err := e.elaborateRows(cc.Clauses, c.Params)
			if err != nil {
				return err
			}
			c.Rows = rows
			c.Want = *cc.Covers
			return nil
		}, cc.Params)
	}
	for _, cc := range fx.Covering {
		add(config.CoveringKind, cc.Name, func(c *suite.Case, e *Elaborator) error {
			rows, err := e.elaborateRows(cc.Rows, c.Params)
			if err != nil {
				return err
			}
			row, err := e.ElaborateSource(cc.Row, c.Params)
			if err != nil {
				return err
			}
			c.Rows, c.Row = rows, row
			c.WantCovered = !cc.Uncovered
			if c.WantCovered {
				c.WantIndices = append([]int{}, cc.Want...)
			}
			return nil
		}, cc.Params)
	}
	for _, kind := range []string{config.RefinesKind, config.UnifyKind} {
		relations := fx.Refines
		if kind == config.UnifyKind {
			relations = fx.Unify
		}
		for _, rc := range relations {
			add(kind, rc.Name, func(c *suite.Case, e *Elaborator) error {
				left, err := e.ElaborateSource(rc.Left, c.Params)
				if err != nil {
					return err
				}
				right, err := e.ElaborateSource(rc.Right, c.Params)
				if err != nil {
					return err
				}
				c.Left, c.Right = left, right
				c.Want = *rc.Want
				return nil
			}, rc.Params)
		}
	}
	return cases, errs
}

// elaborateCase resolves the scrutinee telescope of c and hands an
// elaborator over its scope to build.
func (a *Analyzer) elaborateCase(c *suite.Case, params []fixture.Param, build func(c *suite.Case, e *Elaborator) error) error {
	bindings, scope, err := a.ResolveParams(a.symbolTable, params)
	if err != nil {
		return err
	}
	c.Params = core.NewTelescope(bindings, nil)
	c.Scope = scope
	return build(c, NewElaborator(scope, nil))
}

func (e *Elaborator) elaborateRows(sources [][]string, params *core.Telescope) ([][]pattern.Pattern, error) {
	rows := make([][]pattern.Pattern, len(sources))
	for i, src := range sources {
		row, err := e.ElaborateSource(src, params)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}
	return rows, nil
}
