package fixture

import (
	"fmt"

	"github.com/funvibe/patcover/internal/config"
)

// validate checks the fixture for structural errors. Names and types are
// resolved later by the analyzer.
func (f *Fixture) validate(path string) error {
	seen := make(map[string]string) // name → what declared it

	declare := func(name, what string) error {
		if name == "" {
			return fmt.Errorf("%s: %s: name is required", path, what)
		}
		if name == config.WildcardName {
			return fmt.Errorf("%s: %s: %q cannot be declared", path, what, name)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%s: %s: %q is already declared by %s", path, what, name, prev)
		}
		seen[name] = what
		return nil
	}

	for i, d := range f.Data {
		what := fmt.Sprintf("data[%d]", i)
		if err := declare(d.Name, what); err != nil {
			return err
		}
		if err := validateParams(path, what+" ("+d.Name+")", d.Params); err != nil {
			return err
		}
		for j, c := range d.Constructors {
			cwhat := fmt.Sprintf("data[%d].constructors[%d]", i, j)
			if err := declare(c.Name, cwhat); err != nil {
				return err
			}
			if err := validateParams(path, cwhat+" ("+c.Name+")", c.Fields); err != nil {
				return err
			}
			if c.Match != nil && len(c.Match) != len(d.Params) {
				return fmt.Errorf("%s: %s (%s): match has %d patterns, %s has %d parameters",
					path, cwhat, c.Name, len(c.Match), d.Name, len(d.Params))
			}
		}
	}

	for i, r := range f.Records {
		what := fmt.Sprintf("records[%d]", i)
		if err := declare(r.Name, what); err != nil {
			return err
		}
		if err := validateParams(path, what+" ("+r.Name+")", r.Params); err != nil {
			return err
		}
		if err := validateParams(path, what+" ("+r.Name+")", r.Fields); err != nil {
			return err
		}
	}

	for i, fn := range f.Functions {
		what := fmt.Sprintf("functions[%d]", i)
		if err := declare(fn.Name, what); err != nil {
			return err
		}
		if err := validateParams(path, what+" ("+fn.Name+")", fn.Params); err != nil {
			return err
		}
		if fn.Type == "" {
			return fmt.Errorf("%s: %s (%s): type is required", path, what, fn.Name)
		}
	}

	cases := newCaseNames(path)
	for i, c := range f.Coverage {
		what := fmt.Sprintf("%s[%d]", config.CoverageKind, i)
		if err := cases.check(config.CoverageKind, c.Name, what, c.Params); err != nil {
			return err
		}
		if c.Covers == nil {
			return fmt.Errorf("%s: %s (%s): covers is required", path, what, c.Name)
		}
		for j, clause := range c.Clauses {
			if len(clause) != len(c.Params) {
				return fmt.Errorf("%s: %s (%s): clause %d has %d patterns, want %d",
					path, what, c.Name, j, len(clause), len(c.Params))
			}
		}
	}

	for i, c := range f.Covering {
		what := fmt.Sprintf("%s[%d]", config.CoveringKind, i)
		if err := cases.check(config.CoveringKind, c.Name, what, c.Params); err != nil {
			return err
		}
		if len(c.Row) != len(c.Params) {
			return fmt.Errorf("%s: %s (%s): row has %d patterns, want %d",
				path, what, c.Name, len(c.Row), len(c.Params))
		}
		for j, row := range c.Rows {
			if len(row) != len(c.Params) {
				return fmt.Errorf("%s: %s (%s): rows[%d] has %d patterns, want %d",
					path, what, c.Name, j, len(row), len(c.Params))
			}
		}
		if c.Uncovered && len(c.Want) > 0 {
			return fmt.Errorf("%s: %s (%s): want and uncovered are mutually exclusive", path, what, c.Name)
		}
		for j, idx := range c.Want {
			if idx < 0 || idx >= len(c.Rows) {
				return fmt.Errorf("%s: %s (%s): want[%d] = %d is out of range", path, what, c.Name, j, idx)
			}
			if j > 0 && c.Want[j-1] >= idx {
				return fmt.Errorf("%s: %s (%s): want must be strictly ascending", path, what, c.Name)
			}
		}
	}

	relations := []struct {
		kind  string
		cases []RelationCase
	}{
		{config.RefinesKind, f.Refines},
		{config.UnifyKind, f.Unify},
	}
	for _, rel := range relations {
		for i, c := range rel.cases {
			what := fmt.Sprintf("%s[%d]", rel.kind, i)
			if err := cases.check(rel.kind, c.Name, what, c.Params); err != nil {
				return err
			}
			if c.Want == nil {
				return fmt.Errorf("%s: %s (%s): want is required", path, what, c.Name)
			}
			if len(c.Left) != len(c.Params) || len(c.Right) != len(c.Params) {
				return fmt.Errorf("%s: %s (%s): left and right must have %d patterns",
					path, what, c.Name, len(c.Params))
			}
		}
	}

	return nil
}

func validateParams(path, what string, params []Param) error {
	for i, p := range params {
		if p.Type == "" {
			return fmt.Errorf("%s: %s: params[%d] (%s): type is required", path, what, i, p.Name)
		}
	}
	return nil
}

type caseNames struct {
	path string
	seen map[string]bool
}

func newCaseNames(path string) *caseNames {
	return &caseNames{path: path, seen: make(map[string]bool)}
}

func (c *caseNames) check(kind, name, what string, params []Param) error {
	if name == "" {
		return fmt.Errorf("%s: %s: name is required", c.path, what)
	}
	key := kind + "/" + name
	if c.seen[key] {
		return fmt.Errorf("%s: %s: duplicate %s case %q", c.path, what, kind, name)
	}
	c.seen[key] = true
	if len(params) == 0 {
		return fmt.Errorf("%s: %s (%s): params are required", c.path, what, name)
	}
	return validateParams(c.path, what+" ("+name+")", params)
}
