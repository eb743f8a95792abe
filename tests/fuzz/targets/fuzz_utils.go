// Package targets holds the fuzz targets of the pattern checker.
package targets

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/funvibe/patcover/internal/analyzer"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/symbols"
	"github.com/funvibe/patcover/tests/fuzz/generators"
)

// LoadCorpus adds every pattern written in the fixtures under dirs to the
// seed corpus of f.
func LoadCorpus(f *testing.F, dirs ...string) {
	for _, dir := range dirs {
		paths, err := fixture.FindFixtures(dir)
		if err != nil {
			continue
		}
		for _, path := range paths {
			fx, err := fixture.LoadFixture(path)
			if err != nil {
				continue
			}
			for _, c := range fx.Coverage {
				for _, row := range c.Clauses {
					addRow(f, row)
				}
			}
			for _, c := range fx.Covering {
				addRow(f, c.Row)
			}
			for _, c := range fx.Refines {
				addRow(f, c.Left)
				addRow(f, c.Right)
			}
		}
	}
}

func addRow(f *testing.F, row []string) {
	for _, p := range row {
		f.Add(p)
	}
}

// TestdataDir is the directory of the functional fixtures.
func TestdataDir() string {
	return filepath.Join("..", "..", "testdata")
}

// Library is an analyzer with generators.Library declared.
type Library struct {
	analyzer *analyzer.Analyzer
}

func NewLibrary(tb testing.TB) *Library {
	tb.Helper()
	fx, err := fixture.ParseFixture([]byte(generators.Library), "library.yaml")
	if err != nil {
		tb.Fatalf("ParseFixture: %v", err)
	}
	a := analyzer.New(symbols.NewSymbolTable())
	if errs := a.DeclareFixture(fx); len(errs) > 0 {
		tb.Fatalf("DeclareFixture: %v", errors.Join(errs...))
	}
	return &Library{analyzer: a}
}

// Telescope resolves one unnamed parameter per type.
func (l *Library) Telescope(types []string) (*core.Telescope, *symbols.SymbolTable, error) {
	params := make([]fixture.Param, len(types))
	for i, typ := range types {
		params[i] = fixture.Param{Name: "_", Type: typ}
	}
	bindings, scope, err := l.analyzer.ResolveParams(l.analyzer.SymbolTable(), params)
	if err != nil {
		return nil, nil, err
	}
	return core.NewTelescope(bindings, nil), scope, nil
}

// Row elaborates sources against types, one column per type.
func (l *Library) Row(types, sources []string) ([]pattern.Pattern, *symbols.SymbolTable, error) {
	params, scope, err := l.Telescope(types)
	if err != nil {
		return nil, nil, err
	}
	row, err := analyzer.NewElaborator(scope, nil).ElaborateSource(sources, params)
	return row, scope, err
}

// Wildcards returns a row of wildcards for types.
func (l *Library) Wildcards(tb testing.TB, types []string) []pattern.Pattern {
	tb.Helper()
	sources := make([]string, len(types))
	for i := range sources {
		sources[i] = "_"
	}
	row, _, err := l.Row(types, sources)
	if err != nil {
		tb.Fatalf("wildcards for %v: %v", types, err)
	}
	return row
}
