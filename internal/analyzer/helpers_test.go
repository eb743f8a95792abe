package analyzer

import (
	"errors"
	"testing"

	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/diagnostics"
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/symbols"
)

const libraryYAML = `
data:
  - name: Option
    params: [{name: A, type: Type}]
    constructors:
      - name: none
      - name: some
        fields: [{name: x, type: A}]
  - name: Vec
    params: [{name: A, type: Type}, {name: n, type: Nat}]
    constructors:
      - name: vnil
        match: [A, zero]
      - name: vcons
        match: [A, suc(m)]
        fields:
          - {name: x, type: A}
          - {name: xs, type: "Vec(A, m)"}
records:
  - name: Point
    fields: [{name: x, type: Nat}, {name: y, type: Bool}]
functions:
  - name: one
    type: Nat
    body: suc(zero)
  - name: Opaque
    type: Type
`

func newLibrary(t *testing.T) *Analyzer {
	t.Helper()
	return declare(t, libraryYAML)
}

func declare(t *testing.T, src string) *Analyzer {
	t.Helper()
	fx, err := fixture.ParseFixture([]byte(src), "library.yaml")
	if err != nil {
		t.Fatalf("ParseFixture: %v", err)
	}
	a := New(symbols.NewSymbolTable())
	if errs := a.DeclareFixture(fx); len(errs) > 0 {
		t.Fatalf("DeclareFixture: %v", errors.Join(errs...))
	}
	return a
}

// telescope resolves params in the analyzer's table.
func telescope(t *testing.T, a *Analyzer, params ...fixture.Param) (*core.Telescope, *symbols.SymbolTable) {
	t.Helper()
	bindings, scope, err := a.ResolveParams(a.SymbolTable(), params)
	if err != nil {
		t.Fatalf("ResolveParams: %v", err)
	}
	return core.NewTelescope(bindings, nil), scope
}

func param(name, typ string) fixture.Param {
	return fixture.Param{Name: name, Type: typ}
}

func errorCode(err error) diagnostics.ErrorCode {
	var diag *diagnostics.DiagnosticError
	if errors.As(err, &diag) {
		return diag.Code
	}
	return ""
}

// sameShape compares two patterns up to the names and identities of their
// bindings.
func sameShape(p, q pattern.Pattern) bool {
	switch pp := p.(type) {
	case *pattern.BindingPattern:
		_, ok := q.(*pattern.BindingPattern)
		return ok
	case *pattern.AbsurdPattern:
		_, ok := q.(*pattern.AbsurdPattern)
		return ok
	case *pattern.ConPattern:
		qq, ok := q.(*pattern.ConPattern)
		return ok && pp.Definition == qq.Definition && sameShapeRow(pp.Args, qq.Args)
	case *pattern.TuplePattern:
		qq, ok := q.(*pattern.TuplePattern)
		return ok && sameShapeRow(pp.Fields, qq.Fields)
	}
	return false
}

func sameShapeRow(r1, r2 []pattern.Pattern) bool {
	if len(r1) != len(r2) {
		return false
	}
	for i := range r1 {
		if !sameShape(r1[i], r2[i]) {
			return false
		}
	}
	return true
}
