package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/diagnostics"
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/symbols"
)

func TestDeclareFixture(t *testing.T) {
	a := newLibrary(t)
	table := a.SymbolTable()

	for _, name := range []string{"Option", "none", "some", "Vec", "vnil", "vcons", "Point", "one", "Opaque"} {
		if !table.IsDefinedLocally(name) {
			t.Errorf("%s is not declared", name)
		}
	}

	sym, _ := table.Find("Vec")
	vec, ok := sym.Definition.(*core.DataDef)
	if !ok {
		t.Fatalf("Vec is %T, want *core.DataDef", sym.Definition)
	}
	if len(vec.Params) != 2 || len(vec.Constructors) != 2 {
		t.Fatalf("Vec has %d params and %d constructors", len(vec.Params), len(vec.Constructors))
	}
	vnil, vcons := vec.Constructors[0], vec.Constructors[1]
	if !vnil.IsIndexed() || !vcons.IsIndexed() {
		t.Fatalf("Vec constructors should be indexed")
	}
	if got := len(vcons.PatternBindings); got != 2 {
		t.Errorf("vcons binds %d pattern variables, want 2", got)
	}
	if got := vcons.Fields[1].Type.String(); got != "Vec(A, m)" {
		t.Errorf("vcons xs : %s, want Vec(A, m)", got)
	}

	lengthOne, err := a.ResolveSource(table, "Vec(Bool, suc(zero))")
	if err != nil {
		t.Fatalf("ResolveSource: %v", err)
	}
	live, known := core.MatchedConstructors(lengthOne.(*core.DataCall))
	if !known || len(live) != 1 || live[0].Constructor != vcons {
		t.Fatalf("live constructors of %s = %v, %v", lengthOne, live, known)
	}
	if got := live[0].Parameters.TypeExpr().String(); got != "Bool" {
		t.Errorf("vcons x : %s, want Bool", got)
	}

	sym, _ = table.Find("some")
	some := sym.Definition.(*core.ConstructorDef)
	if some.IsIndexed() {
		t.Errorf("some should not be indexed")
	}

	sym, _ = table.Find("one")
	one := sym.Definition.(*core.FunctionDef)
	if got := core.Normalize(one.Call()).String(); got != "suc(zero)" {
		t.Errorf("one unfolds to %s, want suc(zero)", got)
	}
	sym, _ = table.Find("Opaque")
	if opaque := sym.Definition.(*core.FunctionDef); opaque.Body != nil {
		t.Errorf("Opaque should have no body")
	}

	sym, _ = table.Find("Point")
	point := sym.Definition.(*core.RecordDef)
	if len(point.Fields) != 2 {
		t.Errorf("Point has %d fields, want 2", len(point.Fields))
	}
}

func TestDeclareForwardReferences(t *testing.T) {
	a := declare(t, `
data:
  - name: Tree
    constructors:
      - name: leaf
      - name: node
        fields: [{type: Forest}]
  - name: Forest
    constructors:
      - name: nil
      - name: cons
        fields: [{type: Tree}, {type: Forest}]
`)
	sym, _ := a.SymbolTable().Find("node")
	node := sym.Definition.(*core.ConstructorDef)
	if got := node.Fields[0].Type.String(); got != "Forest" {
		t.Errorf("node field : %s, want Forest", got)
	}
}

func TestDeclareErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diagnostics.ErrorCode
	}{
		{"shadows prelude", `
data:
  - name: Nat
`, diagnostics.ErrA002},
		{"unknown field type", `
data:
  - name: Box
    constructors:
      - name: box
        fields: [{name: x, type: Missing}]
`, diagnostics.ErrA001},
		{"missing type argument", `
data:
  - name: Box
    params: [{name: A, type: Type}]
  - name: Wrap
    constructors:
      - name: wrap
        fields: [{type: Box}]
`, diagnostics.ErrA004},
		{"absurd index pattern", `
data:
  - name: D
    params: [{name: e, type: Empty}]
    constructors:
      - name: d
        match: ["()"]
`, diagnostics.ErrA005},
		{"index pattern of the wrong type", `
data:
  - name: D
    params: [{name: n, type: Nat}]
    constructors:
      - name: d
        match: ["true"]
`, diagnostics.ErrA003},
		{"value used as a type", `
data:
  - name: Box
    constructors:
      - name: box
        fields: [{name: x, type: zero}]
`, diagnostics.ErrA006},
		{"variable used as a type", `
records:
  - name: R
    params: [{name: n, type: Nat}]
    fields: [{name: x, type: n}]
`, diagnostics.ErrA006},
		{"bad function body", `
functions:
  - name: f
    type: Nat
    body: "suc("
`, diagnostics.ErrP001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, err := fixture.ParseFixture([]byte(tt.src), "errors.yaml")
			if err != nil {
				t.Fatalf("ParseFixture: %v", err)
			}
			errs := New(symbols.NewSymbolTable()).DeclareFixture(fx)
			if len(errs) == 0 {
				t.Fatalf("expected an error")
			}
			err = errors.Join(errs...)
			if got := errorCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestDeclareErrorNamesTheDeclaration(t *testing.T) {
	fx, err := fixture.ParseFixture([]byte(`
data:
  - name: Box
    constructors:
      - name: box
        fields: [{name: x, type: Missing}]
`), "box.yaml")
	if err != nil {
		t.Fatalf("ParseFixture: %v", err)
	}
	errs := New(symbols.NewSymbolTable()).DeclareFixture(fx)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if msg := errs[0].Error(); !strings.HasPrefix(msg, "Box.box: ") || !strings.Contains(msg, "Missing") {
		t.Errorf("error = %q", msg)
	}
}

func TestDuplicateNamesSayWhereTheyCameFrom(t *testing.T) {
	parse := func(src, path string) *fixture.Fixture {
		t.Helper()
		fx, err := fixture.ParseFixture([]byte(src), path)
		if err != nil {
			t.Fatalf("ParseFixture: %v", err)
		}
		return fx
	}

	table := symbols.NewSymbolTable()
	a := New(table)

	errs := a.DeclareFixture(parse("data: [{name: Nat}]\n", "nat.yaml"))
	if got := errors.Join(errs...); got == nil || !strings.Contains(got.Error(), "'Nat' is already declared in prelude") {
		t.Errorf("redeclaring Nat: %v", got)
	}

	table.SetFile("lib.yaml")
	if errs := a.DeclareFixture(parse("data: [{name: Box}]\n", "lib.yaml")); len(errs) > 0 {
		t.Fatalf("DeclareFixture: %v", errors.Join(errs...))
	}
	table.SetFile("other.yaml")
	errs = a.DeclareFixture(parse("records: [{name: Box}]\n", "other.yaml"))
	if got := errors.Join(errs...); got == nil || !strings.Contains(got.Error(), "'Box' is already declared in lib.yaml") {
		t.Errorf("redeclaring Box: %v", got)
	}
}
