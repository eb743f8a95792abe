package analyzer

import (
	"strings"
	"testing"

	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/pipeline"
)

const casesYAML = `
data:
  - name: Option
    params: [{name: A, type: Type}]
    constructors:
      - name: none
      - name: some
        fields: [{name: x, type: A}]
coverage:
  - name: option
    params: [{name: o, type: "Option(Nat)"}]
    clauses: [[none], ["some(n)"]]
    covers: true
covering:
  - name: some
    params: [{name: o, type: "Option(Nat)"}]
    rows: [[none], ["some(n)"]]
    row: ["some(k)"]
    want: [1]
  - name: none against some
    params: [{name: o, type: "Option(Nat)"}]
    rows: [["some(n)"]]
    row: [none]
    uncovered: true
refines:
  - name: constructor refines wildcard
    params: [{name: o, type: "Option(Nat)"}]
    left: ["some(zero)"]
    right: [_]
    want: true
unify:
  - name: different constructors
    params: [{name: o, type: "Option(Nat)"}]
    left: [none]
    right: ["some(_)"]
    want: false
`

func runFrontEnd(src string) *pipeline.PipelineContext {
	ctx := &pipeline.PipelineContext{FilePath: "cases.yaml", Source: []byte(src)}
	return pipeline.New(
		&pipeline.LoaderProcessor{},
		&DeclarationsProcessor{},
		&CasesProcessor{},
	).Run(ctx)
}

func TestCasesProcessor(t *testing.T) {
	ctx := runFrontEnd(casesYAML)
	if len(ctx.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}

	wantIDs := []string{
		config.CoverageKind + "/option",
		config.CoveringKind + "/some",
		config.CoveringKind + "/none against some",
		config.RefinesKind + "/constructor refines wildcard",
		config.UnifyKind + "/different constructors",
	}
	if len(ctx.Cases) != len(wantIDs) {
		t.Fatalf("got %d cases, want %d", len(ctx.Cases), len(wantIDs))
	}
	for i, c := range ctx.Cases {
		if c.ID() != wantIDs[i] {
			t.Errorf("case %d = %s, want %s", i, c.ID(), wantIDs[i])
		}
		if c.Params.Len() != 1 {
			t.Errorf("%s: %d params, want 1", c.ID(), c.Params.Len())
		}
	}

	coverage := ctx.Cases[0]
	if len(coverage.Rows) != 2 || !coverage.Want {
		t.Errorf("coverage case: %d rows, want %v", len(coverage.Rows), coverage.Want)
	}
	some := ctx.Cases[1]
	if !some.WantCovered || len(some.WantIndices) != 1 || some.WantIndices[0] != 1 {
		t.Errorf("covering case expects %s", some.Expected())
	}
	if ctx.Cases[2].WantCovered {
		t.Errorf("uncovered case expects %s", ctx.Cases[2].Expected())
	}
	if got := ctx.Cases[3].Expected(); got != "refines" {
		t.Errorf("refines case expects %q", got)
	}
}

func TestCasesProcessorKeepsGoodCases(t *testing.T) {
	src := casesYAML + `
  - name: broken
    params: [{name: o, type: "Option(Nat)"}]
    left: ["suc(zero)"]
    right: [_]
    want: true
`
	ctx := runFrontEnd(src)
	if len(ctx.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(ctx.Errors), ctx.Errors)
	}
	msg := ctx.Errors[0].Error()
	if !strings.HasPrefix(msg, "cases.yaml: unify/broken: ") || !strings.Contains(msg, "[A003]") {
		t.Errorf("error = %q", msg)
	}
	if len(ctx.Cases) != 5 {
		t.Errorf("got %d cases, want 5", len(ctx.Cases))
	}
}

func TestDeclarationErrorsStopCases(t *testing.T) {
	ctx := runFrontEnd(`
data:
  - name: Bool
coverage:
  - name: anything
    params: [{name: n, type: Nat}]
    clauses: [[_]]
    covers: true
`)
	if len(ctx.Errors) == 0 {
		t.Fatalf("expected a declaration error")
	}
	if ctx.SymbolTable != nil || len(ctx.Cases) != 0 {
		t.Errorf("cases should not be elaborated after declaration errors")
	}
}

func TestLoaderErrorStopsAnalysis(t *testing.T) {
	ctx := runFrontEnd("data: [")
	if len(ctx.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(ctx.Errors), ctx.Errors)
	}
	if ctx.SymbolTable != nil {
		t.Errorf("no symbol table expected without a fixture")
	}
}
