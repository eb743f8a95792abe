package pattern

import (
	"testing"

	"github.com/funvibe/patcover/internal/core"
)

// defs is a small library of definitions shared by the tests of this package.
type defs struct {
	boolean   *core.DataDef
	tt, ff    *core.ConstructorDef
	nat       *core.DataDef
	zero, suc *core.ConstructorDef
	option    *core.DataDef
	none      *core.ConstructorDef
	some      *core.ConstructorDef
	empty     *core.DataDef
	vec       *core.DataDef
	vnil      *core.ConstructorDef
	vcons     *core.ConstructorDef
	point     *core.RecordDef
	one       *core.FunctionDef
}

func newDefs() *defs {
	d := &defs{}

	d.boolean = core.NewDataDef("Bool", nil)
	d.tt = d.boolean.AddConstructor("true", nil)
	d.ff = d.boolean.AddConstructor("false", nil)

	d.nat = core.NewDataDef("Nat", nil)
	d.zero = d.nat.AddConstructor("zero", nil)
	d.suc = d.nat.AddConstructor("suc", []*core.Binding{core.NewBinding("n", d.nat.Call())})

	d.option = core.NewDataDef("Option", []*core.Binding{core.NewBinding("A", &core.Universe{})})
	d.none = d.option.AddConstructor("none", nil)
	d.some = d.option.AddConstructor("some", []*core.Binding{
		core.NewBinding("x", &core.Ref{Binding: d.option.Params[0]}),
	})

	d.empty = core.NewDataDef("Empty", nil)

	a := core.NewBinding("A", &core.Universe{})
	n := core.NewBinding("n", d.nat.Call())
	d.vec = core.NewDataDef("Vec", []*core.Binding{a, n})
	nilA := core.NewBinding("A", &core.Universe{})
	d.vnil = d.vec.AddIndexedConstructor("vnil", []*core.Binding{nilA},
		[]core.Expr{&core.Ref{Binding: nilA}, d.zero.Call()}, nil)
	consA := core.NewBinding("A", &core.Universe{})
	consM := core.NewBinding("m", d.nat.Call())
	d.vcons = d.vec.AddIndexedConstructor("vcons", []*core.Binding{consA, consM},
		[]core.Expr{&core.Ref{Binding: consA}, d.suc.Call(&core.Ref{Binding: consM})},
		[]*core.Binding{
			core.NewBinding("x", &core.Ref{Binding: consA}),
			core.NewBinding("xs", d.vec.Call(&core.Ref{Binding: consA}, &core.Ref{Binding: consM})),
		})

	d.point = core.NewRecordDef("Point", nil, []*core.Binding{
		core.NewBinding("x", d.nat.Call()),
		core.NewBinding("y", d.boolean.Call()),
	})

	d.one = core.NewFunctionDef("one", nil, d.nat.Call(), d.suc.Call(d.zero.Call()))
	return d
}

func (d *defs) natType() core.Expr  { return d.nat.Call() }
func (d *defs) boolType() core.Expr { return d.boolean.Call() }

func (d *defs) optionOf(t core.Expr) core.Expr { return d.option.Call(t) }

func (d *defs) vecOf(length core.Expr) core.Expr { return d.vec.Call(d.nat.Call(), length) }

// v creates a binding pattern of the given type.
func v(name string, typ core.Expr) *BindingPattern {
	return Bind(core.NewBinding(name, typ))
}

func row(ps ...Pattern) []Pattern { return ps }

func assertIndices(t *testing.T, got []int, ok bool, want []int, wantOK bool) {
	t.Helper()
	if ok != wantOK {
		t.Fatalf("covered = %v, want %v (indices %v)", ok, wantOK, got)
	}
	if !wantOK {
		if got != nil {
			t.Errorf("uncovered result should be nil, got %v", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("covered result must be non-nil")
	}
	if len(got) != len(want) {
		t.Fatalf("indices = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("indices = %v, want %v", got, want)
		}
	}
}
