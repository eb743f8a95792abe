package pattern

import (
	"testing"

	"github.com/funvibe/patcover/internal/core"
)

func TestCheckCoverage(t *testing.T) {
	d := newDefs()
	n := func() Pattern { return v("n", d.natType()) }
	free := core.NewBinding("k", d.natType())
	opaque := core.NewFunctionDef("Opaque", nil, &core.Universe{}, nil)
	natAlias := core.NewFunctionDef("N", nil, &core.Universe{}, d.nat.Call())

	tests := []struct {
		name   string
		column []Pattern
		typ    core.Expr
		want   bool
	}{
		{"single wildcard", []Pattern{n()}, d.natType(), true},
		{"wildcard on opaque type", []Pattern{v("x", opaque.Call())}, opaque.Call(), true},
		{"absurd anywhere", []Pattern{Con(d.zero), Absurd}, d.natType(), true},
		{"alias anywhere", []Pattern{Con(d.one)}, d.natType(), true},

		{"bool both cases", []Pattern{Con(d.tt), Con(d.ff)}, d.boolType(), true},
		{"bool reversed", []Pattern{Con(d.ff), Con(d.tt)}, d.boolType(), true},
		{"bool one case", []Pattern{Con(d.tt)}, d.boolType(), false},
		{"bool duplicate case", []Pattern{Con(d.tt), Con(d.tt)}, d.boolType(), false},

		{"empty column on empty type", nil, d.empty.Call(), true},
		{"empty column on bool", nil, d.boolType(), false},
		{"empty column on sigma", nil, &core.SigmaExpr{}, false},

		{"nat zero and suc", []Pattern{Con(d.zero), Con(d.suc, n())}, d.natType(), true},
		{"nat missing zero", []Pattern{Con(d.suc, n())}, d.natType(), false},
		{"nat nested", []Pattern{Con(d.zero), Con(d.suc, Con(d.zero)), Con(d.suc, Con(d.suc, n()))}, d.natType(), true},
		{"nat nested missing", []Pattern{Con(d.zero), Con(d.suc, Con(d.suc, n()))}, d.natType(), false},

		{"option", []Pattern{Con(d.none), Con(d.some, n())}, d.optionOf(d.natType()), true},
		{"option of bool", []Pattern{Con(d.none), Con(d.some, Con(d.tt)), Con(d.some, Con(d.ff))}, d.optionOf(d.boolType()), true},
		{"option of bool missing", []Pattern{Con(d.none), Con(d.some, Con(d.tt))}, d.optionOf(d.boolType()), false},

		{"vec zero needs only vnil", []Pattern{Con(d.vnil)}, d.vecOf(d.zero.Call()), true},
		{"vec one needs only vcons", []Pattern{Con(d.vcons, n(), v("xs", d.vecOf(d.zero.Call())))}, d.vecOf(d.suc.Call(d.zero.Call())), true},
		{"vec of unknown length", []Pattern{Con(d.vnil), Con(d.vcons, n(), v("xs", d.natType()))}, d.vecOf(&core.Ref{Binding: free}), false},

		{"type through alias", []Pattern{Con(d.zero), Con(d.suc, n())}, natAlias.Call(), true},
		{"constructors on non-data type", []Pattern{Con(d.zero)}, opaque.Call(), false},

		{"mixed shapes", []Pattern{Tuple(n()), Con(d.zero)}, d.natType(), false},
		{"tuple on data type", []Pattern{Tuple()}, d.natType(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCoverage(tt.column, tt.typ); got != tt.want {
				t.Errorf("CheckCoverage(%s, %s) = %v, want %v", RowString(tt.column), tt.typ, got, tt.want)
			}
		})
	}
}

func TestCheckCoverageProducts(t *testing.T) {
	d := newDefs()
	nb := core.NewBinding("n", d.natType())
	sigma := &core.SigmaExpr{Params: []*core.Binding{
		nb,
		core.NewBinding("b", d.boolType()),
	}}
	dependent := &core.SigmaExpr{Params: []*core.Binding{
		nb,
		core.NewBinding("v", d.vecOf(&core.Ref{Binding: nb})),
	}}
	point := d.point.Call()

	tests := []struct {
		name   string
		column []Pattern
		typ    core.Expr
		want   bool
	}{
		{"trivial tuple", []Pattern{Tuple(v("a", d.natType()), v("b", d.boolType()))}, sigma, true},
		{"tuple split on second field", []Pattern{
			Tuple(v("a", d.natType()), Con(d.tt)),
			Tuple(v("a", d.natType()), Con(d.ff)),
		}, sigma, true},
		{"tuple missing case", []Pattern{Tuple(v("a", d.natType()), Con(d.tt))}, sigma, false},
		{"tuple too narrow", []Pattern{Tuple(v("a", d.natType()))}, sigma, false},
		{"tuple too wide", []Pattern{Tuple(v("a", d.natType()), v("b", d.boolType()), v("c", d.boolType()))}, sigma, false},
		{"ragged rows", []Pattern{
			Tuple(v("a", d.natType()), Con(d.tt)),
			Tuple(v("a", d.natType())),
		}, sigma, false},
		{"record", []Pattern{
			Tuple(Con(d.zero), v("y", d.boolType())),
			Tuple(Con(d.suc, v("n", d.natType())), v("y", d.boolType())),
		}, point, true},
		{"record missing", []Pattern{Tuple(Con(d.zero), v("y", d.boolType()))}, point, false},
		{"dependent field with wildcard", []Pattern{Tuple(Con(d.zero), v("xs", d.vecOf(d.zero.Call())))}, dependent, false},
		{"dependent field all wildcards", []Pattern{Tuple(v("a", d.natType()), v("xs", d.natType()))}, dependent, true},
		// later fields are checked against their declared, abstract type
		{"dependent field unknown index", []Pattern{
			Tuple(v("a", d.natType()), Con(d.vnil)),
			Tuple(v("a", d.natType()), Con(d.vcons, v("x", d.natType()), v("xs", d.natType()))),
		}, dependent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCoverage(tt.column, tt.typ); got != tt.want {
				t.Errorf("CheckCoverage(%s, %s) = %v, want %v", RowString(tt.column), tt.typ, got, tt.want)
			}
		})
	}
}

func TestCheckRowsCoverage(t *testing.T) {
	d := newDefs()
	params := core.NewTelescope([]*core.Binding{
		core.NewBinding("b", d.boolType()),
		core.NewBinding("n", d.natType()),
	}, nil)
	withEmpty := core.NewTelescope([]*core.Binding{
		core.NewBinding("b", d.boolType()),
		core.NewBinding("e", d.empty.Call()),
	}, nil)

	tests := []struct {
		name   string
		rows   [][]Pattern
		params *core.Telescope
		want   bool
	}{
		{"all cases", [][]Pattern{
			row(Con(d.tt), Con(d.zero)),
			row(Con(d.ff), Con(d.suc, v("n", d.natType()))),
		}, params, true},
		{"wildcards", [][]Pattern{row(v("b", d.boolType()), v("n", d.natType()))}, params, true},
		{"missing bool", [][]Pattern{row(Con(d.tt), v("n", d.natType()))}, params, false},
		{"row too short", [][]Pattern{row(v("b", d.boolType()))}, params, false},
		{"no rows", nil, params, false},
		{"no rows, empty field", nil, withEmpty, true},
		{"empty telescope, empty row", [][]Pattern{row()}, core.NewTelescope(nil, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckRowsCoverage(tt.rows, tt.params); got != tt.want {
				t.Errorf("CheckRowsCoverage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckTelescopeCoverageNeedsPatterns(t *testing.T) {
	d := newDefs()
	if CheckTelescopeCoverage(nil, d.point.Call().Telescope()) {
		t.Errorf("no patterns cannot cover a telescope")
	}
}
