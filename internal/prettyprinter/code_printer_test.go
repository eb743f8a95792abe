package prettyprinter

import (
	"testing"

	"github.com/funvibe/patcover/internal/ast"
)

func TestPrintPatterns(t *testing.T) {
	x := &ast.IdentifierPattern{Value: "x"}
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"wildcard", &ast.WildcardPattern{}, "_"},
		{"constructor", &ast.ConstructorPattern{Name: ast.NewIdentifier("suc"), Elements: []ast.Pattern{x}}, "suc(x)"},
		{"nullary constructor", &ast.ConstructorPattern{Name: ast.NewIdentifier("none")}, "none()"},
		{"absurd", &ast.TuplePattern{}, "()"},
		{"single field tuple", &ast.TuplePattern{Elements: []ast.Pattern{x}}, "(x,)"},
		{"pair", &ast.TuplePattern{Elements: []ast.Pattern{x, &ast.WildcardPattern{}}}, "(x, _)"},
		{"missing element", &ast.TuplePattern{Elements: []ast.Pattern{nil}}, "(<???>,)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.node); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintExpressions(t *testing.T) {
	nat := ast.NewIdentifier("Nat")
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"universe", &ast.UniverseLiteral{}, "Type"},
		{"call", &ast.CallExpression{Function: ast.NewIdentifier("Vec"), Arguments: []ast.Expression{nat, ast.NewIdentifier("n")}}, "Vec(Nat, n)"},
		{"unit", &ast.TupleLiteral{}, "()"},
		{"sigma", &ast.SigmaType{Params: []*ast.Parameter{
			{Name: ast.NewIdentifier("n"), Type: nat},
			{Type: ast.NewIdentifier("Bool")},
		}}, "Sigma(n : Nat, Bool)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.node); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintRow(t *testing.T) {
	row := []ast.Pattern{&ast.IdentifierPattern{Value: "true"}, &ast.WildcardPattern{}}
	if got := PrintPatterns(row); got != "true, _" {
		t.Errorf("PrintPatterns() = %q", got)
	}
}
