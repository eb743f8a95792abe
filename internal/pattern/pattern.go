// Package pattern implements coverage checking and unification of typed
// pattern clauses.
//
// Patterns arrive already type-checked: every binding carries its type and
// every constructor pattern carries the descriptor it was resolved to. The
// decision procedures here never fail with an error; "cannot prove" is
// always reported as false (or as an uncovered row).
package pattern

import (
	"strings"

	"github.com/funvibe/patcover/internal/core"
)

// Pattern is one of *BindingPattern, *AbsurdPattern, *ConPattern or
// *TuplePattern.
type Pattern interface {
	// SubPatterns returns the argument patterns of constructor and tuple
	// patterns, nil otherwise.
	SubPatterns() []Pattern
	String() string
	patternNode()
}

// BindingPattern matches anything and names it.
type BindingPattern struct {
	Binding *core.Binding
}

func (p *BindingPattern) SubPatterns() []Pattern { return nil }
func (p *BindingPattern) String() string         { return p.Binding.String() }
func (p *BindingPattern) patternNode()           {}

// AbsurdPattern matches nothing: the scrutinee's type is uninhabited.
type AbsurdPattern struct{}

func (p *AbsurdPattern) SubPatterns() []Pattern { return nil }
func (p *AbsurdPattern) String() string         { return "()" }
func (p *AbsurdPattern) patternNode()           {}

// ConPattern is a tagged pattern. The tag is normally a constructor; a
// *core.FunctionDef tag is a pattern alias that is treated opaquely.
type ConPattern struct {
	Definition core.Definition
	Args       []Pattern
}

func (p *ConPattern) SubPatterns() []Pattern { return p.Args }
func (p *ConPattern) String() string {
	if len(p.Args) == 0 {
		return p.Definition.Name()
	}
	return p.Definition.Name() + "(" + rowString(p.Args) + ")"
}
func (p *ConPattern) patternNode() {}

// TuplePattern matches a sigma or record value field by field.
type TuplePattern struct {
	Fields []Pattern
}

func (p *TuplePattern) SubPatterns() []Pattern { return p.Fields }
func (p *TuplePattern) String() string         { return "(" + rowString(p.Fields) + ")" }
func (p *TuplePattern) patternNode()           {}

// Absurd is the shared absurd pattern.
var Absurd Pattern = &AbsurdPattern{}

func Bind(b *core.Binding) *BindingPattern {
	return &BindingPattern{Binding: b}
}

func Con(def core.Definition, args ...Pattern) *ConPattern {
	return &ConPattern{Definition: def, Args: args}
}

func Tuple(fields ...Pattern) *TuplePattern {
	return &TuplePattern{Fields: fields}
}

// RowString renders a row for logs and test failures.
func RowString(row []Pattern) string {
	return "[" + rowString(row) + "]"
}

func rowString(row []Pattern) string {
	parts := make([]string, len(row))
	for i, p := range row {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// definitionOf returns the tag of a pattern: the constructor or alias of a
// ConPattern, nil for every other shape.
func definitionOf(p Pattern) core.Definition {
	if con, ok := p.(*ConPattern); ok {
		return con.Definition
	}
	return nil
}

// sameTag reports whether p and q carry the same tag. Two tuples share the
// empty tag, like two constructor patterns with the same descriptor.
func sameTag(p, q Pattern) bool {
	_, pTuple := p.(*TuplePattern)
	_, qTuple := q.(*TuplePattern)
	if pTuple || qTuple {
		return pTuple && qTuple
	}
	pDef, qDef := definitionOf(p), definitionOf(q)
	return pDef != nil && pDef == qDef
}

// ToExpr converts a pattern to the core value it denotes. Absurd patterns
// have no value and yield nil.
func ToExpr(p Pattern) core.Expr {
	switch pat := p.(type) {
	case *BindingPattern:
		return &core.Ref{Binding: pat.Binding}
	case *ConPattern:
		args := make([]core.Expr, len(pat.Args))
		for i, arg := range pat.Args {
			args[i] = ToExpr(arg)
		}
		switch def := pat.Definition.(type) {
		case *core.ConstructorDef:
			return &core.ConCall{Con: def, Args: args}
		case *core.FunctionDef:
			return &core.FuncCall{Func: def, Args: args}
		}
		return nil
	case *TuplePattern:
		fields := make([]core.Expr, len(pat.Fields))
		for i, f := range pat.Fields {
			fields[i] = ToExpr(f)
		}
		return &core.TupleExpr{Fields: fields}
	default:
		return nil
	}
}
