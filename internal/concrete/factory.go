package concrete

import (
	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/core"
)

// Factory builds surface syntax.
type Factory interface {
	// Local introduces the identifier that names a binding.
	Local(name string) *ast.Identifier
	RefPattern(ref *ast.Identifier) ast.Pattern
	TuplePattern(elems []ast.Pattern) ast.Pattern
	ConPattern(def core.Definition, elems []ast.Pattern) ast.Pattern

	Ref(ref *ast.Identifier) ast.Expression
	DefRef(def core.Definition) *ast.Identifier
	App(fn *ast.Identifier, args []ast.Expression) ast.Expression
	Tuple(elems []ast.Expression) ast.Expression
}

type factory struct{}

// NewFactory returns a Factory producing nodes of package ast. Constructor
// patterns without arguments are written as bare names.
func NewFactory() Factory {
	return factory{}
}

func (factory) Local(name string) *ast.Identifier {
	return ast.NewIdentifier(name)
}

func (factory) RefPattern(ref *ast.Identifier) ast.Pattern {
	return &ast.IdentifierPattern{Token: ref.Token, Value: ref.Value}
}

func (factory) TuplePattern(elems []ast.Pattern) ast.Pattern {
	return &ast.TuplePattern{Elements: elems}
}

func (f factory) ConPattern(def core.Definition, elems []ast.Pattern) ast.Pattern {
	name := f.DefRef(def)
	if len(elems) == 0 {
		return &ast.IdentifierPattern{Token: name.Token, Value: name.Value}
	}
	return &ast.ConstructorPattern{Token: name.Token, Name: name, Elements: elems}
}

func (factory) Ref(ref *ast.Identifier) ast.Expression {
	return ref
}

func (factory) DefRef(def core.Definition) *ast.Identifier {
	return ast.NewIdentifier(def.Name())
}

func (factory) App(fn *ast.Identifier, args []ast.Expression) ast.Expression {
	if len(args) == 0 {
		return fn
	}
	return &ast.CallExpression{Function: fn, Arguments: args}
}

func (factory) Tuple(elems []ast.Expression) ast.Expression {
	return &ast.TupleLiteral{Elements: elems}
}
