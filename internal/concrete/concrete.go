// Package concrete turns pattern trees back into surface syntax, for
// diagnostics and for printing clause tables.
package concrete

import (
	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/pattern"
)

// ToConcrete converts p to a surface pattern. cache maps bindings to the
// identifiers already chosen for them; pass the same map to several calls to
// render a binding identically everywhere. cache may be nil.
func ToConcrete(p pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) ast.Pattern {
	if cache == nil {
		cache = make(map[*core.Binding]*ast.Identifier)
	}
	return toConcrete(p, renamer, factory, cache)
}

func ToConcreteRow(row []pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) []ast.Pattern {
	if cache == nil {
		cache = make(map[*core.Binding]*ast.Identifier)
	}
	return toConcreteRow(row, renamer, factory, cache)
}

func toConcrete(p pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) ast.Pattern {
	switch pat := p.(type) {
	case *pattern.BindingPattern:
		return factory.RefPattern(local(pat.Binding, renamer, factory, cache))
	case *pattern.AbsurdPattern:
		return factory.TuplePattern(nil)
	case *pattern.ConPattern:
		return factory.ConPattern(pat.Definition, toConcreteRow(pat.Args, renamer, factory, cache))
	case *pattern.TuplePattern:
		return factory.TuplePattern(toConcreteRow(pat.Fields, renamer, factory, cache))
	}
	return nil
}

func toConcreteRow(row []pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) []ast.Pattern {
	result := make([]ast.Pattern, len(row))
	for i, p := range row {
		result[i] = toConcrete(p, renamer, factory, cache)
	}
	return result
}

// ToExpression converts p to the surface expression of the value it
// matches. Bindings become references, and an absurd pattern becomes the
// empty tuple.
func ToExpression(p pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) ast.Expression {
	if cache == nil {
		cache = make(map[*core.Binding]*ast.Identifier)
	}
	return toExpression(p, renamer, factory, cache)
}

func ToExpressionRow(row []pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) []ast.Expression {
	if cache == nil {
		cache = make(map[*core.Binding]*ast.Identifier)
	}
	return toExpressionRow(row, renamer, factory, cache)
}

func toExpression(p pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) ast.Expression {
	switch pat := p.(type) {
	case *pattern.BindingPattern:
		return factory.Ref(local(pat.Binding, renamer, factory, cache))
	case *pattern.AbsurdPattern:
		return factory.Tuple(nil)
	case *pattern.ConPattern:
		return factory.App(factory.DefRef(pat.Definition), toExpressionRow(pat.Args, renamer, factory, cache))
	case *pattern.TuplePattern:
		return factory.Tuple(toExpressionRow(pat.Fields, renamer, factory, cache))
	}
	return nil
}

func toExpressionRow(row []pattern.Pattern, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) []ast.Expression {
	result := make([]ast.Expression, len(row))
	for i, p := range row {
		result[i] = toExpression(p, renamer, factory, cache)
	}
	return result
}

func local(b *core.Binding, renamer Renamer, factory Factory, cache map[*core.Binding]*ast.Identifier) *ast.Identifier {
	if ref, ok := cache[b]; ok {
		return ref
	}
	ref := factory.Local(renamer.NameFor(b))
	cache[b] = ref
	return ref
}
