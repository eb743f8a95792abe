package analyzer

import (
	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/diagnostics"
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/parser"
	"github.com/funvibe/patcover/internal/symbols"
)

// ResolveSource parses src and resolves it in scope.
func (a *Analyzer) ResolveSource(scope *symbols.SymbolTable, src string) (core.Expr, error) {
	exp, errs := parser.ParseExpressionString(src)
	if err := parseError(src, errs); err != nil {
		return nil, err
	}
	return a.ResolveExpression(scope, exp)
}

// ResolveTypeSource is ResolveSource for a position that needs a type.
func (a *Analyzer) ResolveTypeSource(scope *symbols.SymbolTable, src string) (core.Expr, error) {
	exp, errs := parser.ParseExpressionString(src)
	if err := parseError(src, errs); err != nil {
		return nil, err
	}
	return a.resolveType(scope, exp)
}

func (a *Analyzer) resolveType(scope *symbols.SymbolTable, exp ast.Expression) (core.Expr, error) {
	typ, err := a.ResolveExpression(scope, exp)
	if err != nil {
		return nil, err
	}
	if !isType(typ) {
		return nil, diagnostics.NewError(diagnostics.ErrA006, exp.GetToken(), typ.String())
	}
	return typ, nil
}

// isType reports whether e can be used as a type. Calls of functions whose
// result type is not resolved yet are accepted.
func isType(e core.Expr) bool {
	switch t := e.(type) {
	case *core.Universe, *core.DataCall, *core.ClassCall, *core.SigmaExpr:
		return true
	case *core.Ref:
		_, ok := core.Normalize(t.Binding.Type).(*core.Universe)
		return ok
	case *core.FuncCall:
		if t.Func.Result == nil {
			return true
		}
		_, ok := core.Normalize(t.Func.Result).(*core.Universe)
		return ok
	}
	return false
}

// ResolveExpression translates a surface expression into a core expression.
// Names are looked up in scope; definitions must be applied to exactly as many
// arguments as they declare.
func (a *Analyzer) ResolveExpression(scope *symbols.SymbolTable, exp ast.Expression) (core.Expr, error) {
	switch e := exp.(type) {
	case *ast.UniverseLiteral:
		return &core.Universe{}, nil
	case *ast.Identifier:
		return a.resolveApplication(scope, e, nil)
	case *ast.CallExpression:
		return a.resolveApplication(scope, e.Function, e.Arguments)
	case *ast.TupleLiteral:
		fields, err := a.resolveAll(scope, e.Elements)
		if err != nil {
			return nil, err
		}
		return &core.TupleExpr{Fields: fields}, nil
	case *ast.SigmaType:
		return a.resolveSigma(scope, e)
	default:
		return nil, diagnostics.NewError(diagnostics.ErrP001, exp.GetToken(), exp.TokenLiteral())
	}
}

func (a *Analyzer) resolveAll(scope *symbols.SymbolTable, exps []ast.Expression) ([]core.Expr, error) {
	result := make([]core.Expr, len(exps))
	for i, exp := range exps {
		e, err := a.ResolveExpression(scope, exp)
		if err != nil {
			return nil, err
		}
		result[i] = e
	}
	return result, nil
}

func (a *Analyzer) resolveApplication(scope *symbols.SymbolTable, fn *ast.Identifier, argExps []ast.Expression) (core.Expr, error) {
	sym, ok := scope.Find(fn.Value)
	if !ok {
		return nil, diagnostics.NewError(diagnostics.ErrA001, fn.Token, fn.Value)
	}
	args, err := a.resolveAll(scope, argExps)
	if err != nil {
		return nil, err
	}

	arity := func(want int) error {
		if len(args) != want {
			return diagnostics.NewError(diagnostics.ErrA004, fn.Token, fn.Value, want, len(args))
		}
		return nil
	}

	switch sym.Kind {
	case symbols.VariableSymbol:
		if err := arity(0); err != nil {
			return nil, err
		}
		return &core.Ref{Binding: sym.Binding}, nil
	}

	switch def := sym.Definition.(type) {
	case *core.DataDef:
		if err := arity(len(def.Params)); err != nil {
			return nil, err
		}
		return def.Call(args...), nil
	case *core.RecordDef:
		if err := arity(len(def.Params)); err != nil {
			return nil, err
		}
		return def.Call(args...), nil
	case *core.ConstructorDef:
		if err := arity(len(def.Fields)); err != nil {
			return nil, err
		}
		return def.Call(args...), nil
	case *core.FunctionDef:
		if err := arity(len(def.Params)); err != nil {
			return nil, err
		}
		return def.Call(args...), nil
	}
	return nil, diagnostics.NewError(diagnostics.ErrA001, fn.Token, fn.Value)
}

func (a *Analyzer) resolveSigma(scope *symbols.SymbolTable, sigma *ast.SigmaType) (core.Expr, error) {
	inner := symbols.NewEnclosedSymbolTable(scope, symbols.ScopeLocal)
	params := make([]*core.Binding, len(sigma.Params))
	for i, p := range sigma.Params {
		typ, err := a.resolveType(inner, p.Type)
		if err != nil {
			return nil, err
		}
		name := ""
		if p.Name != nil {
			name = p.Name.Value
		}
		params[i] = a.bind(inner, name, typ)
	}
	return &core.SigmaExpr{Params: params}, nil
}

// ResolveParams resolves a telescope of fixture parameters. Each type may
// mention the parameters before it. The returned scope encloses scope and
// defines every named parameter.
func (a *Analyzer) ResolveParams(scope *symbols.SymbolTable, params []fixture.Param) ([]*core.Binding, *symbols.SymbolTable, error) {
	inner := symbols.NewEnclosedSymbolTable(scope, symbols.ScopeLocal)
	bindings := make([]*core.Binding, len(params))
	for i, p := range params {
		typ, err := a.ResolveTypeSource(inner, p.Type)
		if err != nil {
			return nil, nil, err
		}
		bindings[i] = a.bind(inner, p.Name, typ)
	}
	return bindings, inner, nil
}

// bind creates a binding and defines it in scope unless it is anonymous.
func (a *Analyzer) bind(scope *symbols.SymbolTable, name string, typ core.Expr) *core.Binding {
	if name == config.WildcardName {
		name = ""
	}
	b := core.NewBinding(name, typ)
	if name != "" && scope != nil {
		scope.Define(name, b)
	}
	return b
}
