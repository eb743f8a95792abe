package analyzer

import (
	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/diagnostics"
	"github.com/funvibe/patcover/internal/parser"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/prettyprinter"
	"github.com/funvibe/patcover/internal/symbols"
)

// Elaborator turns surface patterns into typed pattern trees. Tags are
// looked up in scope; pattern variables are defined in locals when it is
// not nil.
type Elaborator struct {
	scope  *symbols.SymbolTable
	locals *symbols.SymbolTable
}

func NewElaborator(scope, locals *symbols.SymbolTable) *Elaborator {
	return &Elaborator{scope: scope, locals: locals}
}

// ElaboratePattern elaborates p against typ. The second result is the value
// the pattern denotes, nil for an absurd pattern.
func (e *Elaborator) ElaboratePattern(p ast.Pattern, typ core.Expr) (pattern.Pattern, core.Expr, error) {
	var result pattern.Pattern
	var err error
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		result = pattern.Bind(core.NewBinding("", typ))
	case *ast.IdentifierPattern:
		result, err = e.elaborateIdentifier(pat, typ)
	case *ast.ConstructorPattern:
		result, err = e.elaborateConstructor(pat.Name, pat.Elements, typ)
	case *ast.TuplePattern:
		result, err = e.elaborateTuple(pat, typ)
	default:
		err = diagnostics.NewError(diagnostics.ErrA003, p.GetToken(), p.TokenLiteral(), typ.String())
	}
	if err != nil {
		return nil, nil, err
	}
	return result, pattern.ToExpr(result), nil
}

// ElaborateRow elaborates one pattern per entry of params. The value of each
// pattern is substituted into the types of the entries after it.
func (e *Elaborator) ElaborateRow(row []ast.Pattern, params *core.Telescope) ([]pattern.Pattern, error) {
	if len(row) != params.Len() {
		tok := nameToken(config.WildcardName)
		if len(row) > 0 {
			tok = row[0].GetToken()
		}
		return nil, diagnostics.NewError(diagnostics.ErrA004, tok, "row", params.Len(), len(row))
	}
	result := make([]pattern.Pattern, len(row))
	for i, p := range row {
		elaborated, value, err := e.ElaboratePattern(p, params.TypeExpr())
		if err != nil {
			return nil, err
		}
		result[i] = elaborated
		params = params.Advance(value)
	}
	return result, nil
}

// ElaborateSource parses and elaborates a row written in the surface syntax.
func (e *Elaborator) ElaborateSource(sources []string, params *core.Telescope) ([]pattern.Pattern, error) {
	row := make([]ast.Pattern, len(sources))
	for i, src := range sources {
		p, errs := parser.ParsePatternString(src)
		if err := parseError(src, errs); err != nil {
			return nil, err
		}
		row[i] = p
	}
	return e.ElaborateRow(row, params)
}

func (e *Elaborator) elaborateIdentifier(p *ast.IdentifierPattern, typ core.Expr) (pattern.Pattern, error) {
	if sym, ok := e.scope.Find(p.Value); ok && sym.IsPatternTag() {
		return e.elaborateConstructor(&ast.Identifier{Token: p.Token, Value: p.Value}, nil, typ)
	}
	b := core.NewBinding(p.Value, typ)
	if e.locals != nil {
		e.locals.Define(p.Value, b)
	}
	return pattern.Bind(b), nil
}

func (e *Elaborator) elaborateConstructor(name *ast.Identifier, elements []ast.Pattern, typ core.Expr) (pattern.Pattern, error) {
	sym, ok := e.scope.Find(name.Value)
	if !ok || !sym.IsPatternTag() {
		return nil, diagnostics.NewError(diagnostics.ErrA001, name.Token, name.Value)
	}

	var params *core.Telescope
	switch def := sym.Definition.(type) {
	case *core.ConstructorDef:
		call, ok := core.Normalize(typ).(*core.DataCall)
		if !ok || call.Data != def.Data {
			return nil, e.mismatch(name, elements, typ)
		}
		fields, match := def.Instantiate(call.Args)
		switch match {
		case core.MatchNo:
			return nil, e.mismatch(name, elements, typ)
		case core.MatchMaybe:
			return nil, diagnostics.NewError(diagnostics.ErrA007, name.Token,
				e.printConstructor(name, elements), typ.String(), match.String())
		}
		params = fields
	case *core.FunctionDef:
		params = core.NewTelescope(def.Params, nil)
	}

	if len(elements) != params.Len() {
		return nil, diagnostics.NewError(diagnostics.ErrA004, name.Token, name.Value, params.Len(), len(elements))
	}
	args, err := e.ElaborateRow(elements, params)
	if err != nil {
		return nil, err
	}
	return pattern.Con(sym.Definition, args...), nil
}

// elaborateTuple handles both tuples and the absurd pattern, which share
// the syntax "()".
func (e *Elaborator) elaborateTuple(p *ast.TuplePattern, typ core.Expr) (pattern.Pattern, error) {
	var params *core.Telescope
	switch t := core.Normalize(typ).(type) {
	case *core.SigmaExpr:
		params = t.Telescope()
	case *core.ClassCall:
		params = t.Telescope()
	case *core.DataCall:
		if len(p.Elements) == 0 {
			if cons, ok := core.MatchedConstructors(t); ok && len(cons) == 0 {
				return pattern.Absurd, nil
			}
			return nil, diagnostics.NewError(diagnostics.ErrA005, p.Token, typ.String())
		}
	}
	if params == nil {
		if len(p.Elements) == 0 {
			return nil, diagnostics.NewError(diagnostics.ErrA005, p.Token, typ.String())
		}
		return nil, diagnostics.NewError(diagnostics.ErrA003, p.Token, prettyprinter.Print(p), typ.String())
	}
	if len(p.Elements) != params.Len() {
		if len(p.Elements) == 0 {
			return nil, diagnostics.NewError(diagnostics.ErrA005, p.Token, typ.String())
		}
		return nil, diagnostics.NewError(diagnostics.ErrA004, p.Token, typ.String(), params.Len(), len(p.Elements))
	}
	fields, err := e.ElaborateRow(p.Elements, params)
	if err != nil {
		return nil, err
	}
	return pattern.Tuple(fields...), nil
}

func (e *Elaborator) mismatch(name *ast.Identifier, elements []ast.Pattern, typ core.Expr) error {
	return diagnostics.NewError(diagnostics.ErrA003, name.Token, e.printConstructor(name, elements), typ.String())
}

func (e *Elaborator) printConstructor(name *ast.Identifier, elements []ast.Pattern) string {
	return prettyprinter.Print(&ast.ConstructorPattern{Token: name.Token, Name: name, Elements: elements})
}
