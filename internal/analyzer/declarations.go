package analyzer

import (
	"fmt"

	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/core"
	"github.com/funvibe/patcover/internal/diagnostics"
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/parser"
	"github.com/funvibe/patcover/internal/pattern"
	"github.com/funvibe/patcover/internal/symbols"
	"github.com/funvibe/patcover/internal/token"
)

// DeclareFixture builds core definitions for every declaration of fx and
// registers them in the analyzer's table.
//
// Names are registered first so declarations may refer to each other in any
// order, then parameter telescopes are resolved, then constructor and record
// fields and function bodies.
func (a *Analyzer) DeclareFixture(fx *fixture.Fixture) []error {
	d := &declarer{
		Analyzer:    a,
		dataDefs:    make(map[string]*core.DataDef),
		records:     make(map[string]*core.RecordDef),
		functions:   make(map[string]*core.FunctionDef),
		paramScopes: make(map[string]*symbols.SymbolTable),
	}

	d.registerNames(fx)
	if len(d.errors) > 0 {
		return d.errors
	}
	d.resolveSignatures(fx)
	if len(d.errors) > 0 {
		return d.errors
	}
	d.resolveBodies(fx)
	return d.errors
}

type declarer struct {
	*Analyzer
	dataDefs    map[string]*core.DataDef
	records     map[string]*core.RecordDef
	functions   map[string]*core.FunctionDef
	paramScopes map[string]*symbols.SymbolTable
	errors      []error
}

func (d *declarer) fail(where string, err error) {
	d.errors = append(d.errors, fmt.Errorf("%s: %w", where, err))
}

func (d *declarer) checkFree(name string) bool {
	sym, scope, ok := d.symbolTable.FindWithScope(name)
	if !ok {
		return true
	}
	origin := sym.DefinitionFile
	if scope.ScopeType() == symbols.ScopePrelude {
		origin = "prelude"
	} else if origin == "" {
		origin = "this fixture"
	}
	d.errors = append(d.errors, diagnostics.NewError(diagnostics.ErrA002, nameToken(name), name, origin))
	return false
}

func (d *declarer) registerNames(fx *fixture.Fixture) {
	for _, decl := range fx.Data {
		if !d.checkFree(decl.Name) {
			continue
		}
		def := core.NewDataDef(decl.Name, nil)
		d.dataDefs[decl.Name] = def
		d.symbolTable.DefineType(decl.Name, def)
		for _, c := range decl.Constructors {
			if !d.checkFree(c.Name) {
				continue
			}
			d.symbolTable.DefineConstructor(c.Name, def.AddConstructor(c.Name, nil))
		}
	}
	for _, decl := range fx.Records {
		if !d.checkFree(decl.Name) {
			continue
		}
		def := core.NewRecordDef(decl.Name, nil, nil)
		d.records[decl.Name] = def
		d.symbolTable.DefineType(decl.Name, def)
	}
	for _, decl := range fx.Functions {
		if !d.checkFree(decl.Name) {
			continue
		}
		def := core.NewFunctionDef(decl.Name, nil, nil, nil)
		d.functions[decl.Name] = def
		d.symbolTable.DefineFunction(decl.Name, def)
	}
}

func (d *declarer) resolveSignatures(fx *fixture.Fixture) {
	resolve := func(name string, params []fixture.Param) []*core.Binding {
		bindings, scope, err := d.ResolveParams(d.symbolTable, params)
		if err != nil {
			d.fail(name, err)
			return nil
		}
		d.paramScopes[name] = scope
		return bindings
	}
	for _, decl := range fx.Data {
		d.dataDefs[decl.Name].Params = resolve(decl.Name, decl.Params)
	}
	for _, decl := range fx.Records {
		d.records[decl.Name].Params = resolve(decl.Name, decl.Params)
	}
	for _, decl := range fx.Functions {
		fn := d.functions[decl.Name]
		fn.Params = resolve(decl.Name, decl.Params)
		scope, ok := d.paramScopes[decl.Name]
		if !ok {
			continue
		}
		result, err := d.ResolveTypeSource(scope, decl.Type)
		if err != nil {
			d.fail(decl.Name, err)
			continue
		}
		fn.Result = result
	}
}

func (d *declarer) resolveBodies(fx *fixture.Fixture) {
	for _, decl := range fx.Data {
		def := d.dataDefs[decl.Name]
		for i, c := range decl.Constructors {
			if err := d.resolveConstructor(def, def.Constructors[i], c); err != nil {
				d.fail(decl.Name+"."+c.Name, err)
			}
		}
	}
	for _, decl := range fx.Records {
		fields, _, err := d.ResolveParams(d.paramScopes[decl.Name], decl.Fields)
		if err != nil {
			d.fail(decl.Name, err)
			continue
		}
		d.records[decl.Name].Fields = fields
	}
	for _, decl := range fx.Functions {
		if decl.Body == "" {
			continue
		}
		body, err := d.ResolveSource(d.paramScopes[decl.Name], decl.Body)
		if err != nil {
			d.fail(decl.Name, err)
			continue
		}
		d.functions[decl.Name].Body = body
	}
}

// resolveConstructor fills in the fields of con. A plain constructor sees
// the data parameters; an indexed one sees the variables of its match
// patterns instead.
func (d *declarer) resolveConstructor(def *core.DataDef, con *core.ConstructorDef, decl fixture.ConstructorDecl) error {
	if len(decl.Match) == 0 {
		fields, _, err := d.ResolveParams(d.paramScopes[def.Name()], decl.Fields)
		if err != nil {
			return err
		}
		con.Fields = fields
		return nil
	}

	scope := symbols.NewEnclosedSymbolTable(d.symbolTable, symbols.ScopeLocal)
	row, err := d.parseRow(decl.Match)
	if err != nil {
		return err
	}
	elaborator := NewElaborator(d.symbolTable, scope)
	patterns, err := elaborator.ElaborateRow(row, core.NewTelescope(def.Params, nil))
	if err != nil {
		return err
	}
	for i, p := range patterns {
		if pattern.IsAbsurd(p) {
			return diagnostics.NewError(diagnostics.ErrA005, row[i].GetToken(), def.Params[i].Type.String())
		}
	}

	fields, _, err := d.ResolveParams(scope, decl.Fields)
	if err != nil {
		return err
	}
	con.PatternBindings = pattern.RowBindings(patterns)
	con.Patterns = make([]core.Expr, len(patterns))
	for i, p := range patterns {
		con.Patterns[i] = pattern.ToExpr(p)
	}
	con.Fields = fields
	return nil
}

// parseRow parses a row of patterns written in the surface syntax.
func (a *Analyzer) parseRow(sources []string) ([]ast.Pattern, error) {
	row := make([]ast.Pattern, len(sources))
	for i, src := range sources {
		p, errs := parser.ParsePatternString(src)
		if err := parseError(src, errs); err != nil {
			return nil, err
		}
		row[i] = p
	}
	return row, nil
}

func nameToken(name string) token.Token {
	return token.Token{Type: token.LookupIdent(name), Lexeme: name, Literal: name}
}
