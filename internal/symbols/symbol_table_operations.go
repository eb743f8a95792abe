package symbols

import (
	"sort"

	"github.com/funvibe/patcover/internal/core"
)

func NewEmptySymbolTable() *SymbolTable {
	return &SymbolTable{
		store:     make(map[string]Symbol),
		scopeType: ScopeGlobal, // Default to global
	}
}

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = outer
	st.scopeType = scopeType
	if outer != nil {
		st.file = outer.file
	}
	return st
}

// ScopeType tells the prelude, the fixture's global scope and parameter
// scopes apart.
func (s *SymbolTable) ScopeType() ScopeType {
	return s.scopeType
}

// SetFile records the file that later definitions come from.
func (s *SymbolTable) SetFile(file string) {
	s.file = file
}

func (s *SymbolTable) Define(name string, b *core.Binding) {
	s.store[name] = Symbol{Name: name, Kind: VariableSymbol, Binding: b, DefinitionFile: s.file}
}

func (s *SymbolTable) DefineType(name string, def core.Definition) {
	s.store[name] = Symbol{Name: name, Kind: TypeSymbol, Definition: def, DefinitionFile: s.file}
}

func (s *SymbolTable) DefineConstructor(name string, con *core.ConstructorDef) {
	s.store[name] = Symbol{Name: name, Kind: ConstructorSymbol, Definition: con, DefinitionFile: s.file}
}

func (s *SymbolTable) DefineFunction(name string, fn *core.FunctionDef) {
	s.store[name] = Symbol{Name: name, Kind: FunctionSymbol, Definition: fn, DefinitionFile: s.file}
}

// FindWithScope looks name up through the enclosing scopes and also returns
// the table that defines it.
func (s *SymbolTable) FindWithScope(name string) (Symbol, *SymbolTable, bool) {
	for st := s; st != nil; st = st.outer {
		if sym, ok := st.store[name]; ok {
			return sym, st, true
		}
	}
	return Symbol{}, nil, false
}

func (s *SymbolTable) Find(name string) (Symbol, bool) {
	sym, _, ok := s.FindWithScope(name)
	return sym, ok
}

func (s *SymbolTable) IsDefined(name string) bool {
	_, ok := s.store[name]
	if !ok && s.outer != nil {
		return s.outer.IsDefined(name)
	}
	return ok
}

// IsDefinedLocally checks if a symbol is defined in the current scope (shallow check)
func (s *SymbolTable) IsDefinedLocally(name string) bool {
	_, ok := s.store[name]
	return ok
}

// IsGlobal reports whether name resolves to a definition rather than to a
// variable. Renderers use it to avoid naming a binding like a constructor.
func (s *SymbolTable) IsGlobal(name string) bool {
	sym, ok := s.Find(name)
	return ok && sym.Kind != VariableSymbol
}

// Names returns the names defined in the current scope, sorted.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.store))
	for name := range s.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
