package symbols

import (
	"sync"

	"github.com/funvibe/patcover/internal/core"
)

// Singleton prelude table containing all built-in definitions
var (
	preludeTable *SymbolTable
	preludeOnce  sync.Once
)

// GetPrelude returns the singleton prelude SymbolTable containing all built-in definitions.
// This table is shared across all fixtures; definitions are immutable.
func GetPrelude() *SymbolTable {
	preludeOnce.Do(func() {
		preludeTable = NewEmptySymbolTable()
		preludeTable.scopeType = ScopePrelude
		preludeTable.file = "prelude"
		preludeTable.InitBuiltins()
	})
	return preludeTable
}

// NewSymbolTable creates a new symbol table.
// It inherits from Prelude.
func NewSymbolTable() *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = GetPrelude()
	st.scopeType = ScopeGlobal
	return st
}

// InitBuiltins defines Bool, Nat and Empty.
func (s *SymbolTable) InitBuiltins() {
	boolean := core.NewDataDef("Bool", nil)
	s.DefineType("Bool", boolean)
	s.DefineConstructor("true", boolean.AddConstructor("true", nil))
	s.DefineConstructor("false", boolean.AddConstructor("false", nil))

	nat := core.NewDataDef("Nat", nil)
	s.DefineType("Nat", nat)
	s.DefineConstructor("zero", nat.AddConstructor("zero", nil))
	s.DefineConstructor("suc", nat.AddConstructor("suc", []*core.Binding{core.NewBinding("n", nat.Call())}))

	s.DefineType("Empty", core.NewDataDef("Empty", nil))
}
