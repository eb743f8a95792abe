package symbols

import (
	"github.com/funvibe/patcover/internal/core"
)

type SymbolKind int

type ScopeType int

const (
	ScopePrelude ScopeType = iota // Built-in definitions (Bool, Nat, Empty)
	ScopeGlobal                   // Fixture top-level
	ScopeLocal                    // Parameters of a declaration or case
)

const (
	VariableSymbol SymbolKind = iota
	TypeSymbol
	ConstructorSymbol
	FunctionSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case VariableSymbol:
		return "variable"
	case TypeSymbol:
		return "type"
	case ConstructorSymbol:
		return "constructor"
	case FunctionSymbol:
		return "function"
	default:
		return "symbol"
	}
}

type Symbol struct {
	Name           string
	Kind           SymbolKind
	Definition     core.Definition // For types, constructors and functions
	Binding        *core.Binding   // For variables
	DefinitionFile string          // The file path where this symbol was defined
}

// IsPatternTag reports whether the symbol can head a constructor pattern.
func (s Symbol) IsPatternTag() bool {
	return s.Kind == ConstructorSymbol || s.Kind == FunctionSymbol
}

type SymbolTable struct {
	store     map[string]Symbol
	outer     *SymbolTable
	scopeType ScopeType
	file      string
}
