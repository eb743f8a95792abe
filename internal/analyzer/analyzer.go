// Package analyzer is the front end of the checker: it turns fixture
// declarations into core definitions and elaborates surface patterns into
// typed pattern trees.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/funvibe/patcover/internal/diagnostics"
	"github.com/funvibe/patcover/internal/symbols"
)

// Analyzer resolves names against a symbol table. Declarations go into the
// table; cases only read it.
type Analyzer struct {
	symbolTable *symbols.SymbolTable
}

func New(symbolTable *symbols.SymbolTable) *Analyzer {
	return &Analyzer{symbolTable: symbolTable}
}

func (a *Analyzer) SymbolTable() *symbols.SymbolTable {
	return a.symbolTable
}

// parseError merges the parser's diagnostics into one error.
func parseError(src string, errs []*diagnostics.DiagnosticError) error {
	if len(errs) == 0 {
		return nil
	}
	all := make([]error, len(errs))
	for i, e := range errs {
		all[i] = e
	}
	return fmt.Errorf("in %q: %w", src, errors.Join(all...))
}

// withFile prefixes errs with the fixture path.
func withFile(path string, errs []error) []error {
	result := make([]error, len(errs))
	for i, err := range errs {
		result[i] = fmt.Errorf("%s: %w", path, err)
	}
	return result
}
