package diagnostics

import (
	"fmt"
	"strings"

	"github.com/funvibe/patcover/internal/token"
)

type ErrorCode string

const (
	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token
	ErrP003 ErrorCode = "P003" // trailing input
	ErrP004 ErrorCode = "P004" // illegal character

	// Analyzer
	ErrA001 ErrorCode = "A001" // undeclared name
	ErrA002 ErrorCode = "A002" // duplicate declaration
	ErrA003 ErrorCode = "A003" // pattern does not fit its type
	ErrA004 ErrorCode = "A004" // wrong number of arguments
	ErrA005 ErrorCode = "A005" // absurd pattern on an inhabited type
	ErrA006 ErrorCode = "A006" // not a type
	ErrA007 ErrorCode = "A007" // constructor index cannot be decided
)

var messages = map[ErrorCode]string{
	ErrP001: "unexpected token %s",
	ErrP002: "expected %s, got %s",
	ErrP003: "unexpected %s after end of input",
	ErrP004: "illegal character %q",

	ErrA001: "undeclared name '%s'",
	ErrA002: "'%s' is already declared in %s",
	ErrA003: "pattern %s does not match type %s",
	ErrA004: "'%s' expects %d arguments, got %d",
	ErrA005: "absurd pattern on type %s, which may be inhabited",
	ErrA006: "'%s' is not a type",
	ErrA007: "pattern %s cannot be checked against %s: index match is %s",
}

// DiagnosticError is an error attached to a source position.
type DiagnosticError struct {
	Code  ErrorCode
	Token token.Token
	File  string
	Args  []interface{}
}

func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Args: args}
}

func (e *DiagnosticError) Message() string {
	format, ok := messages[e.Code]
	if !ok || strings.Count(format, "%")-2*strings.Count(format, "%%") != len(e.Args) {
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = fmt.Sprint(a)
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprintf(format, e.Args...)
}

func (e *DiagnosticError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(":")
	}
	if e.Token.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", e.Token.Line, e.Token.Column)
	} else if e.File != "" {
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message())
	return b.String()
}
