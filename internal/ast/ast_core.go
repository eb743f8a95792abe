package ast

import (
	"github.com/funvibe/patcover/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Expression is a Node that represents a type or value expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Identifier represents a name: a variable, a definition or a constructor.
type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// NewIdentifier builds an identifier that does not come from source text.
func NewIdentifier(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.LookupIdent(name), Lexeme: name, Literal: name}, Value: name}
}

// UniverseLiteral is the type of types.
// Type
type UniverseLiteral struct {
	Token token.Token // The 'Type' token
}

func (ul *UniverseLiteral) Accept(v Visitor)      { v.VisitUniverseLiteral(ul) }
func (ul *UniverseLiteral) expressionNode()       {}
func (ul *UniverseLiteral) TokenLiteral() string  { return ul.Token.Lexeme }
func (ul *UniverseLiteral) GetToken() token.Token { return ul.Token }

// TupleLiteral represents a tuple value.
// (a, b) or ()
type TupleLiteral struct {
	Token    token.Token // The '(' token
	Elements []Expression
}

func (tl *TupleLiteral) Accept(v Visitor)     { v.VisitTupleLiteral(tl) }
func (tl *TupleLiteral) expressionNode()      {}
func (tl *TupleLiteral) TokenLiteral() string { return tl.Token.Lexeme }
func (tl *TupleLiteral) GetToken() token.Token {
	if tl == nil {
		return token.Token{}
	}
	return tl.Token
}
