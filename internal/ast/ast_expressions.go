package ast

import (
	"github.com/funvibe/patcover/internal/token"
)

// CallExpression applies a definition or constructor to arguments.
// suc(n), Vec(A, n)
type CallExpression struct {
	Token     token.Token // The '(' token
	Function  *Identifier
	Arguments []Expression
}

func (ce *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// Parameter is one named field of a sigma type.
// n : Nat
type Parameter struct {
	Token token.Token // The parameter name
	Name  *Identifier
	Type  Expression
}

// SigmaType is a dependent product: later field types may mention earlier
// field names.
// Sigma(n : Nat, v : Vec(A, n))
type SigmaType struct {
	Token  token.Token // The 'Sigma' token
	Params []*Parameter
}

func (st *SigmaType) Accept(v Visitor)      { v.VisitSigmaType(st) }
func (st *SigmaType) expressionNode()       {}
func (st *SigmaType) TokenLiteral() string  { return st.Token.Lexeme }
func (st *SigmaType) GetToken() token.Token { return st.Token }
