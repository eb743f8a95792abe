package parser

import (
	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/diagnostics"
	"github.com/funvibe/patcover/internal/lexer"
	"github.com/funvibe/patcover/internal/token"
)

// TokenStream is anything that produces tokens, typically a *lexer.Lexer.
type TokenStream interface {
	NextToken() token.Token
}

type Parser struct {
	stream TokenStream
	errors []*diagnostics.DiagnosticError

	curToken  token.Token
	peekToken token.Token
}

func New(stream TokenStream) *Parser {
	p := &Parser{stream: stream}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every problem found so far. Parsing does not stop at the
// first error.
func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

// ParsePattern parses a single pattern spanning the whole input.
func (p *Parser) ParsePattern() ast.Pattern {
	pat := p.parsePattern()
	p.expectEnd()
	return pat
}

// ParseExpression parses a single type or value expression spanning the
// whole input.
func (p *Parser) ParseExpression() ast.Expression {
	exp := p.parseExpression()
	p.expectEnd()
	return exp
}

// ParsePatternString lexes and parses input as a pattern.
func ParsePatternString(input string) (ast.Pattern, []*diagnostics.DiagnosticError) {
	p := New(lexer.New(input))
	pat := p.ParsePattern()
	return pat, p.Errors()
}

// ParseExpressionString lexes and parses input as an expression.
func ParseExpressionString(input string) (ast.Expression, []*diagnostics.DiagnosticError) {
	p := New(lexer.New(input))
	exp := p.ParseExpression()
	return exp, p.Errors()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.NextToken()
	if p.peekToken.Type == token.ILLEGAL {
		p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP004, p.peekToken, p.peekToken.Lexeme))
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP002, p.peekToken, t, describe(p.peekToken)))
}

func (p *Parser) unexpected() {
	if p.curTokenIs(token.ILLEGAL) {
		// already reported when it was read
		return
	}
	p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP001, p.curToken, describe(p.curToken)))
}

// expectEnd is called with curToken on the last token of a complete
// construct.
func (p *Parser) expectEnd() {
	if len(p.errors) > 0 || p.peekTokenIs(token.EOF) {
		return
	}
	p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP003, p.peekToken, describe(p.peekToken)))
}

func describe(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

// parseList parses `elem {, elem} [,]` up to the closing parenthesis, with
// curToken on '('. It leaves curToken on ')'. trailing reports whether the
// list ended with a comma.
func (p *Parser) parseList(elem func() bool) (trailing bool, ok bool) {
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return false, true
	}
	for {
		p.nextToken()
		if !elem() {
			return false, false
		}
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // consume comma
		if p.peekTokenIs(token.RPAREN) {
			trailing = true
			break
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return false, false
	}
	return trailing, true
}
