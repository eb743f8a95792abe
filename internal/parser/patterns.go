package parser

import (
	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/token"
)

func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Type {
	case token.UNDERSCORE:
		return &ast.WildcardPattern{Token: p.curToken}
	case token.IDENT, token.IDENT_UPPER:
		if p.peekTokenIs(token.LPAREN) {
			return p.parseConstructorPattern()
		}
		return &ast.IdentifierPattern{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.LPAREN:
		return p.parseTuplePattern()
	default:
		p.unexpected()
		return nil
	}
}

func (p *Parser) parseConstructorPattern() ast.Pattern {
	pat := &ast.ConstructorPattern{
		Token:    p.curToken,
		Name:     &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		Elements: []ast.Pattern{},
	}
	p.nextToken() // '('
	if _, ok := p.parseList(p.appendPattern(&pat.Elements)); !ok {
		return nil
	}
	return pat
}

// parseTuplePattern handles (), (p), (p,) and (a, b, ...). A parenthesized
// single pattern without a trailing comma is just that pattern.
func (p *Parser) parseTuplePattern() ast.Pattern {
	pat := &ast.TuplePattern{Token: p.curToken, Elements: []ast.Pattern{}}
	trailing, ok := p.parseList(p.appendPattern(&pat.Elements))
	if !ok {
		return nil
	}
	if len(pat.Elements) == 1 && !trailing {
		return pat.Elements[0]
	}
	return pat
}

func (p *Parser) appendPattern(dst *[]ast.Pattern) func() bool {
	return func() bool {
		el := p.parsePattern()
		if el == nil {
			return false
		}
		*dst = append(*dst, el)
		return true
	}
}
