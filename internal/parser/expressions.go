package parser

import (
	"github.com/funvibe/patcover/internal/ast"
	"github.com/funvibe/patcover/internal/token"
)

func (p *Parser) parseExpression() ast.Expression {
	switch p.curToken.Type {
	case token.TYPE:
		return &ast.UniverseLiteral{Token: p.curToken}
	case token.IDENT, token.IDENT_UPPER:
		return p.parseIdentifierOrCall()
	case token.SIGMA:
		return p.parseSigmaType()
	case token.LPAREN:
		return p.parseGroupedExpression()
	default:
		p.unexpected()
		return nil
	}
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.peekTokenIs(token.LPAREN) {
		return ident
	}
	p.nextToken()
	call := &ast.CallExpression{Token: p.curToken, Function: ident, Arguments: []ast.Expression{}}
	_, ok := p.parseList(func() bool {
		arg := p.parseExpression()
		if arg == nil {
			return false
		}
		call.Arguments = append(call.Arguments, arg)
		return true
	})
	if !ok {
		return nil
	}
	return call
}

// parseGroupedExpression handles (), (e), (e,) and (a, b, ...).
func (p *Parser) parseGroupedExpression() ast.Expression {
	tuple := &ast.TupleLiteral{Token: p.curToken, Elements: []ast.Expression{}}
	trailing, ok := p.parseList(func() bool {
		exp := p.parseExpression()
		if exp == nil {
			return false
		}
		tuple.Elements = append(tuple.Elements, exp)
		return true
	})
	if !ok {
		return nil
	}
	if len(tuple.Elements) == 1 && !trailing {
		return tuple.Elements[0]
	}
	return tuple
}

func (p *Parser) parseSigmaType() ast.Expression {
	sigma := &ast.SigmaType{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	_, ok := p.parseList(func() bool {
		param := p.parseParameter()
		if param == nil {
			return false
		}
		sigma.Params = append(sigma.Params, param)
		return true
	})
	if !ok {
		return nil
	}
	return sigma
}

// parseParameter parses `name : Type` or an anonymous `Type`.
func (p *Parser) parseParameter() *ast.Parameter {
	if (token.IsIdentifier(p.curToken.Type) || p.curTokenIs(token.UNDERSCORE)) && p.peekTokenIs(token.COLON) {
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		param := &ast.Parameter{Token: p.curToken, Name: name}
		p.nextToken() // ':'
		p.nextToken()
		param.Type = p.parseExpression()
		if param.Type == nil {
			return nil
		}
		return param
	}
	tok := p.curToken
	typ := p.parseExpression()
	if typ == nil {
		return nil
	}
	return &ast.Parameter{Token: tok, Type: typ}
}
