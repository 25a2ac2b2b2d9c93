package parser

import (
	"strconv"

	"Calcline/internal/ast"
	"Calcline/internal/lexer"
)

// parseExpression parses `term (('+' | '-') term)*`. Multiplication and
// division bind tighter because term is the repetition unit here, so the
// loops layer the precedence without an explicit table.
func (p *Parser) parseExpression() (ast.Expression, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curTokenIs(lexer.PLUS) || p.curTokenIs(lexer.MINUS) {
		op := p.curToken().Literal
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryExpression{Left: node, Op: op, Right: right}
	}

	return node, nil
}

// parseTerm parses `factor (('*' | '/') factor)*`, left-associative.
func (p *Parser) parseTerm() (ast.Expression, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curTokenIs(lexer.MULTIPLY) || p.curTokenIs(lexer.DIVIDE) {
		op := p.curToken().Literal
		p.advance()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryExpression{Left: node, Op: op, Right: right}
	}

	return node, nil
}

// parseFactor parses `NUMBER | identifier | '(' expr ')'`.
func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.curToken()

	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, &ParseError{Expected: "integer literal", Found: tok}
		}
		return &ast.NumberLiteral{Value: value}, nil
	case lexer.IDENT:
		p.advance()
		return &ast.Identifier{Name: tok.Literal}, nil
	case lexer.LPAREN:
		p.advance()
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RPAREN); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, &ParseError{Expected: "number, identifier or '('", Found: tok}
	}
}
