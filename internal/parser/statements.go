package parser

import (
	"Calcline/internal/ast"
	"Calcline/internal/lexer"
)

// ParseProgram parses every top-level statement in source order. Newline
// tokens between statements are skipped and produce no node.
func (p *Parser) ParseProgram() ([]ast.Statement, error) {
	statements := []ast.Statement{}

	for !p.curTokenIs(lexer.EOF) {
		if p.curTokenIs(lexer.NEWLINE) {
			p.advance()
			continue
		}

		stmt, err := p.parseAssignStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

// parseAssignStatement parses `identifier '=' expr`. Every top-level
// construct is an assignment; anything else is a grammar error.
func (p *Parser) parseAssignStatement() (*ast.AssignStatement, error) {
	target, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.AssignStatement{Target: target, Value: value}, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok := p.curToken()
	if tok.Type != lexer.IDENT {
		return nil, &ParseError{Expected: "identifier", Found: tok}
	}
	p.advance()
	return &ast.Identifier{Name: tok.Literal}, nil
}
