package parser

import (
	"fmt"

	"Calcline/internal/lexer"
)

// Parser walks a fully tokenized input left to right with one token of
// lookahead. It never backtracks; the first failed expectation aborts the
// parse.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseError reports a grammar mismatch: the construct the parser expected
// and the token it actually found.
type ParseError struct {
	Expected string
	Found    lexer.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Found)
}

// curToken synthesizes an EOF token when the cursor has moved past the last
// real token; the lexer never emits one.
func (p *Parser) curToken() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Type: lexer.EOF, Literal: ""}
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken().Type == t
}

func (p *Parser) consume(t lexer.TokenType) (lexer.Token, error) {
	tok := p.curToken()
	if tok.Type != t {
		return tok, &ParseError{Expected: string(t), Found: tok}
	}
	p.advance()
	return tok, nil
}
