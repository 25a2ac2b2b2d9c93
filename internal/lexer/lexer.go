package lexer

import "fmt"

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
}

const (
	NUMBER = "NUMBER"
	IDENT  = "IDENT"

	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	MULTIPLY = "*"
	DIVIDE   = "/"

	LPAREN  = "("
	RPAREN  = ")"
	NEWLINE = "NEWLINE"

	EOF = "EOF"
)

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
}

// LexError reports a character that matches no token pattern, together with
// its byte offset in the source.
type LexError struct {
	Char   byte
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

type Lexer struct {
	input    string
	position int
}

// matcher tries a single token pattern at the given offset and reports the
// matched length, zero meaning no match.
type matcher struct {
	tokenType TokenType
	match     func(input string, pos int) int
	skip      bool
}

// matchers is consulted in order on every cursor advance; the first pattern
// that matches wins. The ordering is a contract: whitespace must come before
// the implicit catch-all, and numbers/identifiers before anything that could
// consume their leading character.
var matchers = []matcher{
	{tokenType: NUMBER, match: matchNumber},
	{tokenType: IDENT, match: matchIdentifier},
	{tokenType: ASSIGN, match: matchByte('=')},
	{tokenType: PLUS, match: matchByte('+')},
	{tokenType: MINUS, match: matchByte('-')},
	{tokenType: MULTIPLY, match: matchByte('*')},
	{tokenType: DIVIDE, match: matchByte('/')},
	{tokenType: LPAREN, match: matchByte('(')},
	{tokenType: RPAREN, match: matchByte(')')},
	{tokenType: NEWLINE, match: matchByte('\n')},
	{match: matchSpace, skip: true},
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the entire input into a token sequence. Whitespace is
// recognized and discarded; a character no pattern matches aborts the scan
// with a LexError. The sequence never contains an EOF token, the parser
// synthesizes one when it reads past the end.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := []Token{}

	for l.position < len(l.input) {
		matched := false
		for _, m := range matchers {
			length := m.match(l.input, l.position)
			if length == 0 {
				continue
			}
			if !m.skip {
				tokens = append(tokens, Token{
					Type:    m.tokenType,
					Literal: l.input[l.position : l.position+length],
				})
			}
			l.position += length
			matched = true
			break
		}
		if !matched {
			return nil, &LexError{Char: l.input[l.position], Offset: l.position}
		}
	}

	return tokens, nil
}

func matchNumber(input string, pos int) int {
	end := pos
	for end < len(input) && isDigit(input[end]) {
		end++
	}
	return end - pos
}

func matchIdentifier(input string, pos int) int {
	if !isLetter(input[pos]) {
		return 0
	}
	end := pos + 1
	for end < len(input) && isAlphanumeric(input[end]) {
		end++
	}
	return end - pos
}

func matchByte(ch byte) func(input string, pos int) int {
	return func(input string, pos int) int {
		if input[pos] == ch {
			return 1
		}
		return 0
	}
}

func matchSpace(input string, pos int) int {
	end := pos
	for end < len(input) && (input[end] == ' ' || input[end] == '\t' || input[end] == '\r') {
		end++
	}
	return end - pos
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isAlphanumeric(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
