package lexer

import (
	"errors"
	"testing"
)

func TestTokenizeStatement(t *testing.T) {
	input := "x = 10 + 5 * (3 - 2)"

	expected := []Token{
		{Type: IDENT, Literal: "x"},
		{Type: ASSIGN, Literal: "="},
		{Type: NUMBER, Literal: "10"},
		{Type: PLUS, Literal: "+"},
		{Type: NUMBER, Literal: "5"},
		{Type: MULTIPLY, Literal: "*"},
		{Type: LPAREN, Literal: "("},
		{Type: NUMBER, Literal: "3"},
		{Type: MINUS, Literal: "-"},
		{Type: NUMBER, Literal: "2"},
		{Type: RPAREN, Literal: ")"},
	}

	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}

	for i, want := range expected {
		if tokens[i] != want {
			t.Errorf("token %d: expected %s, got %s", i, want, tokens[i])
		}
	}
}

func TestTokenizeNewlinesAndDivision(t *testing.T) {
	input := "x = 10\ny = x / 2"

	expected := []Token{
		{Type: IDENT, Literal: "x"},
		{Type: ASSIGN, Literal: "="},
		{Type: NUMBER, Literal: "10"},
		{Type: NEWLINE, Literal: "\n"},
		{Type: IDENT, Literal: "y"},
		{Type: ASSIGN, Literal: "="},
		{Type: IDENT, Literal: "x"},
		{Type: DIVIDE, Literal: "/"},
		{Type: NUMBER, Literal: "2"},
	}

	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}

	for i, want := range expected {
		if tokens[i] != want {
			t.Errorf("token %d: expected %s, got %s", i, want, tokens[i])
		}
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"_count = 1", "_count"},
		{"total_2 = 1", "total_2"},
		{"CamelCase = 1", "CamelCase"},
	}

	for _, tt := range tests {
		tokens, err := NewLexer(tt.input).Tokenize()
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", tt.input, err)
		}
		if tokens[0].Type != IDENT || tokens[0].Literal != tt.want {
			t.Errorf("Tokenize(%q): expected IDENT %q, got %s", tt.input, tt.want, tokens[0])
		}
	}
}

func TestTokenizeRejectsUnknownCharacter(t *testing.T) {
	_, err := NewLexer("x = 5 $ 2").Tokenize()
	if err == nil {
		t.Fatal("Expected lex error for '$', got none")
	}

	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected LexError, got %T: %v", err, err)
	}
	if lexErr.Char != '$' {
		t.Errorf("Expected offending char '$', got %q", lexErr.Char)
	}
	if lexErr.Offset != 6 {
		t.Errorf("Expected offset 6, got %d", lexErr.Offset)
	}
}

func TestTokenizeDiscardsWhitespace(t *testing.T) {
	tokens, err := NewLexer("  x\t=  1  ").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, err := NewLexer("").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("Expected no tokens for empty input, got %v", tokens)
	}
}
