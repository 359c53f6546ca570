package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `10 + 5 == x
x * 2
rate - 3 / (4 % 2)
2 ^ 10
25 ml to tablespoon
atan2(1, 2)
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{NUMBER, "10"},
		{PLUS, "+"},
		{NUMBER, "5"},
		{ASSIGN, "=="},
		{IDENT, "x"},
		{IDENT, "x"},
		{ASTERISK, "*"},
		{NUMBER, "2"},
		{IDENT, "rate"},
		{MINUS, "-"},
		{NUMBER, "3"},
		{SLASH, "/"},
		{LPAREN, "("},
		{NUMBER, "4"},
		{PERCENT, "%"},
		{NUMBER, "2"},
		{RPAREN, ")"},
		{NUMBER, "2"},
		{CARET, "^"},
		{NUMBER, "10"},
		{NUMBER, "25"},
		{IDENT, "ml"},
		{TO, "to"},
		{IDENT, "tablespoon"},
		{IDENT, "atan2"},
		{LPAREN, "("},
		{NUMBER, "1"},
		{COMMA, ","},
		{NUMBER, "2"},
		{RPAREN, ")"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{"42", []Token{
			{Type: NUMBER, Literal: "42"},
		}},
		{"3.14159", []Token{
			{Type: NUMBER, Literal: "3.14159"},
		}},
		// No exponent notation: "1e10" is a number then an identifier.
		{"1e10", []Token{
			{Type: NUMBER, Literal: "1"},
			{Type: IDENT, Literal: "e10"},
		}},
		// A trailing dot does not start a fractional part.
		{"5.", []Token{
			{Type: NUMBER, Literal: "5"},
			{Type: ILLEGAL, Literal: "."},
		}},
		// Adjacent unit suffix splits cleanly.
		{"25ml", []Token{
			{Type: NUMBER, Literal: "25"},
			{Type: IDENT, Literal: "ml"},
		}},
	}

	for _, tt := range tests {
		l := New(tt.input)
		for i, want := range tt.expected {
			tok := l.NextToken()
			if tok.Type != want.Type {
				t.Fatalf("input %q token[%d] - tokentype wrong. expected=%q, got=%q",
					tt.input, i, want.Type, tok.Type)
			}
			if tok.Literal != want.Literal {
				t.Fatalf("input %q token[%d] - literal wrong. expected=%q, got=%q",
					tt.input, i, want.Literal, tok.Literal)
			}
		}
		if tok := l.NextToken(); tok.Type != EOF {
			t.Fatalf("input %q - expected EOF after tokens, got %q", tt.input, tok.Type)
		}
	}
}

func TestConversionKeywordsAreCaseInsensitive(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"to", TO},
		{"To", TO},
		{"TO", TO},
		{"in", IN},
		{"In", IN},
		{"IN", IN},
		{"into", IDENT},
		{"tot", IDENT},
		{"x", IDENT},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.expected {
			t.Errorf("LookupIdent(%q) = %q, want %q", tt.ident, got, tt.expected)
		}
	}
}

// TestUnicodeIdentifiers tests that Unicode letters are recognized as identifiers
func TestUnicodeIdentifiers(t *testing.T) {
	input := "3.14 == π"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{NUMBER, "3.14"},
		{ASSIGN, "=="},
		{IDENT, "π"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - got (%q, %q), want (%q, %q)",
				i, tok.Type, tok.Literal, tt.expectedType, tt.expectedLiteral)
		}
	}
}

func TestIllegalRunes(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"°", "°"},
		{"=", "="},
		{"$", "$"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != ILLEGAL {
			t.Errorf("input %q - expected ILLEGAL, got %q", tt.input, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Errorf("input %q - literal wrong. expected=%q, got=%q", tt.input, tt.literal, tok.Literal)
		}
	}
}

func TestTokensHelper(t *testing.T) {
	toks := Tokens("1 + 2")
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens including EOF, got %d: %v", len(toks), toks)
	}
	if toks[len(toks)-1].Type != EOF {
		t.Fatalf("expected final token EOF, got %q", toks[len(toks)-1].Type)
	}
}

func TestTokenPositions(t *testing.T) {
	input := "1 + x\n2 * y"

	l := New(input)
	expected := []struct {
		line   int
		column int
	}{
		{1, 1}, // 1
		{1, 3}, // +
		{1, 5}, // x
		{2, 1}, // 2
		{2, 3}, // *
		{2, 5}, // y
	}

	for i, pos := range expected {
		tok := l.NextToken()
		if tok.Line != pos.line || tok.Column != pos.column {
			t.Errorf("token[%d] %q - position (%d,%d), want (%d,%d)",
				i, tok.Literal, tok.Line, tok.Column, pos.line, pos.column)
		}
	}
}

func BenchmarkLexer(b *testing.B) {
	input := "monthly * (1 + 22/100) - (10/100) + atan2(1, 2) ^ 2"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := New(input)
		for tok := l.NextToken(); tok.Type != EOF; tok = l.NextToken() {
		}
	}
}
