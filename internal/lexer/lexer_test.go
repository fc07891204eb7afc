package lexer

import (
	"os"
	"strings"
	"testing"

	"github.com/jrustlang/jrust/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func TestNextToken(t *testing.T) {
	input := `let x: number = 42;`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LET, "let"},
		{TOKEN_IDENT, "x"},
		{TOKEN_COLON, ":"},
		{TOKEN_NUMBER_TYPE, "number"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_INT, "42"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%s, got=%s",
				i, TokenTypeName(tt.expectedType), TokenTypeName(tok.Type))
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = == != > >= < <= && || ! &`

	expected := []TokenType{
		TOKEN_PLUS, TOKEN_MINUS, TOKEN_ASTERISK, TOKEN_SLASH, TOKEN_PERCENT,
		TOKEN_ASSIGN, TOKEN_EQ, TOKEN_NOT_EQ, TOKEN_GT, TOKEN_GT_EQ,
		TOKEN_LT, TOKEN_LT_EQ, TOKEN_AND, TOKEN_OR, TOKEN_NOT, TOKEN_BIT_AND,
		TOKEN_EOF,
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("wrong token count. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, want := range expected {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d] - expected=%s, got=%s",
				i, TokenTypeName(want), TokenTypeName(tokens[i].Type))
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `let const function return print if else for in while break continue ` +
		`struct enum import export from as try catch throw mut true false ` +
		`number string boolean void any`

	expected := []TokenType{
		TOKEN_LET, TOKEN_CONST, TOKEN_FUNCTION, TOKEN_RETURN, TOKEN_PRINT,
		TOKEN_IF, TOKEN_ELSE, TOKEN_FOR, TOKEN_IN, TOKEN_WHILE,
		TOKEN_BREAK, TOKEN_CONTINUE, TOKEN_STRUCT, TOKEN_ENUM, TOKEN_IMPORT,
		TOKEN_EXPORT, TOKEN_FROM, TOKEN_AS, TOKEN_TRY, TOKEN_CATCH,
		TOKEN_THROW, TOKEN_MUT, TOKEN_TRUE, TOKEN_FALSE,
		TOKEN_NUMBER_TYPE, TOKEN_STRING_TYPE, TOKEN_BOOLEAN_TYPE, TOKEN_VOID, TOKEN_ANY,
		TOKEN_EOF,
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range expected {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d] - expected=%s, got=%s",
				i, TokenTypeName(want), TokenTypeName(tokens[i].Type))
		}
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	tokens, err := Tokenize(`let café = 1;
let 名前1 = 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[1].Type != TOKEN_IDENT || tokens[1].Literal != "café" {
		t.Errorf("expected identifier café, got %s", tokens[1])
	}
	if tokens[6].Type != TOKEN_IDENT || tokens[6].Literal != "名前1" {
		t.Errorf("expected identifier 名前1, got %s", tokens[6])
	}

	// 数字字面量仍然只接受 ASCII 数字
	if _, err := Tokenize(`let x = ٣;`); err == nil {
		t.Error("expected error for non-ASCII digit literal")
	}
}

func TestLineAndColumn(t *testing.T) {
	input := "let x = 1;\nlet y = 2;"

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 第一行
	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("let: expected 1:1, got %d:%d", tokens[0].Line, tokens[0].Column)
	}
	if tokens[1].Line != 1 || tokens[1].Column != 5 {
		t.Errorf("x: expected 1:5, got %d:%d", tokens[1].Line, tokens[1].Column)
	}
	// 第二行
	if tokens[5].Line != 2 || tokens[5].Column != 1 {
		t.Errorf("second let: expected 2:1, got %d:%d", tokens[5].Line, tokens[5].Column)
	}
}

func TestComments(t *testing.T) {
	input := "// a comment\nlet x = 1; // trailing\n// another\nlet y = 2;"

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var idents []string
	for _, tok := range tokens {
		if tok.Type == TOKEN_IDENT {
			idents = append(idents, tok.Literal)
		}
	}
	if len(idents) != 2 || idents[0] != "x" || idents[1] != "y" {
		t.Errorf("expected idents [x y], got %v", idents)
	}
	if tokens[0].Line != 2 {
		t.Errorf("first token should be on line 2, got %d", tokens[0].Line)
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\rb"`, "a\rb"},
		{`"a\\b"`, `a\b`},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\qb"`, `a\qb`},
	}

	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("input %q - unexpected error: %v", tt.input, err)
		}
		if tokens[0].Type != TOKEN_STRING {
			t.Fatalf("input %q - expected STRING, got %s", tt.input, TokenTypeName(tokens[0].Type))
		}
		if tokens[0].Literal != tt.expected {
			t.Errorf("input %q - expected literal %q, got %q", tt.input, tt.expected, tokens[0].Literal)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	tests := []string{
		`"never closed`,
		`"ends with backslash\`,
	}

	for _, input := range tests {
		_, err := Tokenize(input)
		if err == nil {
			t.Fatalf("input %q - expected error, got none", input)
		}
		lexErr, ok := err.(*Error)
		if !ok {
			t.Fatalf("input %q - expected *Error, got %T", input, err)
		}
		// 错误位置指向起始引号
		if lexErr.Line != 1 || lexErr.Column != 1 {
			t.Errorf("input %q - expected error at 1:1, got %d:%d", input, lexErr.Line, lexErr.Column)
		}
		if !strings.Contains(lexErr.Message, "Unterminated string") {
			t.Errorf("input %q - unexpected message: %s", input, lexErr.Message)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	tokens, err := Tokenize("2147483647")
	if err != nil {
		t.Fatalf("i32 max should lex: %v", err)
	}
	if tokens[0].Literal != "2147483647" {
		t.Errorf("expected literal 2147483647, got %q", tokens[0].Literal)
	}

	_, err = Tokenize("2147483648")
	if err == nil {
		t.Fatal("expected overflow error, got none")
	}
	if !strings.Contains(err.Error(), "Invalid number '2147483648'") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("let x = 1 @")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.Contains(err.Error(), "Unexpected character '@'") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	// 单独的 | 不是合法 token
	_, err = Tokenize("a | b")
	if err == nil {
		t.Fatal("expected error for lone '|', got none")
	}
	if !strings.Contains(err.Error(), "Unexpected character '|'") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestEOFToken(t *testing.T) {
	tokens, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != TOKEN_EOF {
		t.Fatalf("empty input should produce exactly one EOF token, got %v", tokens)
	}

	tokens, err = Tokenize("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[len(tokens)-1].Type != TOKEN_EOF {
		t.Error("token stream must end with EOF")
	}
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Type == TOKEN_EOF {
			t.Error("EOF must only appear as the last token")
		}
	}
}
