// Package lexer 实现 jRust 源码的词法分析
package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/jrustlang/jrust/internal/i18n"
)

// Error 表示带位置信息的词法错误
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Lexer 词法分析器
type Lexer struct {
	input        []rune
	position     int  // 当前字符位置
	readPosition int  // 下一个要读取的位置
	ch           rune // 当前字符, 0 表示 EOF
	line         int
	column       int
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{input: []rune(input), line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize 把整个输入转换为 token 序列, 遇到第一个错误即返回
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens, nil
		}
	}
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar 查看下一个字符但不前进
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace 跳过空白字符, 换行时更新行号
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

// skipComment 跳过 // 到行尾的注释
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// NextToken 返回下一个 token
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	for l.ch == '/' && l.peekChar() == '/' {
		l.skipComment()
		l.skipWhitespace()
	}

	line, column := l.line, l.column
	var tok Token

	switch l.ch {
	case 0:
		return Token{Type: TOKEN_EOF, Literal: "", Line: line, Column: column}, nil
	case '+':
		tok = l.newToken(TOKEN_PLUS)
	case '-':
		tok = l.newToken(TOKEN_MINUS)
	case '*':
		tok = l.newToken(TOKEN_ASTERISK)
	case '/':
		tok = l.newToken(TOKEN_SLASH)
	case '%':
		tok = l.newToken(TOKEN_PERCENT)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_EQ, Literal: "==", Line: line, Column: column}
		} else {
			tok = l.newToken(TOKEN_ASSIGN)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_NOT_EQ, Literal: "!=", Line: line, Column: column}
		} else {
			tok = l.newToken(TOKEN_NOT)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_GT_EQ, Literal: ">=", Line: line, Column: column}
		} else {
			tok = l.newToken(TOKEN_GT)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_LT_EQ, Literal: "<=", Line: line, Column: column}
		} else {
			tok = l.newToken(TOKEN_LT)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = Token{Type: TOKEN_AND, Literal: "&&", Line: line, Column: column}
		} else {
			tok = l.newToken(TOKEN_BIT_AND)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = Token{Type: TOKEN_OR, Literal: "||", Line: line, Column: column}
		} else {
			return Token{}, &Error{Line: line, Column: column, Message: i18n.T(i18n.ErrUnexpectedChar, l.ch, line, column)}
		}
	case ':':
		tok = l.newToken(TOKEN_COLON)
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON)
	case ',':
		tok = l.newToken(TOKEN_COMMA)
	case '.':
		tok = l.newToken(TOKEN_DOT)
	case '(':
		tok = l.newToken(TOKEN_LPAREN)
	case ')':
		tok = l.newToken(TOKEN_RPAREN)
	case '{':
		tok = l.newToken(TOKEN_LBRACE)
	case '}':
		tok = l.newToken(TOKEN_RBRACE)
	case '[':
		tok = l.newToken(TOKEN_LBRACKET)
	case ']':
		tok = l.newToken(TOKEN_RBRACKET)
	case '"':
		return l.readString(line, column)
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return Token{Type: LookupIdent(literal), Literal: literal, Line: line, Column: column}, nil
		}
		if isDigit(l.ch) {
			return l.readNumber(line, column)
		}
		return Token{}, &Error{Line: line, Column: column, Message: i18n.T(i18n.ErrUnexpectedChar, l.ch, line, column)}
	}

	l.readChar()
	return tok, nil
}

func (l *Lexer) newToken(t TokenType) Token {
	return Token{Type: t, Literal: string(l.ch), Line: l.line, Column: l.column}
}

// readIdentifier 读取标识符或关键字
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || unicode.IsNumber(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

// readNumber 读取整数字面量, 超出 i32 范围报错
func (l *Lexer) readNumber(line, column int) (Token, error) {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	literal := string(l.input[position:l.position])
	if _, err := strconv.ParseInt(literal, 10, 32); err != nil {
		return Token{}, &Error{Line: line, Column: column, Message: i18n.T(i18n.ErrInvalidNumber, literal, line, column)}
	}
	return Token{Type: TOKEN_INT, Literal: literal, Line: line, Column: column}, nil
}

// readString 读取字符串字面量, 处理转义序列
// 错误位置指向字符串的起始引号
func (l *Lexer) readString(line, column int) (Token, error) {
	var out []rune
	l.readChar() // 跳过开头的引号
	for l.ch != '"' {
		if l.ch == 0 {
			return Token{}, &Error{Line: line, Column: column, Message: i18n.T(i18n.ErrUnterminatedString, line, column)}
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return Token{}, &Error{Line: line, Column: column, Message: i18n.T(i18n.ErrUnterminatedString, line, column)}
			}
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			default:
				out = append(out, '\\', l.ch)
			}
		} else {
			out = append(out, l.ch)
		}
		l.readChar()
	}
	l.readChar() // 跳过结尾的引号
	return Token{Type: TOKEN_STRING, Literal: string(out), Line: line, Column: column}, nil
}

// 标识符接受 Unicode 字母, 数字字面量只接受 ASCII 数字
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// String 便于调试输出
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", TokenTypeName(t.Type), t.Literal, t.Line, t.Column)
}
