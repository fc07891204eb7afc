package lexer

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_EOF TokenType = iota

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_INT    // 整数
	TOKEN_STRING // 字符串

	// 运算符
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *
	TOKEN_SLASH    // /
	TOKEN_PERCENT  // %
	TOKEN_ASSIGN   // =

	TOKEN_EQ     // ==
	TOKEN_NOT_EQ // !=
	TOKEN_GT     // >
	TOKEN_GT_EQ  // >=
	TOKEN_LT     // <
	TOKEN_LT_EQ  // <=

	TOKEN_AND // &&
	TOKEN_OR  // ||
	TOKEN_NOT // !

	TOKEN_BIT_AND // & (单独的 &，借用标记)

	// 分隔符
	TOKEN_COLON     // :
	TOKEN_SEMICOLON // ;
	TOKEN_COMMA     // ,
	TOKEN_DOT       // .

	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]

	// 关键字
	TOKEN_LET      // let
	TOKEN_CONST    // const
	TOKEN_FUNCTION // function
	TOKEN_RETURN   // return
	TOKEN_PRINT    // print
	TOKEN_IF       // if
	TOKEN_ELSE     // else
	TOKEN_FOR      // for
	TOKEN_IN       // in
	TOKEN_WHILE    // while
	TOKEN_BREAK    // break
	TOKEN_CONTINUE // continue
	TOKEN_STRUCT   // struct
	TOKEN_ENUM     // enum
	TOKEN_IMPORT   // import
	TOKEN_EXPORT   // export
	TOKEN_FROM     // from
	TOKEN_AS       // as
	TOKEN_TRY      // try
	TOKEN_CATCH    // catch
	TOKEN_THROW    // throw
	TOKEN_MUT      // mut
	TOKEN_TRUE     // true
	TOKEN_FALSE    // false

	// 类型关键字
	TOKEN_NUMBER_TYPE  // number
	TOKEN_STRING_TYPE  // string
	TOKEN_BOOLEAN_TYPE // boolean
	TOKEN_VOID         // void
	TOKEN_ANY          // any
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"let":      TOKEN_LET,
	"const":    TOKEN_CONST,
	"function": TOKEN_FUNCTION,
	"return":   TOKEN_RETURN,
	"print":    TOKEN_PRINT,
	"if":       TOKEN_IF,
	"else":     TOKEN_ELSE,
	"for":      TOKEN_FOR,
	"in":       TOKEN_IN,
	"while":    TOKEN_WHILE,
	"break":    TOKEN_BREAK,
	"continue": TOKEN_CONTINUE,
	"struct":   TOKEN_STRUCT,
	"enum":     TOKEN_ENUM,
	"import":   TOKEN_IMPORT,
	"export":   TOKEN_EXPORT,
	"from":     TOKEN_FROM,
	"as":       TOKEN_AS,
	"try":      TOKEN_TRY,
	"catch":    TOKEN_CATCH,
	"throw":    TOKEN_THROW,
	"mut":      TOKEN_MUT,
	"true":     TOKEN_TRUE,
	"false":    TOKEN_FALSE,
	"number":   TOKEN_NUMBER_TYPE,
	"string":   TOKEN_STRING_TYPE,
	"boolean":  TOKEN_BOOLEAN_TYPE,
	"void":     TOKEN_VOID,
	"any":      TOKEN_ANY,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	names := map[TokenType]string{
		TOKEN_EOF:          "EOF",
		TOKEN_IDENT:        "IDENT",
		TOKEN_INT:          "INT",
		TOKEN_STRING:       "STRING",
		TOKEN_PLUS:         "+",
		TOKEN_MINUS:        "-",
		TOKEN_ASTERISK:     "*",
		TOKEN_SLASH:        "/",
		TOKEN_PERCENT:      "%",
		TOKEN_ASSIGN:       "=",
		TOKEN_EQ:           "==",
		TOKEN_NOT_EQ:       "!=",
		TOKEN_GT:           ">",
		TOKEN_GT_EQ:        ">=",
		TOKEN_LT:           "<",
		TOKEN_LT_EQ:        "<=",
		TOKEN_AND:          "&&",
		TOKEN_OR:           "||",
		TOKEN_NOT:          "!",
		TOKEN_BIT_AND:      "&",
		TOKEN_COLON:        ":",
		TOKEN_SEMICOLON:    ";",
		TOKEN_COMMA:        ",",
		TOKEN_DOT:          ".",
		TOKEN_LPAREN:       "(",
		TOKEN_RPAREN:       ")",
		TOKEN_LBRACE:       "{",
		TOKEN_RBRACE:       "}",
		TOKEN_LBRACKET:     "[",
		TOKEN_RBRACKET:     "]",
		TOKEN_LET:          "let",
		TOKEN_CONST:        "const",
		TOKEN_FUNCTION:     "function",
		TOKEN_RETURN:       "return",
		TOKEN_PRINT:        "print",
		TOKEN_IF:           "if",
		TOKEN_ELSE:         "else",
		TOKEN_FOR:          "for",
		TOKEN_IN:           "in",
		TOKEN_WHILE:        "while",
		TOKEN_BREAK:        "break",
		TOKEN_CONTINUE:     "continue",
		TOKEN_STRUCT:       "struct",
		TOKEN_ENUM:         "enum",
		TOKEN_IMPORT:       "import",
		TOKEN_EXPORT:       "export",
		TOKEN_FROM:         "from",
		TOKEN_AS:           "as",
		TOKEN_TRY:          "try",
		TOKEN_CATCH:        "catch",
		TOKEN_THROW:        "throw",
		TOKEN_MUT:          "mut",
		TOKEN_TRUE:         "true",
		TOKEN_FALSE:        "false",
		TOKEN_NUMBER_TYPE:  "number",
		TOKEN_STRING_TYPE:  "string",
		TOKEN_BOOLEAN_TYPE: "boolean",
		TOKEN_VOID:         "void",
		TOKEN_ANY:          "any",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}
