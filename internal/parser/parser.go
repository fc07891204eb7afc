// Package parser 把 token 序列解析为 AST
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jrustlang/jrust/internal/i18n"
	"github.com/jrustlang/jrust/internal/lexer"
)

// Error 表示带位置信息的语法错误
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Parser 递归下降语法分析器
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New 创建一个新的语法分析器
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse 解析整个 token 序列, 遇到第一个错误即返回
func Parse(tokens []lexer.Token) (*Program, error) {
	return New(tokens).ParseProgram()
}

// ParseProgram 解析出完整的程序
func (p *Parser) ParseProgram() (*Program, error) {
	program := &Program{}
	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.peek().Type {
	case lexer.TOKEN_IMPORT:
		return p.parseImportStatement()
	case lexer.TOKEN_EXPORT:
		return p.parseExportStatement()
	case lexer.TOKEN_LET:
		return p.parseVariableDecl(false)
	case lexer.TOKEN_CONST:
		return p.parseVariableDecl(true)
	case lexer.TOKEN_FUNCTION:
		return p.parseFunctionDecl()
	case lexer.TOKEN_STRUCT:
		return p.parseStructDecl()
	case lexer.TOKEN_ENUM:
		return p.parseEnumDecl()
	case lexer.TOKEN_PRINT:
		return p.parsePrintStatement()
	case lexer.TOKEN_RETURN:
		return p.parseReturnStatement()
	case lexer.TOKEN_IF:
		return p.parseIfStatement()
	case lexer.TOKEN_FOR:
		return p.parseForStatement()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStatement()
	case lexer.TOKEN_BREAK:
		return p.parseBreakStatement()
	case lexer.TOKEN_CONTINUE:
		return p.parseContinueStatement()
	case lexer.TOKEN_TRY:
		return p.parseTryCatchStatement()
	case lexer.TOKEN_THROW:
		return p.parseThrowStatement()
	default:
		tok := p.peek()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after statement"); err != nil {
			return nil, err
		}
		return &ExpressionStatement{Token: tok, Expression: expr}, nil
	}
}

func (p *Parser) parseImportStatement() (Statement, error) {
	tok := p.advance()

	var items []ImportItem

	switch {
	case p.check(lexer.TOKEN_LBRACE):
		p.advance()
		for {
			name, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			alias := ""
			if p.match(lexer.TOKEN_AS) {
				alias, err = p.expectIdentifier()
				if err != nil {
					return nil, err
				}
			}
			items = append(items, ImportItem{Name: name, Alias: alias})
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
		if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after import list"); err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TOKEN_FROM, "Expected 'from' after import list"); err != nil {
			return nil, err
		}
	case p.check(lexer.TOKEN_IDENT):
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.match(lexer.TOKEN_FROM) {
			return nil, p.errorHere(i18n.T(i18n.ErrGeneric, "Expected 'from' after import identifier"))
		}
		items = append(items, ImportItem{Name: name})
	case p.check(lexer.TOKEN_STRING):
		// 只导入模块本身, 没有导入项
	default:
		return nil, p.errorHere(i18n.T(i18n.ErrGeneric, "Expected '{', identifier, or string literal in import statement"))
	}

	if !p.check(lexer.TOKEN_STRING) {
		return nil, p.errorHere(i18n.T(i18n.ErrGeneric, "Expected string literal for import path"))
	}
	path := p.advance().Literal
	isExternal := strings.Contains(path, "::") || !strings.HasPrefix(path, ".")

	// 路径后的 as 别名作用于第一个导入项
	if p.match(lexer.TOKEN_AS) {
		alias, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			items[0].Alias = alias
		}
	}

	if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after import statement"); err != nil {
		return nil, err
	}

	return &ImportStatement{Token: tok, Items: items, Path: path, IsExternal: isExternal}, nil
}

func (p *Parser) parseExportStatement() (Statement, error) {
	tok := p.advance()

	var (
		decl Statement
		err  error
	)
	switch p.peek().Type {
	case lexer.TOKEN_FUNCTION:
		decl, err = p.parseFunctionDecl()
	case lexer.TOKEN_STRUCT:
		decl, err = p.parseStructDecl()
	case lexer.TOKEN_ENUM:
		decl, err = p.parseEnumDecl()
	case lexer.TOKEN_CONST:
		decl, err = p.parseVariableDecl(true)
	case lexer.TOKEN_LET:
		decl, err = p.parseVariableDecl(false)
	default:
		return nil, p.errorHere(i18n.T(i18n.ErrExportUnsupported))
	}
	if err != nil {
		return nil, err
	}

	return &ExportStatement{Token: tok, Decl: decl}, nil
}

func (p *Parser) parseVariableDecl(isConst bool) (Statement, error) {
	tok := p.advance()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	var typ Type = &InferredType{}
	if p.match(lexer.TOKEN_COLON) {
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.TOKEN_ASSIGN, "Expected '=' in variable declaration"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}

	if isConst {
		return &ConstStatement{Token: tok, Name: name, Type: typ, Value: value}, nil
	}
	return &LetStatement{Token: tok, Name: name, Type: typ, Value: value}, nil
}

func (p *Parser) parseFunctionDecl() (Statement, error) {
	tok := p.advance()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_LPAREN, "Expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []Param
	if !p.check(lexer.TOKEN_RPAREN) {
		for {
			paramName, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.TOKEN_COLON, "Expected ':' in parameter"); err != nil {
				return nil, err
			}
			paramType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Name: paramName, Type: paramType})
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(lexer.TOKEN_RPAREN, "Expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_COLON, "Expected ':' after function signature"); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after function body"); err != nil {
		return nil, err
	}

	return &FunctionStatement{Token: tok, Name: name, Params: params, ReturnType: returnType, Body: body}, nil
}

func (p *Parser) parseStructDecl() (Statement, error) {
	tok := p.advance()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after struct name"); err != nil {
		return nil, err
	}

	var fields []StructField
	for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
		fieldName, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TOKEN_COLON, "Expected ':' after field name"); err != nil {
			return nil, err
		}
		fieldType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, StructField{Name: fieldName, Type: fieldType})

		if !p.match(lexer.TOKEN_COMMA) && !p.check(lexer.TOKEN_RBRACE) {
			return nil, p.errorHere(i18n.T(i18n.ErrGeneric, "Expected ',' or '}' after struct field"))
		}
	}

	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after struct fields"); err != nil {
		return nil, err
	}

	return &StructStatement{Token: tok, Name: name, Fields: fields}, nil
}

func (p *Parser) parseEnumDecl() (Statement, error) {
	tok := p.advance()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after enum name"); err != nil {
		return nil, err
	}

	var variants []EnumVariant
	for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
		variantName, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}

		// Fields 为 nil 表示变体没有括号
		var fields []Type
		if p.match(lexer.TOKEN_LPAREN) {
			fields = []Type{}
			if !p.check(lexer.TOKEN_RPAREN) {
				for {
					fieldType, err := p.parseType()
					if err != nil {
						return nil, err
					}
					fields = append(fields, fieldType)
					if !p.match(lexer.TOKEN_COMMA) {
						break
					}
				}
			}
			if _, err := p.consume(lexer.TOKEN_RPAREN, "Expected ')' after enum variant fields"); err != nil {
				return nil, err
			}
		}

		variants = append(variants, EnumVariant{Name: variantName, Fields: fields})

		if !p.match(lexer.TOKEN_COMMA) && !p.check(lexer.TOKEN_RBRACE) {
			return nil, p.errorHere(i18n.T(i18n.ErrGeneric, "Expected ',' or '}' after enum variant"))
		}
	}

	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after enum variants"); err != nil {
		return nil, err
	}

	return &EnumStatement{Token: tok, Name: name, Variants: variants}, nil
}

func (p *Parser) parsePrintStatement() (Statement, error) {
	tok := p.advance()
	if _, err := p.consume(lexer.TOKEN_LPAREN, "Expected '(' after 'print'"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RPAREN, "Expected ')' after print expression"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after print statement"); err != nil {
		return nil, err
	}
	return &PrintStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseReturnStatement() (Statement, error) {
	tok := p.advance()
	var value Expression
	if !p.check(lexer.TOKEN_SEMICOLON) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after return statement"); err != nil {
		return nil, err
	}
	return &ReturnStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseIfStatement() (Statement, error) {
	tok := p.advance()
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after if condition"); err != nil {
		return nil, err
	}
	consequence, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after if block"); err != nil {
		return nil, err
	}

	var alternative []Statement
	if p.match(lexer.TOKEN_ELSE) {
		if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after else"); err != nil {
			return nil, err
		}
		alternative, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after else block"); err != nil {
			return nil, err
		}
	}

	return &IfStatement{Token: tok, Condition: condition, Consequence: consequence, Alternative: alternative}, nil
}

func (p *Parser) parseForStatement() (Statement, error) {
	tok := p.advance()
	variable, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_IN, "Expected 'in' in for loop"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after for condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after for block"); err != nil {
		return nil, err
	}
	return &ForStatement{Token: tok, Variable: variable, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseWhileStatement() (Statement, error) {
	tok := p.advance()
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after while block"); err != nil {
		return nil, err
	}
	return &WhileStatement{Token: tok, Condition: condition, Body: body}, nil
}

func (p *Parser) parseBreakStatement() (Statement, error) {
	tok := p.advance()
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after break"); err != nil {
		return nil, err
	}
	return &BreakStatement{Token: tok}, nil
}

func (p *Parser) parseContinueStatement() (Statement, error) {
	tok := p.advance()
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after continue"); err != nil {
		return nil, err
	}
	return &ContinueStatement{Token: tok}, nil
}

func (p *Parser) parseTryCatchStatement() (Statement, error) {
	tok := p.advance()
	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after 'try'"); err != nil {
		return nil, err
	}
	tryBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after try block"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_CATCH, "Expected 'catch' after try block"); err != nil {
		return nil, err
	}

	catchParam := ""
	if p.match(lexer.TOKEN_LPAREN) {
		catchParam, err = p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TOKEN_RPAREN, "Expected ')' after catch parameter"); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.TOKEN_LBRACE, "Expected '{' after 'catch'"); err != nil {
		return nil, err
	}
	catchBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after catch block"); err != nil {
		return nil, err
	}

	return &TryCatchStatement{Token: tok, TryBody: tryBody, CatchParam: catchParam, CatchBody: catchBody}, nil
}

func (p *Parser) parseThrowStatement() (Statement, error) {
	tok := p.advance()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON, "Expected ';' after throw statement"); err != nil {
		return nil, err
	}
	return &ThrowStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseBlock() ([]Statement, error) {
	var statements []Statement
	for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// parseExpression 表达式优先级从低到高:
// || -> && -> 比较 -> 加减 -> 乘除模 -> 基本表达式
func (p *Parser) parseExpression() (Expression, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (Expression, error) {
	expr, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TOKEN_OR) {
		op := p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: "||", Right: right}
	}
	return expr, nil
}

func (p *Parser) parseLogicalAnd() (Expression, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TOKEN_AND) {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: "&&", Right: right}
	}
	return expr, nil
}

func (p *Parser) parseComparison() (Expression, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.peek().Type) {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: op.Literal, Right: right}
	}
	return expr, nil
}

func (p *Parser) parseAdditive() (Expression, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TOKEN_PLUS) || p.check(lexer.TOKEN_MINUS) {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: op.Literal, Right: right}
	}
	return expr, nil
}

func (p *Parser) parseMultiplicative() (Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TOKEN_ASTERISK) || p.check(lexer.TOKEN_SLASH) || p.check(lexer.TOKEN_PERCENT) {
		op := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Token: op, Left: expr, Operator: op.Literal, Right: right}
	}
	return expr, nil
}

func isComparisonOp(t lexer.TokenType) bool {
	switch t {
	case lexer.TOKEN_EQ, lexer.TOKEN_NOT_EQ, lexer.TOKEN_GT,
		lexer.TOKEN_GT_EQ, lexer.TOKEN_LT, lexer.TOKEN_LT_EQ:
		return true
	}
	return false
}

func (p *Parser) parsePrimary() (Expression, error) {
	tok := p.peek()

	var expr Expression
	switch tok.Type {
	case lexer.TOKEN_INT:
		p.advance()
		n, _ := strconv.ParseInt(tok.Literal, 10, 32)
		expr = &NumberLiteral{Token: tok, Value: int32(n)}
	case lexer.TOKEN_STRING:
		p.advance()
		expr = &StringLiteral{Token: tok, Value: tok.Literal}
	case lexer.TOKEN_TRUE:
		p.advance()
		expr = &BoolLiteral{Token: tok, Value: true}
	case lexer.TOKEN_FALSE:
		p.advance()
		expr = &BoolLiteral{Token: tok, Value: false}
	case lexer.TOKEN_IDENT:
		p.advance()
		switch {
		case p.match(lexer.TOKEN_LPAREN):
			args, err := p.parseArguments(lexer.TOKEN_RPAREN, "Expected ')' after function arguments")
			if err != nil {
				return nil, err
			}
			expr = &CallExpr{Token: tok, Function: tok.Literal, Arguments: args}
		case p.check(lexer.TOKEN_LBRACE) && p.isStructLiteralAhead():
			p.advance()
			var fields []StructLiteralField
			for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
				fieldName, err := p.expectIdentifier()
				if err != nil {
					return nil, err
				}
				if _, err := p.consume(lexer.TOKEN_COLON, "Expected ':' after field name"); err != nil {
					return nil, err
				}
				fieldValue, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				fields = append(fields, StructLiteralField{Name: fieldName, Value: fieldValue})
				if !p.match(lexer.TOKEN_COMMA) {
					break
				}
			}
			if _, err := p.consume(lexer.TOKEN_RBRACE, "Expected '}' after struct literal"); err != nil {
				return nil, err
			}
			expr = &StructLiteral{Token: tok, Name: tok.Literal, Fields: fields}
		default:
			expr = &Identifier{Token: tok, Value: tok.Literal}
		}
	case lexer.TOKEN_LBRACKET:
		p.advance()
		elements, err := p.parseArguments(lexer.TOKEN_RBRACKET, "Expected ']' after array elements")
		if err != nil {
			return nil, err
		}
		expr = &ArrayLiteral{Token: tok, Elements: elements}
	case lexer.TOKEN_NOT:
		// !x 脱糖为 false && x
		p.advance()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{
			Token:    tok,
			Left:     &BoolLiteral{Token: tok, Value: false},
			Operator: "&&",
			Right:    operand,
		}, nil
	case lexer.TOKEN_LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TOKEN_RPAREN, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		expr = inner
	default:
		return nil, p.errorHere(i18n.T(i18n.ErrUnexpectedToken, describe(tok)))
	}

	// 后缀: 下标访问 / 成员访问 / 方法调用
	for p.check(lexer.TOKEN_LBRACKET) || p.check(lexer.TOKEN_DOT) {
		if p.match(lexer.TOKEN_LBRACKET) {
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.TOKEN_RBRACKET, "Expected ']' after index"); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Token: tok, Object: expr, Index: index}
		} else if p.match(lexer.TOKEN_DOT) {
			memberTok := p.peek()
			member, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			if p.match(lexer.TOKEN_LPAREN) {
				args, err := p.parseArguments(lexer.TOKEN_RPAREN, "Expected ')' after method arguments")
				if err != nil {
					return nil, err
				}
				expr = &MethodCallExpr{Token: memberTok, Object: expr, Method: member, Arguments: args}
			} else {
				expr = &MemberExpr{Token: memberTok, Object: expr, Member: member}
			}
		}
	}

	return expr, nil
}

// parseArguments 解析以逗号分隔的表达式列表, 并消耗结束符
func (p *Parser) parseArguments(end lexer.TokenType, message string) ([]Expression, error) {
	var args []Expression
	if !p.check(end) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(end, message); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseType() (Type, error) {
	var base Type
	switch p.peek().Type {
	case lexer.TOKEN_NUMBER_TYPE:
		p.advance()
		base = &NumberType{}
	case lexer.TOKEN_STRING_TYPE:
		p.advance()
		base = &StringType{}
	case lexer.TOKEN_BOOLEAN_TYPE:
		p.advance()
		base = &BooleanType{}
	case lexer.TOKEN_VOID:
		p.advance()
		base = &VoidType{}
	case lexer.TOKEN_ANY:
		p.advance()
		base = &AnyType{}
	case lexer.TOKEN_IDENT:
		name := p.advance().Literal
		base = &CustomType{Name: name}
	default:
		return nil, p.errorHere(i18n.T(i18n.ErrExpectedType, describe(p.peek())))
	}

	if p.match(lexer.TOKEN_LBRACKET) {
		// T[] 是元素类型为 T 的可增长数组
		if p.check(lexer.TOKEN_RBRACKET) {
			p.advance()
			return &ArrayType{Elem: base, Size: -1}, nil
		}

		// T[E] 和 T[E, N] 里元素类型写在方括号内
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}

		size := -1
		if p.match(lexer.TOKEN_COMMA) {
			if !p.check(lexer.TOKEN_INT) {
				return nil, p.errorHere(i18n.T(i18n.ErrGeneric, "Expected number literal for array size"))
			}
			n, _ := strconv.Atoi(p.advance().Literal)
			size = n
		}

		if _, err := p.consume(lexer.TOKEN_RBRACKET, "Expected ']' after array type"); err != nil {
			return nil, err
		}

		return &ArrayType{Elem: elem, Size: size}, nil
	}

	return base, nil
}

func (p *Parser) expectIdentifier() (string, error) {
	if p.check(lexer.TOKEN_IDENT) {
		return p.advance().Literal, nil
	}
	return "", p.errorHere(i18n.T(i18n.ErrExpectedIdentifier, describe(p.peek())))
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	tok := p.peek()
	return lexer.Token{}, &Error{
		Line:    tok.Line,
		Column:  tok.Column,
		Message: i18n.T(i18n.ErrExpectedToken, message, describe(tok), tok.Line, tok.Column),
	}
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	if p.pos == 0 {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.pos]
}

// isStructLiteralAhead 判断标识符后面的 { 是否开始一个结构体字面量
// 只有 { 后紧跟标识符或 } 时才按结构体字面量解析
func (p *Parser) isStructLiteralAhead() bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}
	next := p.tokens[p.pos+1].Type
	return next == lexer.TOKEN_IDENT || next == lexer.TOKEN_RBRACE
}

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].Type == lexer.TOKEN_EOF
}

func (p *Parser) errorHere(message string) error {
	tok := p.peek()
	return &Error{Line: tok.Line, Column: tok.Column, Message: message}
}

func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_EOF:
		return "EOF"
	case lexer.TOKEN_IDENT, lexer.TOKEN_INT, lexer.TOKEN_STRING:
		return fmt.Sprintf("%s %q", lexer.TokenTypeName(tok.Type), tok.Literal)
	default:
		return fmt.Sprintf("'%s'", lexer.TokenTypeName(tok.Type))
	}
}
