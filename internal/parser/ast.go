package parser

import (
	"github.com/jrustlang/jrust/internal/lexer"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// Program 表示一个解析后的源文件
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string { return "program" }

// Type 类型注解接口
type Type interface {
	typeNode()
}

// NumberType number 类型 (i32)
type NumberType struct{}

// StringType string 类型
type StringType struct{}

// BooleanType boolean 类型
type BooleanType struct{}

// VoidType void 类型
type VoidType struct{}

// AnyType any 类型
type AnyType struct{}

// InferredType 没有类型注解时的占位类型
type InferredType struct{}

// ArrayType 数组类型, Size 为 -1 表示可增长数组 (Vec)
type ArrayType struct {
	Elem Type
	Size int
}

// CustomType 自定义类型 (结构体或枚举名)
type CustomType struct {
	Name string
}

func (t *NumberType) typeNode()   {}
func (t *StringType) typeNode()   {}
func (t *BooleanType) typeNode()  {}
func (t *VoidType) typeNode()     {}
func (t *AnyType) typeNode()      {}
func (t *InferredType) typeNode() {}
func (t *ArrayType) typeNode()    {}
func (t *CustomType) typeNode()   {}

// LetStatement let 变量声明
type LetStatement struct {
	Token lexer.Token // let token
	Name  string
	Type  Type // 没有注解时为 *InferredType
	Value Expression
}

func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LetStatement) statementNode()       {}

// ConstStatement const 常量声明
type ConstStatement struct {
	Token lexer.Token // const token
	Name  string
	Type  Type
	Value Expression
}

func (s *ConstStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ConstStatement) statementNode()       {}

// Param 函数参数
type Param struct {
	Name string
	Type Type
}

// FunctionStatement 函数声明
type FunctionStatement struct {
	Token      lexer.Token // function token
	Name       string
	Params     []Param
	ReturnType Type
	Body       []Statement
}

func (s *FunctionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *FunctionStatement) statementNode()       {}

// StructField 结构体字段
type StructField struct {
	Name string
	Type Type
}

// StructStatement 结构体声明
type StructStatement struct {
	Token  lexer.Token // struct token
	Name   string
	Fields []StructField
}

func (s *StructStatement) TokenLiteral() string { return s.Token.Literal }
func (s *StructStatement) statementNode()       {}

// EnumVariant 枚举变体, Fields 为 nil 表示没有括号
type EnumVariant struct {
	Name   string
	Fields []Type
}

// EnumStatement 枚举声明
type EnumStatement struct {
	Token    lexer.Token // enum token
	Name     string
	Variants []EnumVariant
}

func (s *EnumStatement) TokenLiteral() string { return s.Token.Literal }
func (s *EnumStatement) statementNode()       {}

// PrintStatement print 语句
type PrintStatement struct {
	Token lexer.Token // print token
	Value Expression
}

func (s *PrintStatement) TokenLiteral() string { return s.Token.Literal }
func (s *PrintStatement) statementNode()       {}

// ReturnStatement return 语句, Value 可以为 nil
type ReturnStatement struct {
	Token lexer.Token // return token
	Value Expression
}

func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) statementNode()       {}

// IfStatement if 语句, Alternative 为 nil 表示没有 else
type IfStatement struct {
	Token       lexer.Token // if token
	Condition   Expression
	Consequence []Statement
	Alternative []Statement
}

func (s *IfStatement) TokenLiteral() string { return s.Token.Literal }
func (s *IfStatement) statementNode()       {}

// ForStatement for..in 循环
type ForStatement struct {
	Token    lexer.Token // for token
	Variable string
	Iterable Expression
	Body     []Statement
}

func (s *ForStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ForStatement) statementNode()       {}

// WhileStatement while 循环
type WhileStatement struct {
	Token     lexer.Token // while token
	Condition Expression
	Body      []Statement
}

func (s *WhileStatement) TokenLiteral() string { return s.Token.Literal }
func (s *WhileStatement) statementNode()       {}

// BreakStatement break 语句
type BreakStatement struct {
	Token lexer.Token
}

func (s *BreakStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BreakStatement) statementNode()       {}

// ContinueStatement continue 语句
type ContinueStatement struct {
	Token lexer.Token
}

func (s *ContinueStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ContinueStatement) statementNode()       {}

// TryCatchStatement try/catch 语句, CatchParam 为空表示没有捕获变量
type TryCatchStatement struct {
	Token      lexer.Token // try token
	TryBody    []Statement
	CatchParam string
	CatchBody  []Statement
}

func (s *TryCatchStatement) TokenLiteral() string { return s.Token.Literal }
func (s *TryCatchStatement) statementNode()       {}

// ThrowStatement throw 语句
type ThrowStatement struct {
	Token lexer.Token // throw token
	Value Expression
}

func (s *ThrowStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ThrowStatement) statementNode()       {}

// ImportItem 单个导入项
type ImportItem struct {
	Name  string
	Alias string // 可选
}

// ImportStatement import 语句
// IsExternal 表示路径指向外部 crate 而不是项目内模块
type ImportStatement struct {
	Token      lexer.Token // import token
	Items      []ImportItem
	Path       string
	IsExternal bool
}

func (s *ImportStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ImportStatement) statementNode()       {}

// ExportStatement export 包装的声明
type ExportStatement struct {
	Token lexer.Token // export token
	Decl  Statement
}

func (s *ExportStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExportStatement) statementNode()       {}

// ExpressionStatement 表达式语句
type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) statementNode()       {}

// NumberLiteral 整数字面量
type NumberLiteral struct {
	Token lexer.Token
	Value int32
}

func (e *NumberLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NumberLiteral) expressionNode()      {}

// StringLiteral 字符串字面量
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) expressionNode()      {}

// BoolLiteral 布尔字面量
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (e *BoolLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BoolLiteral) expressionNode()      {}

// Identifier 标识符
type Identifier struct {
	Token lexer.Token
	Value string
}

func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) expressionNode()      {}

// ArrayLiteral 数组字面量
type ArrayLiteral struct {
	Token    lexer.Token // [ token
	Elements []Expression
}

func (e *ArrayLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) expressionNode()      {}

// StructLiteralField 结构体字面量的字段
type StructLiteralField struct {
	Name  string
	Value Expression
}

// StructLiteral 结构体字面量
type StructLiteral struct {
	Token  lexer.Token // 结构体名的 token
	Name   string
	Fields []StructLiteralField
}

func (e *StructLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StructLiteral) expressionNode()      {}

// BinaryExpr 二元运算表达式
type BinaryExpr struct {
	Token    lexer.Token // 运算符 token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *BinaryExpr) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpr) expressionNode()      {}

// CallExpr 函数调用
type CallExpr struct {
	Token     lexer.Token // 函数名的 token
	Function  string
	Arguments []Expression
}

func (e *CallExpr) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpr) expressionNode()      {}

// MethodCallExpr 方法调用
type MethodCallExpr struct {
	Token     lexer.Token // 方法名的 token
	Object    Expression
	Method    string
	Arguments []Expression
}

func (e *MethodCallExpr) TokenLiteral() string { return e.Token.Literal }
func (e *MethodCallExpr) expressionNode()      {}

// MemberExpr 成员访问
type MemberExpr struct {
	Token  lexer.Token // 成员名的 token
	Object Expression
	Member string
}

func (e *MemberExpr) TokenLiteral() string { return e.Token.Literal }
func (e *MemberExpr) expressionNode()      {}

// IndexExpr 下标访问
type IndexExpr struct {
	Token  lexer.Token // [ token
	Object Expression
	Index  Expression
}

func (e *IndexExpr) TokenLiteral() string { return e.Token.Literal }
func (e *IndexExpr) expressionNode()      {}
