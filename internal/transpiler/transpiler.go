// Package transpiler 把 jRust 源码转换为 Rust 源码
package transpiler

import (
	"github.com/jrustlang/jrust/internal/lexer"
	"github.com/jrustlang/jrust/internal/parser"
)

// Mode 决定生成单元的角色
type Mode int

const (
	// EntryUnit 入口单元, 顶层语句会被包进合成的 main 函数
	EntryUnit Mode = iota
	// DependentModule 依赖模块, 本地导入带 super:: 前缀
	DependentModule
)

// Generate 把 AST 生成为 Rust 源码, 不会失败
func Generate(program *parser.Program, mode Mode) string {
	return NewCodeGen(mode).Generate(program)
}

// Transpile 完整的转换管线: 词法分析, 语法分析, 代码生成
// 返回第一个词法或语法错误
func Transpile(source string, mode Mode) (string, error) {
	program, err := Check(source)
	if err != nil {
		return "", err
	}
	return Generate(program, mode), nil
}

// Check 只做词法和语法分析, 返回解析出的 AST
func Check(source string) (*parser.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}
