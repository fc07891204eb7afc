package transpiler

import (
	"fmt"
	"strings"

	"github.com/jrustlang/jrust/internal/parser"
)

// CodeGen 代码生成器, 把 AST 翻译为 Rust 源码
// 生成过程不会失败, 未知的结构按原样透传
type CodeGen struct {
	builder strings.Builder
	indent  int
	mode    Mode
}

// NewCodeGen 创建一个新的代码生成器
func NewCodeGen(mode Mode) *CodeGen {
	return &CodeGen{mode: mode}
}

// Generate 生成整个程序的 Rust 代码
// 入口单元在没有显式 main 函数时会把顶层语句包进合成的 fn main
func (g *CodeGen) Generate(program *parser.Program) string {
	g.builder.Reset()
	g.indent = 0

	hasMain := false
	for _, stmt := range program.Statements {
		if fn, ok := stmt.(*parser.FunctionStatement); ok && fn.Name == "main" {
			hasMain = true
			break
		}
	}

	wrap := g.mode == EntryUnit && !hasMain
	if wrap {
		g.write("fn main() {\n")
		g.indent = 1
	}

	for _, stmt := range program.Statements {
		g.generateStatement(stmt)
	}

	if wrap {
		g.indent = 0
		g.write("}\n")
	}

	return g.builder.String()
}

func (g *CodeGen) generateStatement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.ImportStatement:
		g.generateImport(s)
	case *parser.ExportStatement:
		g.generateExport(s.Decl)
	case *parser.LetStatement:
		g.generateVariableDecl(s.Name, s.Type, s.Value, false)
	case *parser.ConstStatement:
		g.generateVariableDecl(s.Name, s.Type, s.Value, true)
	case *parser.FunctionStatement:
		g.generateFunction(s)
	case *parser.StructStatement:
		g.generateStruct(s)
	case *parser.EnumStatement:
		g.generateEnum(s)
	case *parser.PrintStatement:
		g.writeIndent()
		g.write("println!(\"{}\", ")
		g.generateExpression(s.Value)
		g.write(");\n")
	case *parser.ReturnStatement:
		g.writeIndent()
		g.write("return ")
		if s.Value != nil {
			g.generateExpression(s.Value)
		}
		g.write(";\n")
	case *parser.IfStatement:
		g.generateIf(s)
	case *parser.ForStatement:
		g.generateFor(s)
	case *parser.WhileStatement:
		g.generateWhile(s)
	case *parser.BreakStatement:
		g.writeIndent()
		g.write("break;\n")
	case *parser.ContinueStatement:
		g.writeIndent()
		g.write("continue;\n")
	case *parser.TryCatchStatement:
		g.generateTryCatch(s)
	case *parser.ThrowStatement:
		g.writeIndent()
		g.write("panic!(\"{}\", ")
		g.generateExpression(s.Value)
		g.write(");\n")
	case *parser.ExpressionStatement:
		g.writeIndent()
		g.generateExpression(s.Expression)
		g.write(";\n")
	}
}

// generateImport 生成 use 声明
// 本地 ./ 路径在依赖模块里加 super:: 前缀, 斜杠替换为 ::
func (g *CodeGen) generateImport(s *parser.ImportStatement) {
	g.write("use ")

	path := s.Path
	if !s.IsExternal {
		if strings.HasPrefix(path, "./") {
			path = strings.ReplaceAll(strings.TrimPrefix(path, "./"), "/", "::")
			if g.mode != EntryUnit {
				path = "super::" + path
			}
		} else {
			path = strings.ReplaceAll(path, "/", "::")
		}
	}

	if len(s.Items) == 1 {
		g.write(path)
		g.write("::")
		g.write(convertName(s.Items[0].Name))
		if s.Items[0].Alias != "" {
			g.write(" as ")
			g.write(convertName(s.Items[0].Alias))
		}
	} else {
		g.write(path)
		g.write("::{")
		for i, item := range s.Items {
			if i > 0 {
				g.write(", ")
			}
			g.write(convertName(item.Name))
			if item.Alias != "" {
				g.write(" as ")
				g.write(convertName(item.Alias))
			}
		}
		g.write("}")
	}

	g.write(";\n")
}

func (g *CodeGen) generateExport(decl parser.Statement) {
	switch s := decl.(type) {
	case *parser.FunctionStatement:
		g.writeIndent()
		g.write("pub fn ")
		g.write(toSnakeCase(s.Name))
		g.write("(")
		for i, param := range s.Params {
			if i > 0 {
				g.write(", ")
			}
			g.write(toSnakeCase(param.Name))
			g.write(": ")
			g.emitType(param.Type)
		}
		g.write(")")
		if !isVoid(s.ReturnType) {
			g.write(" -> ")
			g.emitType(s.ReturnType)
		}
		g.write(" {\n")
		g.indent++
		for _, stmt := range s.Body {
			g.generateStatement(stmt)
		}
		g.indent--
		g.writeIndent()
		g.write("}\n\n")
	case *parser.StructStatement:
		g.writeIndent()
		g.write("#[derive(Debug, Clone)]\n")
		g.writeIndent()
		g.write("pub struct ")
		g.write(s.Name)
		g.write(" {\n")
		g.indent++
		for _, field := range s.Fields {
			g.writeIndent()
			g.write("pub ")
			g.write(field.Name)
			g.write(": ")
			g.emitType(field.Type)
			g.write(",\n")
		}
		g.indent--
		g.writeIndent()
		g.write("}\n\n")
	case *parser.EnumStatement:
		g.writeIndent()
		g.write("#[derive(Debug, Clone, PartialEq)]\n")
		g.writeIndent()
		g.write("pub enum ")
		g.write(s.Name)
		g.write(" {\n")
		g.indent++
		for _, variant := range s.Variants {
			g.writeIndent()
			g.write(variant.Name)
			if len(variant.Fields) > 0 {
				g.write("(")
				for i, fieldType := range variant.Fields {
					if i > 0 {
						g.write(", ")
					}
					g.emitType(fieldType)
				}
				g.write(")")
			}
			g.write(",\n")
		}
		g.indent--
		g.writeIndent()
		g.write("}\n\n")
	case *parser.ConstStatement:
		g.writeIndent()
		g.write("pub const ")
		g.write(strings.ToUpper(s.Name))
		if !isInferred(s.Type) {
			g.write(": ")
			if _, ok := s.Type.(*parser.StringType); ok {
				g.write("&str")
			} else {
				g.emitType(s.Type)
			}
		}
		g.write(" = ")
		g.generateExpression(s.Value)
		g.write(";\n")
	case *parser.LetStatement:
		g.writeIndent()
		g.write("pub static mut ")
		g.write(s.Name)
		if !isInferred(s.Type) {
			g.write(": ")
			g.emitType(s.Type)
		}
		g.write(" = ")
		g.generateExpression(s.Value)
		g.write(";\n")
	}
}

func (g *CodeGen) generateVariableDecl(name string, typ parser.Type, value parser.Expression, isConst bool) {
	g.writeIndent()

	if isConst {
		g.write("const ")
		g.write(strings.ToUpper(name))
		g.write(": ")
		if !isInferred(typ) {
			if _, ok := typ.(*parser.StringType); ok {
				g.write("&str")
			} else {
				g.emitType(typ)
			}
		} else {
			// 常量必须有类型, 从字面量推断
			switch value.(type) {
			case *parser.NumberLiteral:
				g.write("i32")
			case *parser.StringLiteral:
				g.write("&str")
			case *parser.BoolLiteral:
				g.write("bool")
			default:
				g.write("i32")
			}
		}
	} else {
		g.write("let mut ")
		g.write(toSnakeCase(name))
		if !isInferred(typ) {
			g.write(": ")
			g.emitType(typ)
		}
	}

	g.write(" = ")

	_, valueIsString := value.(*parser.StringLiteral)
	needsToString := !isConst && valueIsString
	if needsToString && !isInferred(typ) {
		switch typ.(type) {
		case *parser.StringType, *parser.AnyType:
		default:
			needsToString = false
		}
	}

	// 显式长度的数组类型配数组字面量时生成 [..] 而不是 vec![..]
	isStaticArray := false
	if arr, ok := typ.(*parser.ArrayType); ok && arr.Size >= 0 {
		_, isStaticArray = value.(*parser.ArrayLiteral)
	}

	switch {
	case needsToString:
		g.generateExpression(value)
		g.write(".to_string()")
	case isStaticArray:
		elements := value.(*parser.ArrayLiteral).Elements
		g.write("[")
		for i, elem := range elements {
			if i > 0 {
				g.write(", ")
			}
			g.generateExpression(elem)
		}
		g.write("]")
	default:
		g.generateExpression(value)
	}

	g.write(";\n")
}

func (g *CodeGen) generateFunction(s *parser.FunctionStatement) {
	g.writeIndent()
	g.write("fn ")
	if s.Name == "main" {
		g.write("main")
	} else {
		g.write(toSnakeCase(s.Name))
	}
	g.write("(")
	for i, param := range s.Params {
		if i > 0 {
			g.write(", ")
		}
		g.write(toSnakeCase(param.Name))
		g.write(": ")
		g.emitType(param.Type)
	}
	g.write(") ")
	if !isVoid(s.ReturnType) {
		g.write("-> ")
		g.emitType(s.ReturnType)
		g.write(" ")
	}
	g.write("{\n")
	g.indent++
	for _, stmt := range s.Body {
		g.generateStatement(stmt)
	}
	g.indent--
	g.writeIndent()
	g.write("}\n\n")
}

func (g *CodeGen) generateStruct(s *parser.StructStatement) {
	g.writeIndent()
	g.write("#[derive(Debug, Clone)]\n")
	g.writeIndent()
	g.write("struct ")
	g.write(s.Name)
	g.write(" {\n")
	g.indent++
	for _, field := range s.Fields {
		g.writeIndent()
		g.write(field.Name)
		g.write(": ")
		g.emitType(field.Type)
		g.write(",\n")
	}
	g.indent--
	g.writeIndent()
	g.write("}\n\n")
}

func (g *CodeGen) generateEnum(s *parser.EnumStatement) {
	g.writeIndent()
	g.write("#[derive(Debug, Clone, PartialEq)]\n")
	g.writeIndent()
	g.write("enum ")
	g.write(s.Name)
	g.write(" {\n")
	g.indent++
	for _, variant := range s.Variants {
		g.writeIndent()
		g.write(variant.Name)
		if variant.Fields != nil {
			g.write("(")
			for i, fieldType := range variant.Fields {
				if i > 0 {
					g.write(", ")
				}
				g.emitType(fieldType)
			}
			g.write(")")
		}
		g.write(",\n")
	}
	g.indent--
	g.writeIndent()
	g.write("}\n\n")
}

func (g *CodeGen) generateIf(s *parser.IfStatement) {
	g.writeIndent()
	g.write("if ")
	g.generateExpression(s.Condition)
	g.write(" {\n")
	g.indent++
	for _, stmt := range s.Consequence {
		g.generateStatement(stmt)
	}
	g.indent--
	g.writeIndent()
	if s.Alternative != nil {
		g.write("} else {\n")
		g.indent++
		for _, stmt := range s.Alternative {
			g.generateStatement(stmt)
		}
		g.indent--
		g.writeIndent()
		g.write("}\n")
	} else {
		g.write("}\n")
	}
}

func (g *CodeGen) generateFor(s *parser.ForStatement) {
	g.writeIndent()
	g.write("for ")
	g.write(s.Variable)
	g.write(" in ")
	g.generateExpression(s.Iterable)
	g.write(" {\n")
	g.indent++
	for _, stmt := range s.Body {
		g.generateStatement(stmt)
	}
	g.indent--
	g.writeIndent()
	g.write("}\n")
}

func (g *CodeGen) generateWhile(s *parser.WhileStatement) {
	g.writeIndent()
	g.write("while ")
	g.generateExpression(s.Condition)
	g.write(" {\n")
	g.indent++
	for _, stmt := range s.Body {
		g.generateStatement(stmt)
	}
	g.indent--
	g.writeIndent()
	g.write("}\n")
}

// generateTryCatch 把 try/catch 翻译为立即执行的闭包加 match
func (g *CodeGen) generateTryCatch(s *parser.TryCatchStatement) {
	g.writeIndent()
	g.write("match (|| -> Result<(), Box<dyn std::error::Error>> {\n")
	g.indent++
	for _, stmt := range s.TryBody {
		g.generateStatement(stmt)
	}
	g.writeIndent()
	g.write("Ok(())\n")
	g.indent--
	g.writeIndent()
	g.write("})() {\n")
	g.indent++
	g.writeIndent()
	g.write("Ok(_) => {},\n")
	g.writeIndent()
	g.write("Err(")
	if s.CatchParam != "" {
		g.write(s.CatchParam)
	} else {
		g.write("_err")
	}
	g.write(") => {\n")
	g.indent++
	for _, stmt := range s.CatchBody {
		g.generateStatement(stmt)
	}
	g.indent--
	g.writeIndent()
	g.write("}\n")
	g.indent--
	g.writeIndent()
	g.write("}\n")
}

func (g *CodeGen) generateExpression(expr parser.Expression) {
	switch e := expr.(type) {
	case *parser.NumberLiteral:
		g.write(fmt.Sprintf("%d", e.Value))
	case *parser.StringLiteral:
		g.write("\"")
		g.write(e.Value)
		g.write("\"")
	case *parser.BoolLiteral:
		if e.Value {
			g.write("true")
		} else {
			g.write("false")
		}
	case *parser.Identifier:
		g.write(convertName(e.Value))
	case *parser.ArrayLiteral:
		g.write("vec![")
		for i, elem := range e.Elements {
			if i > 0 {
				g.write(", ")
			}
			g.generateExpression(elem)
		}
		g.write("]")
	case *parser.StructLiteral:
		g.write(e.Name)
		g.write(" { ")
		for i, field := range e.Fields {
			if i > 0 {
				g.write(", ")
			}
			g.write(field.Name)
			g.write(": ")
			g.generateExpression(field.Value)
		}
		g.write(" }")
	case *parser.BinaryExpr:
		g.generateBinary(e)
	case *parser.CallExpr:
		g.write(toSnakeCase(e.Function))
		g.write("(")
		for i, arg := range e.Arguments {
			if i > 0 {
				g.write(", ")
			}
			g.generateExpression(arg)
			if _, ok := arg.(*parser.StringLiteral); ok {
				g.write(".to_string()")
			}
		}
		g.write(")")
	case *parser.MethodCallExpr:
		g.generateMethodCall(e)
	case *parser.IndexExpr:
		g.generateExpression(e.Object)
		g.write("[")
		g.generateExpression(e.Index)
		g.write(" as usize]")
	case *parser.MemberExpr:
		g.generateExpression(e.Object)
		g.write(".")
		if e.Member == "length" {
			g.write("len() as i32")
		} else {
			g.write(e.Member)
		}
	}
}

// generateBinary 生成二元运算
// 加法在任一侧是字符串字面量时按字符串拼接处理,
// 能摊平成多段时用 format!, 否则退化为 to_string 拼接
func (g *CodeGen) generateBinary(e *parser.BinaryExpr) {
	if e.Operator == "+" && (isStringLiteral(e.Left) || isStringLiteral(e.Right)) {
		var parts []parser.Expression
		collectStringParts(e.Left, &parts)
		collectStringParts(e.Right, &parts)

		if len(parts) > 1 {
			g.write("format!(\"")
			g.write(strings.Repeat("{}", len(parts)))
			g.write("\", ")
			for i, part := range parts {
				if i > 0 {
					g.write(", ")
				}
				g.generateExpression(part)
			}
			g.write(")")
		} else {
			g.generateExpression(e.Left)
			g.write(".to_string() + &")
			g.generateExpression(e.Right)
			g.write(".to_string()")
		}
		return
	}

	g.generateExpression(e.Left)
	g.write(" ")
	g.write(e.Operator)
	g.write(" ")
	g.generateExpression(e.Right)
}

// generateMethodCall 把源语言的数组和字符串方法映射到 Rust 等价调用
func (g *CodeGen) generateMethodCall(e *parser.MethodCallExpr) {
	g.generateExpression(e.Object)
	g.write(".")

	switch e.Method {
	case "slice":
		g.write("[")
		if len(e.Arguments) >= 1 {
			g.generateExpression(e.Arguments[0])
			g.write(" as usize")
		} else {
			g.write("0")
		}
		g.write("..")
		if len(e.Arguments) >= 2 {
			g.generateExpression(e.Arguments[1])
			g.write(" as usize")
		}
		g.write("].to_vec()")
	case "push":
		g.write("push(")
		g.writeArguments(e.Arguments)
		g.write(")")
	case "pop":
		g.write("pop()")
	case "shift":
		g.write("remove(0)")
	case "unshift":
		g.write("insert(0, ")
		if len(e.Arguments) > 0 {
			g.generateExpression(e.Arguments[0])
		}
		g.write(")")
	case "map", "filter":
		g.write(e.Method)
		g.write("(")
		g.writeArguments(e.Arguments)
		g.write(").collect()")
	case "charAt":
		g.write("chars().nth(")
		if len(e.Arguments) > 0 {
			g.generateExpression(e.Arguments[0])
			g.write(" as usize")
		}
		g.write(").unwrap_or('\\0')")
	case "substring":
		g.write("chars().skip(")
		if len(e.Arguments) >= 1 {
			g.generateExpression(e.Arguments[0])
			g.write(" as usize")
		} else {
			g.write("0")
		}
		g.write(").take(")
		if len(e.Arguments) >= 2 {
			g.write("(")
			g.generateExpression(e.Arguments[1])
			g.write(" - ")
			g.generateExpression(e.Arguments[0])
			g.write(") as usize")
		} else {
			g.write("usize::MAX")
		}
		g.write(").collect::<String>()")
	case "indexOf":
		g.write("find(")
		if len(e.Arguments) > 0 {
			g.generateExpression(e.Arguments[0])
		}
		g.write(").map(|i| i as i32).unwrap_or(-1)")
	case "toUpperCase":
		g.write("to_uppercase()")
	case "toLowerCase":
		g.write("to_lowercase()")
	case "trim":
		g.write("trim().to_string()")
	case "split":
		g.write("split(")
		if len(e.Arguments) > 0 {
			g.generateExpression(e.Arguments[0])
		}
		g.write(").map(|s| s.to_string()).collect::<Vec<String>>()")
	case "join":
		g.write("join(")
		if len(e.Arguments) > 0 {
			g.generateExpression(e.Arguments[0])
		} else {
			g.write("\", \"")
		}
		g.write(")")
	case "reverse":
		g.write("iter().rev().cloned().collect::<Vec<_>>()")
	case "sort":
		g.write("sort()")
	case "includes", "contains":
		g.write("contains(")
		if len(e.Arguments) > 0 {
			g.write("&")
			g.generateExpression(e.Arguments[0])
		}
		g.write(")")
	default:
		g.write(e.Method)
		g.write("(")
		g.writeArguments(e.Arguments)
		g.write(")")
	}
}

func (g *CodeGen) writeArguments(args []parser.Expression) {
	for i, arg := range args {
		if i > 0 {
			g.write(", ")
		}
		g.generateExpression(arg)
	}
}

func (g *CodeGen) emitType(typ parser.Type) {
	switch t := typ.(type) {
	case *parser.NumberType:
		g.write("i32")
	case *parser.StringType:
		g.write("String")
	case *parser.BooleanType:
		g.write("bool")
	case *parser.VoidType:
		g.write("()")
	case *parser.AnyType:
		g.write("String")
	case *parser.ArrayType:
		if t.Size >= 0 {
			g.write("[")
			g.emitType(t.Elem)
			g.write(fmt.Sprintf("; %d]", t.Size))
		} else {
			g.write("Vec<")
			g.emitType(t.Elem)
			g.write(">")
		}
	case *parser.CustomType:
		g.write(t.Name)
	case *parser.InferredType:
	}
}

func (g *CodeGen) write(s string) {
	g.builder.WriteString(s)
}

func (g *CodeGen) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.builder.WriteString("    ")
	}
}

func isStringLiteral(expr parser.Expression) bool {
	_, ok := expr.(*parser.StringLiteral)
	return ok
}

func isVoid(typ parser.Type) bool {
	_, ok := typ.(*parser.VoidType)
	return ok
}

func isInferred(typ parser.Type) bool {
	if typ == nil {
		return true
	}
	_, ok := typ.(*parser.InferredType)
	return ok
}

// collectStringParts 摊平嵌套的字符串拼接, 收集 format! 的参数
func collectStringParts(expr parser.Expression, parts *[]parser.Expression) {
	if bin, ok := expr.(*parser.BinaryExpr); ok && bin.Operator == "+" {
		if isStringLiteral(bin.Left) || isStringLiteral(bin.Right) {
			collectStringParts(bin.Left, parts)
			collectStringParts(bin.Right, parts)
			return
		}
	}
	*parts = append(*parts, expr)
}
