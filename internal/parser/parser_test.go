package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/jrustlang/jrust/internal/i18n"
	"github.com/jrustlang/jrust/internal/lexer"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func parseInput(t *testing.T, input string) *Program {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("lexer failed: %v", err)
	}
	program, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parser failed: %v", err)
	}
	return program
}

func parseError(t *testing.T, input string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("lexer failed: %v", err)
	}
	_, err = Parse(tokens)
	if err == nil {
		t.Fatalf("expected parse error for %q, got none", input)
	}
	return err
}

func TestVariableDeclarations(t *testing.T) {
	program := parseInput(t, `let x: number = 42;`)
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	letStmt, ok := program.Statements[0].(*LetStatement)
	if !ok {
		t.Fatalf("expected *LetStatement, got %T", program.Statements[0])
	}
	if letStmt.Name != "x" {
		t.Errorf("expected name x, got %s", letStmt.Name)
	}
	if _, ok := letStmt.Type.(*NumberType); !ok {
		t.Errorf("expected *NumberType, got %T", letStmt.Type)
	}
	num, ok := letStmt.Value.(*NumberLiteral)
	if !ok || num.Value != 42 {
		t.Errorf("expected NumberLiteral 42, got %#v", letStmt.Value)
	}

	program = parseInput(t, `const MAX: number = 100;`)
	constStmt, ok := program.Statements[0].(*ConstStatement)
	if !ok {
		t.Fatalf("expected *ConstStatement, got %T", program.Statements[0])
	}
	if constStmt.Name != "MAX" {
		t.Errorf("expected name MAX, got %s", constStmt.Name)
	}

	// 没有类型注解
	program = parseInput(t, `let s = "Alice";`)
	letStmt = program.Statements[0].(*LetStatement)
	if _, ok := letStmt.Type.(*InferredType); !ok {
		t.Errorf("expected *InferredType, got %T", letStmt.Type)
	}
}

func TestFunctionDecl(t *testing.T) {
	program := parseInput(t, `function add(a: number, b: number): number { return a + b; }`)
	fn, ok := program.Statements[0].(*FunctionStatement)
	if !ok {
		t.Fatalf("expected *FunctionStatement, got %T", program.Statements[0])
	}
	if fn.Name != "add" {
		t.Errorf("expected name add, got %s", fn.Name)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Errorf("unexpected params: %#v", fn.Params)
	}
	if _, ok := fn.ReturnType.(*NumberType); !ok {
		t.Errorf("expected *NumberType return, got %T", fn.ReturnType)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*ReturnStatement); !ok {
		t.Errorf("expected *ReturnStatement, got %T", fn.Body[0])
	}

	// 返回类型注解是必须的
	parseError(t, `function f() { }`)
}

func TestOperatorPrecedence(t *testing.T) {
	// 5 + 3 * 2 解析为 5 + (3 * 2)
	program := parseInput(t, `let result: number = 5 + 3 * 2;`)
	letStmt := program.Statements[0].(*LetStatement)
	add, ok := letStmt.Value.(*BinaryExpr)
	if !ok || add.Operator != "+" {
		t.Fatalf("expected top-level +, got %#v", letStmt.Value)
	}
	if n, ok := add.Left.(*NumberLiteral); !ok || n.Value != 5 {
		t.Errorf("expected left operand 5, got %#v", add.Left)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Operator != "*" {
		t.Fatalf("expected right operand to be *, got %#v", add.Right)
	}

	// 比较绑定比 && 紧, && 比 || 紧
	program = parseInput(t, `let b: boolean = a < 1 && c > 2 || d == 3;`)
	or := program.Statements[0].(*LetStatement).Value.(*BinaryExpr)
	if or.Operator != "||" {
		t.Fatalf("expected top-level ||, got %s", or.Operator)
	}
	and, ok := or.Left.(*BinaryExpr)
	if !ok || and.Operator != "&&" {
		t.Fatalf("expected left of || to be &&, got %#v", or.Left)
	}
	if lt, ok := and.Left.(*BinaryExpr); !ok || lt.Operator != "<" {
		t.Errorf("expected left of && to be <, got %#v", and.Left)
	}

	// 括号覆盖优先级
	program = parseInput(t, `let r: number = (5 + 3) * 2;`)
	mul = program.Statements[0].(*LetStatement).Value.(*BinaryExpr)
	if mul.Operator != "*" {
		t.Fatalf("expected top-level *, got %s", mul.Operator)
	}
	if inner, ok := mul.Left.(*BinaryExpr); !ok || inner.Operator != "+" {
		t.Errorf("expected grouped + on the left, got %#v", mul.Left)
	}
}

func TestNotDesugaring(t *testing.T) {
	// !x 解析为 false && x
	program := parseInput(t, `let b: boolean = !flag;`)
	bin, ok := program.Statements[0].(*LetStatement).Value.(*BinaryExpr)
	if !ok || bin.Operator != "&&" {
		t.Fatalf("expected && node, got %#v", program.Statements[0].(*LetStatement).Value)
	}
	if lit, ok := bin.Left.(*BoolLiteral); !ok || lit.Value != false {
		t.Errorf("expected false literal on the left, got %#v", bin.Left)
	}
	if id, ok := bin.Right.(*Identifier); !ok || id.Value != "flag" {
		t.Errorf("expected identifier flag on the right, got %#v", bin.Right)
	}
}

func TestCallsAndPostfix(t *testing.T) {
	program := parseInput(t, `let x: number = add(5, 3);`)
	call, ok := program.Statements[0].(*LetStatement).Value.(*CallExpr)
	if !ok || call.Function != "add" || len(call.Arguments) != 2 {
		t.Fatalf("unexpected call: %#v", program.Statements[0].(*LetStatement).Value)
	}

	program = parseInput(t, `print(concat("Hello", "World"));`)
	printStmt := program.Statements[0].(*PrintStatement)
	if _, ok := printStmt.Value.(*CallExpr); !ok {
		t.Fatalf("expected nested call, got %#v", printStmt.Value)
	}

	// 链式后缀
	program = parseInput(t, `items[0].name.toUpperCase();`)
	exprStmt := program.Statements[0].(*ExpressionStatement)
	method, ok := exprStmt.Expression.(*MethodCallExpr)
	if !ok || method.Method != "toUpperCase" {
		t.Fatalf("expected method call, got %#v", exprStmt.Expression)
	}
	member, ok := method.Object.(*MemberExpr)
	if !ok || member.Member != "name" {
		t.Fatalf("expected member access, got %#v", method.Object)
	}
	if _, ok := member.Object.(*IndexExpr); !ok {
		t.Fatalf("expected index access, got %#v", member.Object)
	}
}

func TestStructDeclAndLiteral(t *testing.T) {
	program := parseInput(t, `struct Point { x: number, y: number }`)
	st := program.Statements[0].(*StructStatement)
	if st.Name != "Point" || len(st.Fields) != 2 {
		t.Fatalf("unexpected struct: %#v", st)
	}

	program = parseInput(t, `let p: Point = Point { x: 1, y: 2 };`)
	lit, ok := program.Statements[0].(*LetStatement).Value.(*StructLiteral)
	if !ok || lit.Name != "Point" || len(lit.Fields) != 2 {
		t.Fatalf("unexpected struct literal: %#v", program.Statements[0].(*LetStatement).Value)
	}
	if lit.Fields[0].Name != "x" {
		t.Errorf("expected first field x, got %s", lit.Fields[0].Name)
	}

	// 空结构体字面量
	program = parseInput(t, `let e: Empty = Empty {};`)
	if _, ok := program.Statements[0].(*LetStatement).Value.(*StructLiteral); !ok {
		t.Fatal("expected empty struct literal")
	}
}

func TestStructLiteralDisambiguation(t *testing.T) {
	// if 条件里的标识符后跟 { 不是结构体字面量
	program := parseInput(t, `if x { print(1); }`)
	ifStmt, ok := program.Statements[0].(*IfStatement)
	if !ok {
		t.Fatalf("expected *IfStatement, got %T", program.Statements[0])
	}
	if _, ok := ifStmt.Condition.(*Identifier); !ok {
		t.Fatalf("condition should be identifier, got %#v", ifStmt.Condition)
	}
	if len(ifStmt.Consequence) != 1 {
		t.Fatalf("expected 1 statement in if body, got %d", len(ifStmt.Consequence))
	}
}

func TestEnumDecl(t *testing.T) {
	program := parseInput(t, `enum Shape { Circle(number), Rect(number, number), Empty }`)
	en := program.Statements[0].(*EnumStatement)
	if en.Name != "Shape" || len(en.Variants) != 3 {
		t.Fatalf("unexpected enum: %#v", en)
	}
	if len(en.Variants[0].Fields) != 1 || len(en.Variants[1].Fields) != 2 {
		t.Errorf("unexpected variant fields: %#v", en.Variants)
	}
	if en.Variants[2].Fields != nil {
		t.Errorf("bare variant should have nil fields, got %#v", en.Variants[2].Fields)
	}
}

func TestControlFlow(t *testing.T) {
	program := parseInput(t, `
		if x > 0 { print(1); } else { print(2); }
		for item in items { print(item); }
		while n < 10 { n; }
		`)
	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}
	ifStmt := program.Statements[0].(*IfStatement)
	if ifStmt.Alternative == nil {
		t.Error("expected else branch")
	}
	forStmt := program.Statements[1].(*ForStatement)
	if forStmt.Variable != "item" {
		t.Errorf("expected loop variable item, got %s", forStmt.Variable)
	}
	if _, ok := program.Statements[2].(*WhileStatement); !ok {
		t.Errorf("expected *WhileStatement, got %T", program.Statements[2])
	}

	program = parseInput(t, `while true { break; continue; }`)
	body := program.Statements[0].(*WhileStatement).Body
	if _, ok := body[0].(*BreakStatement); !ok {
		t.Errorf("expected *BreakStatement, got %T", body[0])
	}
	if _, ok := body[1].(*ContinueStatement); !ok {
		t.Errorf("expected *ContinueStatement, got %T", body[1])
	}
}

func TestTryCatchThrow(t *testing.T) {
	program := parseInput(t, `try { risky(); } catch (e) { print(e); }`)
	tc := program.Statements[0].(*TryCatchStatement)
	if tc.CatchParam != "e" {
		t.Errorf("expected catch param e, got %q", tc.CatchParam)
	}

	program = parseInput(t, `try { risky(); } catch { print("oops"); }`)
	tc = program.Statements[0].(*TryCatchStatement)
	if tc.CatchParam != "" {
		t.Errorf("expected empty catch param, got %q", tc.CatchParam)
	}

	program = parseInput(t, `throw "boom";`)
	if _, ok := program.Statements[0].(*ThrowStatement); !ok {
		t.Fatalf("expected *ThrowStatement, got %T", program.Statements[0])
	}
}

func TestImportForms(t *testing.T) {
	program := parseInput(t, `import {File, read as readAll} from "./fs/helpers";`)
	imp := program.Statements[0].(*ImportStatement)
	if len(imp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(imp.Items))
	}
	if imp.Items[1].Name != "read" || imp.Items[1].Alias != "readAll" {
		t.Errorf("unexpected second item: %#v", imp.Items[1])
	}
	if imp.IsExternal {
		t.Error("./ path should not be external")
	}

	program = parseInput(t, `import File from "std::fs";`)
	imp = program.Statements[0].(*ImportStatement)
	if !imp.IsExternal {
		t.Error("std::fs should be external")
	}
	if len(imp.Items) != 1 || imp.Items[0].Name != "File" {
		t.Errorf("unexpected items: %#v", imp.Items)
	}

	// 裸路径导入
	program = parseInput(t, `import "./utils";`)
	imp = program.Statements[0].(*ImportStatement)
	if len(imp.Items) != 0 {
		t.Errorf("bare import should have no items, got %#v", imp.Items)
	}

	// 路径后的 as 作用于第一个导入项
	program = parseInput(t, `import {File} from "std::fs" as F;`)
	imp = program.Statements[0].(*ImportStatement)
	if imp.Items[0].Alias != "F" {
		t.Errorf("expected alias F on first item, got %q", imp.Items[0].Alias)
	}
}

func TestExportStatement(t *testing.T) {
	program := parseInput(t, `export function api(): void { }`)
	exp := program.Statements[0].(*ExportStatement)
	if _, ok := exp.Decl.(*FunctionStatement); !ok {
		t.Fatalf("expected exported function, got %T", exp.Decl)
	}

	err := parseError(t, `export if x { }`)
	if !strings.Contains(err.Error(), "after export") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestTypeParsing(t *testing.T) {
	// T[] 可增长数组
	program := parseInput(t, `let xs: number[] = [1, 2, 3];`)
	arr, ok := program.Statements[0].(*LetStatement).Type.(*ArrayType)
	if !ok || arr.Size != -1 {
		t.Fatalf("expected growable array type, got %#v", program.Statements[0].(*LetStatement).Type)
	}
	if _, ok := arr.Elem.(*NumberType); !ok {
		t.Errorf("expected number element, got %T", arr.Elem)
	}

	// 方括号内写元素类型和长度
	program = parseInput(t, `let xs: number[number, 3] = [1, 2, 3];`)
	arr = program.Statements[0].(*LetStatement).Type.(*ArrayType)
	if arr.Size != 3 {
		t.Errorf("expected size 3, got %d", arr.Size)
	}

	// 自定义类型
	program = parseInput(t, `let p: Point = origin();`)
	if ct, ok := program.Statements[0].(*LetStatement).Type.(*CustomType); !ok || ct.Name != "Point" {
		t.Errorf("expected custom type Point, got %#v", program.Statements[0].(*LetStatement).Type)
	}
}

func TestParseErrors(t *testing.T) {
	err := parseError(t, `let x: number = 42`)
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.Contains(perr.Message, "Expected ';' after variable declaration") {
		t.Errorf("unexpected message: %s", perr.Message)
	}
	if !strings.Contains(perr.Message, "line:column") {
		t.Errorf("message should carry a position: %s", perr.Message)
	}

	parseError(t, `let = 5;`)
	parseError(t, `print "x";`)
	parseError(t, `struct P { x number }`)
	parseError(t, `try { } finally { }`)
}
