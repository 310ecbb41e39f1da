package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/generator"
	"github.com/t14raptor/fastscript/parser"
	"github.com/t14raptor/fastscript/parser/scanner"
	"github.com/t14raptor/fastscript/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// roundTrip parses code, regenerates it, and returns the output with
// indentation removed.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	p := mustParse(t, code)
	out := generator.Generate(p)
	return strings.ReplaceAll(strings.ReplaceAll(out, "\n", " "), "    ", "")
}

// exprOf extracts the inner concrete expression from the i-th top-level
// ExpressionStatement.
func exprOf(t *testing.T, p *ast.Program, i int) ast.Expr {
	t.Helper()
	stmt, ok := p.Body[i].Stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement %d is %T, want *ast.ExpressionStatement", i, p.Body[i].Stmt)
	}
	return stmt.Expression.Expr
}

// ---------------------------------------------------------------------------
// Precedence and associativity
// ---------------------------------------------------------------------------

func TestPrecedence(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"1 + 2 * 3", "1 + 2 * 3;"},
		{"(1 + 2) * 3", "(1 + 2) * 3;"},
		{"a = b += c", "a = b += c;"},
		{"a || b && c | d ^ e & f == g < h << i + j * k", "a || b && c | d ^ e & f == g < h << i + j * k;"},
		{"a * b + c", "a * b + c;"},
		{"!a.b()", "!a.b();"},
		{"-a * b", "-a * b;"},
		{"a ? b : c ? d : e", "a ? b : c ? d : e;"},
		{"x = y ? 1 : 2", "x = y ? 1 : 2;"},
		{"typeof a + b", "typeof a + b;"},
		{"a instanceof B && k in o", "a instanceof B && k in o;"},
		{"a.b.c[d](e)(f)", "a.b.c[d](e)(f);"},
		{"new new A()()", "new new A()();"},
		{"a, b = c, d", "a, b = c, d;"},
	}
	for _, tt := range tests {
		if got := roundTrip(t, tt.code); got != tt.want {
			t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", tt.code, got, tt.want)
		}
	}
}

func TestBinaryAssociativity(t *testing.T) {
	p := mustParse(t, "a - b - c")
	outer, ok := exprOf(t, p, 0).(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpression", exprOf(t, p, 0))
	}
	if _, ok := outer.Left.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("a - b - c should group to the left, left operand is %T", outer.Left.Expr)
	}

	p = mustParse(t, "a = b = c")
	assign := exprOf(t, p, 0).(*ast.AssignExpression)
	if _, ok := assign.Right.Expr.(*ast.AssignExpression); !ok {
		t.Errorf("a = b = c should group to the right, right operand is %T", assign.Right.Expr)
	}
}

// ---------------------------------------------------------------------------
// Statement termination
// ---------------------------------------------------------------------------

func TestStatementTermination(t *testing.T) {
	tests := []struct {
		code  string
		count int
	}{
		{"a = 1\nb = 2", 2},
		{"a = 1; b = 2;", 2},
		{"if (a) { b } c", 2},
		{"var a = 1, b\nvar c", 2},
		{"x\n++y", 2},
		{"a\n(b)", 1},
		{";;", 2},
		{"", 0},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		if len(p.Body) != tt.count {
			t.Errorf("parse(%q): %d statements, want %d", tt.code, len(p.Body), tt.count)
		}
	}
}

func TestRestrictedProductions(t *testing.T) {
	p := mustParse(t, "function f() {\n  return\n  1\n}")
	body := p.Body[0].Stmt.(*ast.FunctionDeclaration).Function.Body.List
	if len(body) != 2 {
		t.Fatalf("function body has %d statements, want 2", len(body))
	}
	if ret := body[0].Stmt.(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("return followed by a newline took an argument")
	}

	p = mustParse(t, "x\n++\ny")
	if got := roundTrip(t, "x\n++\ny"); got != "x; ++y;" {
		t.Errorf("postfix across newline: got %q", got)
	}
	if len(p.Body) != 2 {
		t.Errorf("got %d statements, want 2", len(p.Body))
	}

	p = mustParse(t, "l: while (1) { break\nl }")
	loop := p.Body[0].Stmt.(*ast.LabelledStatement).Statement.Stmt.(*ast.WhileStatement)
	block := loop.Body.Stmt.(*ast.BlockStatement)
	if brk := block.List[0].Stmt.(*ast.BreakStatement); brk.Label != nil {
		t.Errorf("break followed by a newline took a label")
	}
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestStatements(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"for (var k in o) ;", "for (var k in o) ;"},
		{"for (a.b in c) {}", "for (a.b in c) {}"},
		{"for (let i = 0, n = a.length; i < n; i++) {}", "for (let i = 0, n = a.length; i < n; i++) {}"},
		{"for (x = 0; x < 3;) x++", "for (x = 0; x < 3;) x++;"},
		{"do { x-- } while (x)", "do { x--; } while (x);"},
		{"while (true) { break }", "while (true) { break; }"},
		{"switch (a) { case 1: case 2: b(); default: }", "switch (a) { case 1: case 2: b(); default: }"},
		{"try { a } catch (e) { throw e }", "try { a; } catch (e) { throw e; }"},
		{"try { a } finally { b }", "try { a; } finally { b; }"},
		{"outer: for (;;) { for (;;) { continue outer } }", "outer: for (;;) { for (;;) { continue outer; } }"},
		{"function f(a, a) {}", "function f(a, a) {}"},
		{"var o = {if: 1, class: 2}.if", "var o = { if: 1, class: 2 }.if;"},
		{"a = {true: 1, null: 2}; a.true", "a = { true: 1, null: 2 }; a.true;"},
		{"x = undefined", "x = undefined;"},
	}
	for _, tt := range tests {
		if got := roundTrip(t, tt.code); got != tt.want {
			t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", tt.code, got, tt.want)
		}
	}
}

func TestLiterals(t *testing.T) {
	p := mustParse(t, `1.5; "a\tb"; true; null; [1, , 3]`)

	if n := exprOf(t, p, 0).(*ast.NumberLiteral); n.Value != 1.5 || n.Literal != "1.5" {
		t.Errorf("number literal = %v (%q)", n.Value, n.Literal)
	}
	if s := exprOf(t, p, 1).(*ast.StringLiteral); s.Value != "a\tb" || s.Literal != `"a\tb"` {
		t.Errorf("string literal = %q (%q)", s.Value, s.Literal)
	}
	if b := exprOf(t, p, 2).(*ast.BooleanLiteral); !b.Value {
		t.Errorf("boolean literal = false")
	}
	if _, ok := exprOf(t, p, 3).(*ast.NullLiteral); !ok {
		t.Errorf("got %T, want *ast.NullLiteral", exprOf(t, p, 3))
	}
	arr := exprOf(t, p, 4).(*ast.ArrayLiteral)
	if len(arr.Value) != 3 || arr.Value[1].Expr != nil {
		t.Errorf("array literal elements = %d, hole = %v", len(arr.Value), arr.Value[1].Expr)
	}
}

func TestFunctionSource(t *testing.T) {
	code := "var f = function add(a, b) {\n  return a + b\n};"
	p := mustParse(t, code)
	decl := p.Body[0].Stmt.(*ast.VariableDeclaration)
	fn := decl.List[0].Initializer.Expr.(*ast.FunctionLiteral)
	want := "function add(a, b) {\n  return a + b\n}"
	if fn.Source != want {
		t.Errorf("Source = %q, want %q", fn.Source, want)
	}
	if fn.Name == nil || fn.Name.Name != "add" {
		t.Errorf("function name = %v", fn.Name)
	}
	if diff := cmp.Diff([]string{"a", "b"}, paramNames(fn)); diff != "" {
		t.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}
}

func paramNames(fn *ast.FunctionLiteral) []string {
	var names []string
	for _, p := range fn.ParameterList.List {
		names = append(names, p.Name)
	}
	return names
}

func TestPositions(t *testing.T) {
	p := mustParse(t, "a;\n  b + c;")
	stmt := p.Body[1].Stmt.(*ast.ExpressionStatement)
	pos := p.Position(stmt.Idx0())
	if pos.Line != 2 || pos.Column != 3 {
		t.Errorf("position = %s, want 2:3", pos)
	}
	if got := p.Position(stmt.Idx1()); got.Column != 8 {
		t.Errorf("end column = %d, want 8", got.Column)
	}
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

type errorSummary struct {
	Message  string
	Expected string
	Found    string
	Line     int
	Column   int
}

func summarize(err *parser.Error) errorSummary {
	return errorSummary{
		Message:  err.Message,
		Expected: err.Expected,
		Found:    err.Found,
		Line:     err.Position.Line,
		Column:   err.Position.Column,
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		code string
		want errorSummary
	}{
		{"a = ;", errorSummary{Message: "Unexpected token ;", Expected: "expression", Found: ";", Line: 1, Column: 5}},
		{"1 +", errorSummary{Message: "Unexpected end of input", Expected: "expression", Found: "end of input", Line: 1, Column: 4}},
		{"var 1 = 2", errorSummary{Message: "Unexpected number", Expected: "Identifier", Found: "1", Line: 1, Column: 5}},
		{"1 = 2;", errorSummary{Message: "Invalid left-hand side in assignment", Found: "=", Line: 1, Column: 1}},
		{"a++ = 1", errorSummary{Message: "Invalid left-hand side in assignment", Found: "=", Line: 1, Column: 1}},
		{"++f()", errorSummary{Message: "Invalid left-hand side in prefix operation", Found: "end of input", Line: 1, Column: 3}},
		{"a b", errorSummary{Message: "Unexpected identifier", Expected: ";", Found: "b", Line: 1, Column: 3}},
		{"var q = 1 var r = 2", errorSummary{Message: "Unexpected token var", Expected: ";", Found: "var", Line: 1, Column: 11}},
		{"f(", errorSummary{Message: "Unexpected end of input", Expected: ")", Found: "end of input", Line: 1, Column: 3}},
		{"if (a {", errorSummary{Message: "Unexpected token {", Expected: ")", Found: "{", Line: 1, Column: 7}},
		{"\n\nreturn 1", errorSummary{Message: "Illegal return statement", Found: "1", Line: 3, Column: 1}},
		{"break;", errorSummary{Message: "Illegal break statement", Found: ";", Line: 1, Column: 1}},
		{"try {}", errorSummary{Message: "Missing catch or finally after try", Found: "end of input", Line: 1, Column: 7}},
		{"const c;", errorSummary{Message: "Missing initializer in const declaration", Found: ";", Line: 1, Column: 7}},
		{"throw\n1", errorSummary{Message: "Illegal newline after throw", Found: "1", Line: 2, Column: 1}},
		{"switch (x) { default: default: }", errorSummary{Message: "More than one default clause in switch statement", Found: "default", Line: 1, Column: 23}},
		{"a: a: ;", errorSummary{Message: "Label 'a' has already been declared", Found: ";", Line: 1, Column: 4}},
		{"while (1) { continue foo }", errorSummary{Message: "Undefined label 'foo'", Found: "}", Line: 1, Column: 22}},
		{"let x; let x;", errorSummary{Message: "Identifier 'x' has already been declared", Found: "x", Line: 1, Column: 12}},
		{"let y; var y;", errorSummary{Message: "Identifier 'y' has already been declared", Found: "y", Line: 1, Column: 12}},
		{"if (a) let z = 1", errorSummary{Message: "Lexical declaration cannot appear in a single-statement context", Found: "l", Line: 1, Column: 8}},
		{"function () {}", errorSummary{Message: "Unexpected token (", Expected: "Identifier", Found: "(", Line: 1, Column: 10}},
	}
	for _, tt := range tests {
		_, err := parser.ParseFile(tt.code)
		var perr *parser.Error
		if !errors.As(err, &perr) {
			t.Errorf("parse(%q): got %v, want *parser.Error", tt.code, err)
			continue
		}
		if diff := cmp.Diff(tt.want, summarize(perr)); diff != "" {
			t.Errorf("parse(%q) mismatch (-want +got):\n%s", tt.code, diff)
		}
	}
}

func TestLexErrorIsWrapped(t *testing.T) {
	_, err := parser.ParseFile("x = 'abc")
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("got %T, want *parser.Error", err)
	}
	var lexErr *scanner.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("lex error is not reachable through errors.As")
	}
	if lexErr.Message != "Unterminated string" {
		t.Errorf("message = %q", lexErr.Message)
	}
	if perr.Position.String() != "1:5" {
		t.Errorf("position = %s, want 1:5", perr.Position)
	}
	if !strings.Contains(err.Error(), "1:5: Unterminated string") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNoPartialProgram(t *testing.T) {
	p, err := parser.ParseFile("a = 1; b = ;")
	if err == nil || p != nil {
		t.Fatalf("got program %v, err %v; want nil program and an error", p, err)
	}
}

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

func TestDeclarations(t *testing.T) {
	p := mustParse(t, `
var a = 1;
let b = 2;
const c = 3;
function f(x) {
	var y;
	{ var z; let w; }
	function g() { var hidden; }
}
for (var i = 0; i < 1; i++) { var j; }
if (a) function h() {}
`)
	d := p.Declarations
	if diff := cmp.Diff([]string{"a", "i", "j"}, d.Vars); diff != "" {
		t.Errorf("program vars mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ast.Binding{{Name: "b"}, {Name: "c", Const: true}}, d.Lexical); diff != "" {
		t.Errorf("program lexical mismatch (-want +got):\n%s", diff)
	}
	var fnNames []string
	for _, fn := range d.Functions {
		fnNames = append(fnNames, fn.Name.Name)
	}
	if diff := cmp.Diff([]string{"f", "h"}, fnNames); diff != "" {
		t.Errorf("program functions mismatch (-want +got):\n%s", diff)
	}

	f := p.Body[3].Stmt.(*ast.FunctionDeclaration).Function
	if diff := cmp.Diff([]string{"y", "z"}, f.Declarations.Vars); diff != "" {
		t.Errorf("function vars mismatch (-want +got):\n%s", diff)
	}
	if len(f.Declarations.Functions) != 1 || f.Declarations.Functions[0].Name.Name != "g" {
		t.Errorf("function declarations = %v", f.Declarations.Functions)
	}
	block := f.Body.List[1].Stmt.(*ast.BlockStatement)
	if diff := cmp.Diff([]ast.Binding{{Name: "w"}}, block.Declarations.Lexical); diff != "" {
		t.Errorf("block lexical mismatch (-want +got):\n%s", diff)
	}
	if len(block.Declarations.Vars) != 0 {
		t.Errorf("block vars = %v, want none", block.Declarations.Vars)
	}
}

func TestKeywordSet(t *testing.T) {
	for _, kw := range []string{"var", "let", "const", "if", "else", "while", "do", "for", "in",
		"function", "return", "true", "false", "null", "undefined", "new", "typeof",
		"instanceof", "void", "delete", "this", "try", "catch", "finally", "throw",
		"break", "continue", "switch", "case", "default"} {
		tok, ok := token.LiteralKeyword(kw)
		if !ok || !token.IsKeyword(tok) {
			t.Errorf("%q is not a keyword", kw)
		}
		if _, err := parser.ParseFile("var " + kw + " = 1"); err == nil {
			t.Errorf("keyword %q accepted as a binding name", kw)
		}
	}
}
