package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/fastscript/parser"
)

func generateNoIndent(t *testing.T, src string) string {
	t.Helper()
	program, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("Failed to parse input %q: %v", src, err)
	}
	output := Generate(program)
	return strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", "")
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"right assoc assignment", "a = b = c", "a = b = c;"},
		{"grouping kept", "(a + b) * c", "(a + b) * c;"},
		{"right operand grouping", "a - (b - c)", "a - (b - c);"},
		{"left assoc", "a - b - c", "a - b - c;"},
		{"redundant parens dropped", "((a)) + ((b * c))", "a + b * c;"},
		{"nested conditional", "x = a ? b : c ? d : e", "x = a ? b : c ? d : e;"},
		{"conditional test grouping", "(a ? b : c) ? d : e", "(a ? b : c) ? d : e;"},
		{"logical", "(a || b) && c || d", "(a || b) && c || d;"},
		{"double negation spacing", "-(-x)", "- -x;"},
		{"prefix after plus", "a++ + ++b", "a++ + ++b;"},
		{"not grouping", "!(a && b)", "!(a && b);"},
		{"typeof", `typeof x === "undefined"`, `typeof x === "undefined";`},
		{"sequence in assignment", "x = (a, b)", "x = (a, b);"},
		{"sequence in call", "f((a, b), c)", "f((a, b), c);"},
		{"new with call callee", "new (f())()", "new (f())();"},
		{"new without arguments", "new a.b.C", "new a.b.C();"},
		{"number member", "(1).toString()", "(1).toString();"},
		{"computed member", "a[b + 1].c", "a[b + 1].c;"},
		{"object statement", "({a: 1})", "({a: 1});"},
		{"object keys", "a = {'b c': 1, d: 2, [e]: 3, 4: 5}", `a = {"b c": 1,d: 2,[e]: 3,4: 5};`},
		{"shorthand property", "a = {x}", "a = {x: x};"},
		{"iife", "(function () {})()", "(function() {}());"},
		{"function expression", "x = function f(a, b) { return a + b }", "x = function f(a, b) {return a + b;};"},
		{"array holes", "var a = [1, , 2, ]", "var a = [1, , 2];"},
		{"trailing hole", "x = [,]", "x = [,];"},
		{"for loop", "for (var i = 0; i < 10; i++) x += i", "for (var i = 0; i < 10; i++) x += i;"},
		{"for loop in operator", "for (var x = (a in b); x;) {}", "for (var x = (a in b); x;) {}"},
		{"empty for", "for (;;) {}", "for (;;) {}"},
		{"for in", "for (k in o) {}", "for (k in o) {}"},
		{"for let in", "for (let k in o) f(k)", "for (let k in o) f(k);"},
		{"dangling else", "if (a) if (b) x(); else y();", "if (a) if (b) {x();} else y();"},
		{"if else blocks", "if (a) { x() } else { y() }", "if (a) {x();} else {y();}"},
		{"else if", "if (a) x(); else if (b) y()", "if (a) {x();} else if (b) y();"},
		{"labels", "outer: for (;;) { break outer }", "outer: for (;;) {break outer;}"},
		{"switch", "switch (x) { case 1: a(); break; default: b() }", "switch (x) {case 1:a();break;default:b();}"},
		{"try catch finally", "try { a() } catch (e) { b() } finally { c() }", "try {a();} catch (e) {b();} finally {c();}"},
		{"try optional binding", "try { a() } catch { b() }", "try {a();} catch {b();}"},
		{"do while", "do x++; while (x < 3)", "do x++; while (x < 3);"},
		{"return", "function f() { return }", "function f() {return;}"},
		{"let const", "let a = 1, b; const c = 2", "let a = 1, b;const c = 2;"},
		{"compound assignment", "a >>>= 2", "a >>>= 2;"},
		{"delete void", "delete a.b, void 0", "delete a.b, void 0;"},
		{"string escapes kept", `"a\nb"`, `"a\nb";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generateNoIndent(t, tt.input)
			if result != tt.expected {
				t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.input, tt.expected, result)
			}
		})
	}
}

// TestGenerateReparse checks that generated code parses back to code that
// generates identically.
func TestGenerateReparse(t *testing.T) {
	inputs := []string{
		"var f = function (a) { return a * (a - 1) }; f(3)",
		"for (var i = 0, j = 10; i < j; i++, j--) { if (i % 2) continue; else break }",
		"x = a ? (b, c) : d = e",
		"new Foo(1, 2).bar[baz]()",
		"o = {a: [1, {b: 2}], 'c': function () {}}",
	}
	for _, input := range inputs {
		first := generateNoIndent(t, input)
		second := generateNoIndent(t, first)
		if first != second {
			t.Errorf("generate is not stable for %q:\nfirst:  %s\nsecond: %s", input, first, second)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"plain":      `"plain"`,
		`a"b`:        `"a\"b"`,
		"tab\there":  `"tab\there"`,
		"nul\x00":    `"nul\x00"`,
		"\u2028":     `"\u2028"`,
		"日本":         `"日本"`,
		`back\slash`: `"back\\slash"`,
	}
	for in, want := range tests {
		if got := Quote(in); got != want {
			t.Errorf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}
