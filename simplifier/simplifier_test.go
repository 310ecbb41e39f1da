package simplifier_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/generator"
	"github.com/t14raptor/fastscript/parser"
	"github.com/t14raptor/fastscript/simplifier"
)

func simplify(t *testing.T, in string) (string, int) {
	t.Helper()
	p, err := parser.ParseFile(in)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", in, err)
	}
	n, err := simplifier.Simplify(p)
	if err != nil {
		t.Fatalf("simplify(%q) failed: %v", in, err)
	}
	out := generator.Generate(p)
	out = strings.ReplaceAll(strings.ReplaceAll(out, "\n", ""), "    ", "")
	return strings.TrimSuffix(strings.TrimSpace(out), ";"), n
}

func TestFold(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{in: "1 + 2 * 3", want: "7"},
		{in: "'a' + 1", want: `"a1"`},
		{in: "1 - 3", want: "-2"},
		{in: "-(1 - 1)", want: "-0"},
		{in: "0.1 + 0.2", want: "0.30000000000000004"},
		{in: "1e21 * 10", want: "1e+22"},
		{in: "!0", want: "true"},
		{in: "!!''", want: "false"},
		{in: "~5", want: "-6"},
		{in: "-1 >>> 0", want: "4294967295"},
		{in: "1 == '1'", want: "true"},
		{in: "null === undefined", want: "false"},
		{in: "'b' < 'a'", want: "false"},
		{in: "typeof 'x'", want: `"string"`},
		{in: "typeof null", want: `"object"`},
		{in: "void 0", want: "undefined"},
		{in: "true ? 1 : 2", want: "1"},
		{in: "0 ? a : b", want: "b"},
		{in: "1 && f()", want: "f()"},
		{in: "0 && f()", want: "0"},
		{in: "'' || x", want: "x"},
		{in: "x = 2 * 8", want: "x = 16"},
		{in: "f(1 + 1, 'a' + 'b')", want: `f(2, "ab")`},
		{in: "var a = [1 + 1, {k: 2 * 2}]", want: "var a = [2, {k: 4}]"},
	}

	for _, test := range tests {
		got, _ := simplify(t, test.in)
		if got != test.want {
			t.Errorf("simplify(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}

func TestNoFold(t *testing.T) {
	for _, in := range []string{
		"x + 1",
		"-5",
		"0 / 0",
		"1 / 0",
		"'a' in o",
		"typeof x",
		"delete o.x",
		"(1 && o.m)()",
		"(true ? o.m : f)()",
		"f() + 1",
	} {
		got, n := simplify(t, in)
		if n != 0 {
			t.Errorf("simplify(%q) = %q with %d folds; want it unchanged", in, got, n)
		}
	}
}

// Folding must not change what a program computes.
func TestFoldPreservesResult(t *testing.T) {
	for _, src := range []string{
		"var o = {m: function(){ return this === o; }}; (1 && o.m)()",
		"1 + 2 + '3' + 4 * 5",
		"var s = ''; for (var i = 0; i < 3 * 1; i++) s += i + (true ? '-' : '+'); s",
		"'x' + (-0) + (1 / -(1 - 1))",
	} {
		plain, err := parser.ParseFile(src)
		if err != nil {
			t.Fatal(err)
		}
		folded, err := parser.ParseFile(src)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := simplifier.Simplify(folded); err != nil {
			t.Fatal(err)
		}
		want, err := evaluator.New().Run(plain)
		if err != nil {
			t.Fatal(err)
		}
		got, err := evaluator.New().Run(folded)
		if err != nil {
			t.Fatal(err)
		}
		if evaluator.Inspect(got) != evaluator.Inspect(want) {
			t.Errorf("%s: folded result %s, want %s", src, evaluator.Inspect(got), evaluator.Inspect(want))
		}
	}
}

func TestUnreachable(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{in: "function f(){ return 1; g(); h(); }", want: "function f() {return 1;}"},
		{in: "function f(){ throw e; var v = 1; function k(){} g(); }", want: "function f() {throw e;var v = 1;function k() {}}"},
		{in: "while (a) { break; b(); }", want: "while (a) {break;}"},
		{in: "while (a) { switch (x) { case 1: continue; a(); case 2: b(); } }", want: "while (a) {switch (x) {case 1:continue;case 2:b();}}"},
		{in: "function f(){ if (a) { return; } b() }", want: "function f() {if (a) {return;}b();}"},
	}
	for _, test := range tests {
		p, err := parser.ParseFile(test.in)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", test.in, err)
		}
		if _, err := simplifier.Simplify(p); err != nil {
			t.Fatal(err)
		}
		got := strings.ReplaceAll(strings.ReplaceAll(generator.Generate(p), "\n", ""), "    ", "")
		got = strings.TrimSuffix(strings.TrimSpace(got), ";")
		if got != test.want {
			t.Errorf("simplify(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}
