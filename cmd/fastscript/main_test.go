package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExpression(t *testing.T) {
	code, out, _ := runCLI(t, "", "-e", "[1, 2].map(function(x){ return x * 10; })")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "[ 10, 20 ]\n", out)

	code, out, _ = runCLI(t, "", "-e", "var x = 1")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, out)
}

func TestFilesRunInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var args []string
	for i, name := range []string{"a.js", "b.js", "c.js"} {
		args = append(args, writeFile(t, dir, name, strings.Repeat("var n = 0; for (var i = 0; i < 2000; i++) n++; ", 3-i)+"print('"+name+"')"))
	}
	code, out, errOut := runCLI(t, "", args...)
	assert.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "a.js\nb.js\nc.js\n", out)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.js", "print('ok')")
	syntax := writeFile(t, dir, "syntax.js", "a = ;")
	runtime := writeFile(t, dir, "runtime.js", "undeclaredName")

	code, out, errOut := runCLI(t, "", good, syntax)
	assert.Equal(t, exitParse, code)
	assert.Equal(t, "ok\n", out)
	assert.Contains(t, errOut, syntax+":1:5: Unexpected token ;")
	assert.Contains(t, errOut, "   1 | a = ;\n     |     ^")

	code, _, errOut = runCLI(t, "", syntax, runtime)
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, errOut, runtime+":1:1: ReferenceError: undeclaredName is not defined")

	code, _, _ = runCLI(t, "", filepath.Join(dir, "missing.js"))
	assert.Equal(t, exitRuntime, code)

	code, _, _ = runCLI(t, "", "-nope")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "-e", "1", good)
	assert.Equal(t, exitUsage, code)
}

func TestStdin(t *testing.T) {
	code, out, _ := runCLI(t, "var s = 'in';\nconsole.log(s + 'put')\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "input\n", out)
}

func TestDumpAST(t *testing.T) {
	code, out, _ := runCLI(t, "", "-ast", "-e", "if(a){b()}")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "if (a) {")
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.yaml", "max_steps: 50\nfold_constants: true\nglobals:\n  name: world\n")

	code, out, _ := runCLI(t, "", "-config", cfg, "-e", "'hello ' + name")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "\"hello world\"\n", out)

	code, _, errOut := runCLI(t, "", "-config", cfg, "-e", "while (true) {}")
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, errOut, "step limit exceeded")

	code, out, _ = runCLI(t, "", "-config", cfg, "-ast", "-e", "1 + 2")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "3;", strings.TrimSpace(out))

	bad := writeFile(t, dir, "bad.yaml", "max_steps: many\n")
	code, _, _ = runCLI(t, "", "-config", bad, "-e", "1")
	assert.Equal(t, exitUsage, code)
}

func TestVerboseLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-v", "-e", "1")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "level=DEBUG msg=compiled source=-e")
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"function f() {", true},
		{"f(1,", true},
		{"if (a)", true},
		{"1 +", true},
		{"1 + 2", false},
		{"a = ;", false},
		{"'open", false},
		{":ast {", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, incomplete(tt.src), tt.src)
	}
}
