package engine_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/engine"
	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/parser"
	"github.com/t14raptor/fastscript/parser/scanner"
	"golang.org/x/sync/errgroup"
)

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	opts = append([]engine.Option{engine.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))}, opts...)
	e, err := engine.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		code string
		want any
	}{
		{"1 + 2 * 3", 7.0},
		{"(1 + 2) * 3", 9.0},
		{"var x = 0; for (var i = 0; i < 5; i++) x += i; x", 10.0},
		{"function f(a,b){ return a+b; } f(2,3)", 5.0},
		{"function f(a){ return a; } f()", nil},
		{"try { throw 'boom'; } catch (e) { e }", "boom"},
		{"1 == '1'", true},
		{"1 === '1'", false},
	}
	for _, tt := range tests {
		v, err := newEngine(t).Evaluate(tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.want, v.Export(), tt.code)
	}
}

func TestEvaluateErrors(t *testing.T) {
	e := newEngine(t)

	_, err := e.Evaluate("throw 1")
	var rerr *evaluator.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, evaluator.ScriptThrow, rerr.Kind)
	assert.Equal(t, 1.0, rerr.Value.Export())

	_, err = e.Evaluate("undeclaredName")
	assert.ErrorIs(t, err, evaluator.ErrUnresolvedIdentifier)

	_, err = e.Evaluate("a = ;")
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "1:5", perr.Position.String())

	_, err = e.Evaluate("x = 'abc")
	var lexErr *scanner.Error
	assert.ErrorAs(t, err, &lexErr)

	// A failed parse runs nothing.
	_, err = e.Evaluate("var ran = true; a = ;")
	require.Error(t, err)
	_, ok := e.Get("ran")
	assert.False(t, ok)
}

func TestCompileRun(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	setup, err := e.Compile("setup.js", "var count = 0; function bump(n){ count += n; return count; }")
	require.NoError(t, err)
	_, err = e.Run(ctx, setup)
	require.NoError(t, err)

	bump, err := e.Compile("bump.js", "bump(2)")
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		v, err := e.Run(ctx, bump)
		require.NoError(t, err)
		assert.Equal(t, float64(2*i), v.Float())
	}

	v, ok := e.Get("count")
	require.True(t, ok)
	assert.Equal(t, 6.0, v.Float())
	assert.Equal(t, "bump.js", bump.Name())

	// A program may be shared between engines.
	other := newEngine(t)
	_, err = other.Run(ctx, setup)
	require.NoError(t, err)
	v, err = other.Run(ctx, bump)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Float())
}

func TestSetRegisterCall(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Set("limits", map[string]any{"max": 3, "tags": []string{"a", "b"}}))
	require.NoError(t, e.Register("double", func(c evaluator.FunctionCall) (evaluator.Value, error) {
		return evaluator.NumberValue(c.Argument(0).Float() * 2), nil
	}))

	v, err := e.Evaluate("double(limits.max) + limits.tags.join('')")
	require.NoError(t, err)
	assert.Equal(t, "6ab", v.Export())

	_, err = e.Evaluate("function onEvent(name, payload){ return name + ':' + payload.id; }")
	require.NoError(t, err)
	v, err = e.Call(context.Background(), "onEvent", "click", map[string]any{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, "click:7", v.Export())

	_, err = e.Call(context.Background(), "missing")
	assert.ErrorIs(t, err, evaluator.ErrUnresolvedIdentifier)

	assert.Error(t, e.Set("bad", struct{}{}))
}

func TestStepLimit(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxSteps = 1000
	e := newEngine(t, engine.WithConfig(cfg))

	_, err := e.Evaluate("try { while (true) {} } catch (e) {}")
	assert.ErrorIs(t, err, evaluator.ErrInterrupted)
	assert.ErrorIs(t, err, engine.ErrStepLimit)

	// The limit applies per run.
	v, err := e.Evaluate("var n = 0; for (var i = 0; i < 100; i++) n++; n")
	require.NoError(t, err)
	assert.Equal(t, 100.0, v.Float())
}

func TestContextCancel(t *testing.T) {
	e := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.EvaluateContext(ctx, "for (;;) {}")
	assert.ErrorIs(t, err, evaluator.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)

	// Straight-line code has no interrupt points and still completes.
	v, err := e.EvaluateContext(ctx, "1 + 1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Float())
}

func TestMaxCallDepth(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxCallDepth = 20
	e := newEngine(t, engine.WithConfig(cfg))
	_, err := e.Evaluate("function f(n){ return f(n + 1); } f(0)")
	assert.ErrorIs(t, err, evaluator.ErrRangeError)
}

func TestConfigGlobals(t *testing.T) {
	cfg, err := engine.ParseConfig([]byte(`
globals:
  greeting: hello
  ports: [80, 443]
  limits:
    burst: 5
`))
	require.NoError(t, err)
	e := newEngine(t, engine.WithConfig(cfg))

	v, err := e.Evaluate("greeting + ' ' + ports[1] + ' ' + limits.burst")
	require.NoError(t, err)
	assert.Equal(t, "hello 443 5", v.Export())
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	e := newEngine(t, engine.WithStdout(&out))
	_, err := e.Evaluate("console.log('a', 1, [1, 'x']); print({k: null}); console.error(new Error('e'))")
	require.NoError(t, err)
	assert.Equal(t, "a 1 [ 1, 'x' ]\n{ k: null }\nError: e\n", out.String())

	_, err = newEngine(t).Evaluate("console")
	assert.ErrorIs(t, err, evaluator.ErrUnresolvedIdentifier)
}

func TestFoldConstants(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.FoldConstants = true
	e := newEngine(t, engine.WithConfig(cfg))

	p, err := e.Compile("", "2 * 3 + 1")
	require.NoError(t, err)
	stmt := p.AST().Body[0].Stmt.(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.Expr.(*ast.NumberLiteral)
	require.True(t, ok, "got %T", stmt.Expression.Expr)
	assert.Equal(t, 7.0, lit.Value)

	v, err := e.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v.Float())
}

func TestLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := engine.DefaultConfig()
	cfg.MaxSteps = 10
	e := newEngine(t, engine.WithConfig(cfg), engine.WithLogger(logger))

	p, err := e.Compile("loop.js", "while (true) {}")
	require.NoError(t, err)
	_, err = e.Run(context.Background(), p)
	require.Error(t, err)

	assert.Contains(t, logs.String(), "msg=compiled source=loop.js")
	assert.Contains(t, logs.String(), "level=WARN msg=\"run interrupted\" source=loop.js")
}

func TestClose(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)
	require.NoError(t, e.Close())

	_, err = e.Evaluate("1")
	assert.ErrorIs(t, err, engine.ErrClosed)
	assert.ErrorIs(t, e.Set("x", 1), engine.ErrClosed)
	assert.ErrorIs(t, e.Close(), engine.ErrClosed)
	_, ok := e.Get("x")
	assert.False(t, ok)
}

func TestInvalidOption(t *testing.T) {
	_, err := engine.New(engine.WithConfig(engine.Config{MaxSteps: -1}))
	assert.Error(t, err)

	_, err = engine.New(engine.WithConfig(engine.Config{Globals: map[string]any{"c": make(chan int)}}))
	assert.Error(t, err)
}

// Independent engines share nothing and may run in parallel.
func TestConcurrentEngines(t *testing.T) {
	const src = "function fib(n){ return n < 2 ? n : fib(n - 1) + fib(n - 2); } var seed = %d; fib(15) + seed"

	var g errgroup.Group
	results := make([]float64, 8)
	for i := range results {
		g.Go(func() error {
			e, err := engine.New(engine.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
			if err != nil {
				return err
			}
			defer e.Close()
			v, err := e.Evaluate(fmt.Sprintf(src, i))
			if err != nil {
				return err
			}
			results[i] = v.Float()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i, got := range results {
		assert.Equal(t, float64(610+i), got)
	}
}

// Concurrent use of one engine serializes.
func TestSharedEngineSerializes(t *testing.T) {
	e := newEngine(t)
	_, err := e.Evaluate("var total = 0; function add(){ for (var i = 0; i < 100; i++) total++; }")
	require.NoError(t, err)

	var g errgroup.Group
	for range 10 {
		g.Go(func() error {
			_, err := e.Evaluate("add()")
			return err
		})
	}
	require.NoError(t, g.Wait())
	v, _ := e.Get("total")
	assert.Equal(t, 1000.0, v.Float())
}

func TestFormatErrorFromEngine(t *testing.T) {
	src := "var a = 1;\nfunction f() {\n  return a.b.c;\n}\nf()"
	_, err := newEngine(t).Evaluate(src)
	require.Error(t, err)
	got := engine.FormatError(err, "main.js", src)
	assert.True(t, strings.HasPrefix(got, "main.js:3:"), got)
	assert.Contains(t, got, "   3 |   return a.b.c;\n")
	assert.True(t, errors.Is(err, evaluator.ErrTypeError))
}
