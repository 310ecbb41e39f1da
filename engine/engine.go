// Package engine embeds the interpreter in a host program: it owns the
// global scope, applies configuration and bounds every run.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/parser"
	"github.com/t14raptor/fastscript/simplifier"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrClosed is returned by every method of a closed Engine.
	ErrClosed = errors.New("engine closed")
	// ErrStepLimit is the cause of the Interrupted error raised when a run
	// exceeds Config.MaxSteps.
	ErrStepLimit = errors.New("step limit exceeded")
)

// Engine is an independent script instance. Its methods serialize on an
// internal mutex; separate engines may run on separate goroutines.
type Engine struct {
	mu     sync.Mutex
	in     *evaluator.Interpreter
	closed bool

	config Config
	logger *slog.Logger
	stdout io.Writer
}

// Option configures an Engine.
type Option func(*Engine) error

// WithConfig sets the engine configuration.
func WithConfig(c Config) Option {
	return func(e *Engine) error {
		if err := c.Validate(); err != nil {
			return err
		}
		e.config = c
		return nil
	}
}

// WithLogger sets the logger. Without it the engine logs to stderr at the
// configured level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithStdout installs console.log, console.error and print, writing to w.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) error {
		e.stdout = w
		return nil
	}
}

// New builds an engine whose global scope holds the builtins, the console
// bindings if requested, and the configured globals.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		in:     evaluator.New(),
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if e.logger == nil {
		level, _ := e.config.Level()
		e.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	if e.config.MaxCallDepth > 0 {
		e.in.MaxCallDepth = e.config.MaxCallDepth
	}
	if e.stdout != nil {
		e.installConsole()
	}

	names := maps.Keys(e.config.Globals)
	slices.Sort(names)
	for _, name := range names {
		v, err := e.in.ToValue(e.config.Globals[name])
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
		e.in.Set(name, v)
	}
	return e, nil
}

// Program is a parsed and resolved script. It is never modified by
// running it, so one Program may be run many times and by several engines.
type Program struct {
	name    string
	program *ast.Program
}

// Name returns the name the program was compiled with.
func (p *Program) Name() string {
	return p.name
}

// AST returns the syntax tree.
func (p *Program) AST() *ast.Program {
	return p.program
}

// Compile parses src, resolves its declarations and, if configured, folds
// its constant expressions. name labels positions in errors and logs.
func (e *Engine) Compile(name, src string) (*Program, error) {
	e.mu.Lock()
	closed, fold := e.closed, e.config.FoldConstants
	e.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	start := time.Now()
	p, err := parser.ParseNamed(name, src)
	if err != nil {
		return nil, err
	}
	rewrites := 0
	if fold {
		if rewrites, err = simplifier.Simplify(p); err != nil {
			return nil, err
		}
	}
	e.logger.Debug("compiled",
		slog.String("source", name),
		slog.Int("statements", len(p.Body)),
		slog.Int("rewrites", rewrites),
		slog.Duration("elapsed", time.Since(start)))
	return &Program{name: name, program: p}, nil
}

// Run executes p against the persistent global scope. Cancelling ctx or
// exceeding Config.MaxSteps aborts the run with an Interrupted error.
func (e *Engine) Run(ctx context.Context, p *Program) (evaluator.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return evaluator.Value{}, ErrClosed
	}

	e.in.Hook = e.hook(ctx)
	defer func() {
		e.in.Hook = nil
	}()

	start := time.Now()
	v, err := e.in.Run(p.program)
	e.logResult(p.name, start, err)
	return v, err
}

// Evaluate compiles and runs src.
func (e *Engine) Evaluate(src string) (evaluator.Value, error) {
	return e.EvaluateContext(context.Background(), src)
}

// EvaluateContext compiles and runs src, aborting when ctx is done.
func (e *Engine) EvaluateContext(ctx context.Context, src string) (evaluator.Value, error) {
	p, err := e.Compile("", src)
	if err != nil {
		return evaluator.Value{}, err
	}
	return e.Run(ctx, p)
}

// Call invokes the global function name with arguments converted by
// evaluator.ToValue.
func (e *Engine) Call(ctx context.Context, name string, args ...any) (evaluator.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return evaluator.Value{}, ErrClosed
	}

	fn, ok := e.in.Get(name)
	if !ok {
		return evaluator.Value{}, evaluator.NewError(evaluator.UnresolvedIdentifier, "%s is not defined", name)
	}
	values := make([]evaluator.Value, len(args))
	for i, arg := range args {
		v, err := e.in.ToValue(arg)
		if err != nil {
			return evaluator.Value{}, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}

	e.in.Hook = e.hook(ctx)
	defer func() {
		e.in.Hook = nil
	}()

	start := time.Now()
	v, err := e.in.Call(fn, evaluator.Undefined(), values...)
	e.logResult(name, start, err)
	return v, err
}

// Set binds a Go value, converted by evaluator.ToValue, as a global.
func (e *Engine) Set(name string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	v, err := e.in.ToValue(value)
	if err != nil {
		return fmt.Errorf("global %q: %w", name, err)
	}
	e.in.Set(name, v)
	return nil
}

// Get returns an initialized global binding.
func (e *Engine) Get(name string) (evaluator.Value, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return evaluator.Value{}, false
	}
	return e.in.Get(name)
}

// Register binds a native function as a global.
func (e *Engine) Register(name string, fn evaluator.NativeFunction) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.in.Set(name, e.in.NewNative(name, fn))
	return nil
}

// Close releases the global scope. Later calls return ErrClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.closed = true
	e.in = nil
	return nil
}

// hook returns the interrupt check for one run: it counts steps against
// MaxSteps and polls ctx.
func (e *Engine) hook(ctx context.Context) func() error {
	var steps int64
	limit := e.config.MaxSteps
	done := ctx.Done()
	return func() error {
		steps++
		if limit > 0 && steps > limit {
			return ErrStepLimit
		}
		if done == nil {
			return nil
		}
		select {
		case <-done:
			return context.Cause(ctx)
		default:
			return nil
		}
	}
}

func (e *Engine) logResult(name string, start time.Time, err error) {
	elapsed := time.Since(start)
	switch {
	case err == nil:
		e.logger.Debug("run finished", slog.String("source", name), slog.Duration("elapsed", elapsed))
	case errors.Is(err, evaluator.ErrInterrupted):
		e.logger.Warn("run interrupted", slog.String("source", name), slog.Duration("elapsed", elapsed), slog.Any("error", err))
	default:
		e.logger.Debug("run failed", slog.String("source", name), slog.Duration("elapsed", elapsed), slog.Any("error", err))
	}
}
