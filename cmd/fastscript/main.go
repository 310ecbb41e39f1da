// Command fastscript runs scripts from files, the command line or an
// interactive prompt.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/t14raptor/fastscript/engine"
	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/generator"
	"github.com/t14raptor/fastscript/parser"
	"golang.org/x/sync/errgroup"
)

// Exit codes follow sysexits.h.
const (
	exitOK      = 0
	exitUsage   = 64
	exitParse   = 65
	exitRuntime = 70
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fastscript", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "load engine configuration from YAML `file`")
	verbose := fs.Bool("v", false, "log at debug level")
	expr := fs.String("e", "", "evaluate `expression` and print its value")
	dumpAST := fs.Bool("ast", false, "print the parsed program instead of running it")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fastscript [-config file.yaml] [-v] [-ast] [-e expr | file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *expr != "" && fs.NArg() > 0 {
		fmt.Fprintln(stderr, "fastscript: -e cannot be combined with files")
		return exitUsage
	}

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(stderr, "fastscript:", err)
			return exitUsage
		}
	}
	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}

	r := &runner{
		config:  cfg,
		logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		dumpAST: *dumpAST,
	}
	var err error
	switch {
	case *expr != "":
		err = r.runSource(ctx, "-e", *expr, stdout, true)
	case fs.NArg() > 0:
		err = r.runFiles(ctx, fs.Args(), stdout)
	case isTerminal(stdin):
		err = r.repl(ctx, stdout, stderr)
	default:
		var src []byte
		if src, err = io.ReadAll(stdin); err == nil {
			err = r.runSource(ctx, "<stdin>", string(src), stdout, false)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return exitCode(err)
}

type runner struct {
	config  engine.Config
	logger  *slog.Logger
	dumpAST bool
}

func (r *runner) newEngine(stdout io.Writer) (*engine.Engine, error) {
	return engine.New(
		engine.WithConfig(r.config),
		engine.WithLogger(r.logger),
		engine.WithStdout(stdout),
	)
}

// runSource runs src in a fresh engine.
func (r *runner) runSource(ctx context.Context, name, src string, stdout io.Writer, printResult bool) error {
	e, err := r.newEngine(stdout)
	if err != nil {
		return err
	}
	defer e.Close()

	p, err := e.Compile(name, src)
	if err != nil {
		return &scriptError{name: name, src: src, err: err}
	}
	if r.dumpAST {
		fmt.Fprint(stdout, generator.Generate(p.AST()))
		return nil
	}
	v, err := e.Run(ctx, p)
	if err != nil {
		return &scriptError{name: name, src: src, err: err}
	}
	if printResult && !v.IsUndefined() {
		fmt.Fprintln(stdout, evaluator.Inspect(v))
	}
	return nil
}

// runFiles runs every file concurrently, one engine each. Output is
// buffered per file and written in argument order.
func (r *runner) runFiles(ctx context.Context, paths []string, stdout io.Writer) error {
	outputs := make([]bytes.Buffer, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = r.runSource(ctx, path, string(src), &outputs[i], false)
			return nil
		})
	}
	_ = g.Wait()

	for i := range outputs {
		if _, err := outputs[i].WriteTo(stdout); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

// scriptError renders a script failure with a source snippet.
type scriptError struct {
	name string
	src  string
	err  error
}

func (e *scriptError) Error() string {
	return engine.FormatError(e.err, e.name, e.src)
}

func (e *scriptError) Unwrap() error {
	return e.err
}

// exitCode maps an error to the most severe exit status among the errors
// it joins.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		code := exitOK
		for _, err := range joined.Unwrap() {
			code = max(code, exitCode(err))
		}
		return code
	}
	var perr *parser.Error
	if errors.As(err, &perr) {
		return exitParse
	}
	return exitRuntime
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
