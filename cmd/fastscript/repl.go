package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/t14raptor/fastscript/engine"
	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/generator"
	"github.com/t14raptor/fastscript/parser"
)

const (
	historyFile = ".fastscript_history"
	promptMain  = "> "
	promptCont  = "... "
)

// repl reads statements until EOF and evaluates them in one engine, so
// declarations persist between inputs.
func (r *runner) repl(ctx context.Context, stdout, stderr io.Writer) error {
	e, err := r.newEngine(stdout)
	if err != nil {
		return err
	}
	defer e.Close()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(stdout, "fastscript (:quit or Ctrl+D to exit, :ast <code> to print a parse)")
	for {
		src, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return nil
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		switch {
		case trimmed == ":quit":
			return nil
		case strings.HasPrefix(trimmed, ":ast"):
			code := strings.TrimSpace(strings.TrimPrefix(trimmed, ":ast"))
			p, err := parser.ParseFile(code)
			if err != nil {
				fmt.Fprintln(stderr, engine.FormatError(err, "", code))
				continue
			}
			fmt.Fprint(stdout, generator.Generate(p))
			continue
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(stderr, "unknown command; use :ast or :quit")
			continue
		}

		v, err := e.EvaluateContext(ctx, src)
		if err != nil {
			fmt.Fprintln(stderr, engine.FormatError(err, "", src))
			continue
		}
		fmt.Fprintln(stdout, evaluator.Inspect(v))
	}
}

// readInput prompts until the collected lines parse or fail for a reason
// other than running out of input.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src fails to parse only because it ends too
// early, as with an unclosed brace.
func incomplete(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	_, err := parser.ParseFile(src)
	var perr *parser.Error
	return errors.As(err, &perr) && perr.Found == "end of input"
}
