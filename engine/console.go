package engine

import (
	"fmt"
	"strings"

	"github.com/t14raptor/fastscript/evaluator"
)

// installConsole binds console.log, console.error and print. Strings are
// written as is, other values in their inspected form.
func (e *Engine) installConsole() {
	write := func(c evaluator.FunctionCall) (evaluator.Value, error) {
		parts := make([]string, len(c.Arguments))
		for i, arg := range c.Arguments {
			if arg.IsString() {
				parts[i] = arg.String()
			} else {
				parts[i] = evaluator.Inspect(arg)
			}
		}
		if _, err := fmt.Fprintln(e.stdout, strings.Join(parts, " ")); err != nil {
			return evaluator.Value{}, fmt.Errorf("console: %w", err)
		}
		return evaluator.Undefined(), nil
	}

	console := e.in.NewObject()
	console.Set("log", e.in.NewNative("log", write))
	console.Set("error", e.in.NewNative("error", write))
	e.in.Set("console", evaluator.ObjectValue(console))
	e.in.Set("print", e.in.NewNative("print", write))
}
