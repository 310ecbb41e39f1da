package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/parser"
	"github.com/t14raptor/fastscript/token"
)

// FormatError renders err with a snippet of src around its position: one
// line of context on each side and a caret under the column.
//
//	script.js:2:3: ReferenceError: undeclaredName is not defined
//
//	   1 | var a = 1;
//	   2 |   undeclaredName
//	     |   ^
//
// Errors without a position are returned as their message.
func FormatError(err error, name, src string) string {
	var pos token.Position
	var perr *parser.Error
	var rerr *evaluator.RuntimeError
	switch {
	case errors.As(err, &perr):
		pos = perr.Position
	case errors.As(err, &rerr):
		pos = rerr.Position
	}

	header := err.Error()
	if name != "" {
		header = name + ":" + header
	}
	if !pos.IsValid() {
		return header
	}

	lines := strings.Split(src, "\n")
	line := min(pos.Line, len(lines))
	text := strings.TrimSuffix(lines[line-1], "\r")

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, strings.TrimSuffix(lines[line-2], "\r"))
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, text)
	fmt.Fprintf(&b, "     | %s^\n", caretPad(text, pos.Column))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, strings.TrimSuffix(lines[line], "\r"))
	}
	return b.String()
}

// caretPad returns the indentation that puts a caret under the byte column
// col of text. Tabs are kept so the caret lines up in a terminal.
func caretPad(text string, col int) string {
	end := min(max(col-1, 0), len(text))
	var b strings.Builder
	for _, r := range text[:end] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
