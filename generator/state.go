package generator

import (
	"strings"

	"github.com/t14raptor/fastscript/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int

	// noIn is set inside a for-loop head, where a bare `in` operator would
	// be read as a for-in loop.
	noIn bool
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		noIn:   s.noIn,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

func (s *state) write(str string) {
	s.out.WriteString(str)
}
