package resolver

import (
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

// Hoister collects the var names of a function body: every `var` in the body,
// nested blocks, loop heads and try/catch included, but not those of nested
// functions.
type Hoister struct {
	ast.NoopVisitor

	seen  map[string]struct{}
	names []string
}

func NewHoister() *Hoister {
	h := &Hoister{seen: make(map[string]struct{})}
	h.V = h
	return h
}

func (h *Hoister) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Token != token.Var {
		return
	}
	for _, decl := range n.List {
		if _, ok := h.seen[decl.Target.Name]; ok {
			continue
		}
		h.seen[decl.Target.Name] = struct{}{}
		h.names = append(h.names, decl.Target.Name)
	}
}

func (h *Hoister) VisitExpression(n *ast.Expression)                   {}
func (h *Hoister) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {}

// hoistVars returns the var names declared by list in source order.
func hoistVars(list *ast.Statements) []string {
	h := NewHoister()
	list.VisitWith(h)
	return h.names
}
