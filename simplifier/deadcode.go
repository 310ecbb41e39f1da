package simplifier

import (
	"github.com/t14raptor/fastscript/ast"
)

// VisitStatements drops statements that follow an unconditional return,
// throw, break or continue in the same list. Declarations are kept since
// their names are hoisted.
func (s *Simplifier) VisitStatements(n *ast.Statements) {
	n.VisitChildrenWith(s)

	list := *n
	for i, stmt := range list {
		if !isAbrupt(stmt.Stmt) {
			continue
		}
		kept := list[:i+1]
		for _, rest := range list[i+1:] {
			if isDeclaration(rest.Stmt) {
				kept = append(kept, rest)
			} else {
				s.changed++
			}
		}
		*n = kept
		return
	}
}

func isAbrupt(stmt ast.Stmt) bool {
	switch stmt.(type) {
	case *ast.ReturnStatement, *ast.ThrowStatement, *ast.BreakStatement, *ast.ContinueStatement:
		return true
	}
	return false
}

func isDeclaration(stmt ast.Stmt) bool {
	switch stmt.(type) {
	case *ast.VariableDeclaration, *ast.FunctionDeclaration:
		return true
	}
	return false
}
