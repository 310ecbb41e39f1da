package resolver

import "github.com/t14raptor/fastscript/ast"

type DeclKind int

const (
	DeclKindVar DeclKind = iota
	DeclKindFunction
	DeclKindLexical
	DeclKindParam
)

type ScopeKind int

const (
	ScopeKindBlock ScopeKind = iota
	ScopeKindFunction
)

type Scope struct {
	parent *Scope

	kind ScopeKind

	decls *ast.Declarations

	declaredSymbols map[string]DeclKind
}

// conflicts reports whether declaring id with kind clashes with an existing
// binding of the scope. Only lexical bindings are exclusive.
func (s *Scope) conflicts(id string, kind DeclKind) bool {
	existing, ok := s.declaredSymbols[id]
	if !ok {
		return false
	}
	return kind == DeclKindLexical || existing == DeclKindLexical
}

// lexicallyDeclared walks up to the enclosing function scope looking for a
// let/const binding of id.
func (s *Scope) lexicallyDeclared(id string) bool {
	for scope := s; scope != nil; scope = scope.parent {
		if kind, ok := scope.declaredSymbols[id]; ok && kind == DeclKindLexical {
			return true
		}
		if scope.kind == ScopeKindFunction {
			break
		}
	}
	return false
}
