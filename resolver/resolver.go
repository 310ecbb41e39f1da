package resolver

import (
	"fmt"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

// Error is an early error found while resolving declarations, such as a
// let/const redeclaration.
type Error struct {
	Message string
	Idx     ast.Idx
}

func (e *Error) Error() string {
	return e.Message
}

// Resolver annotates a program with the declarations that bind on entry to
// each scope: the Program, every FunctionLiteral, BlockStatement and
// SwitchStatement.
type Resolver struct {
	ast.NoopVisitor

	current *Scope
	err     *Error
}

// Resolve fills in the Declarations of p and all nested scopes. It returns
// the first redeclaration error, if any.
func Resolve(p *ast.Program) error {
	r := &Resolver{}
	r.V = r
	p.VisitWith(r)
	if r.err != nil {
		return r.err
	}
	return nil
}

func (r *Resolver) errorf(idx ast.Idx, msg string, msgValues ...any) {
	if r.err == nil {
		r.err = &Error{Message: fmt.Sprintf(msg, msgValues...), Idx: idx}
	}
}

func (r *Resolver) pushScope(kind ScopeKind, decls *ast.Declarations) {
	r.current = &Scope{
		parent:          r.current,
		kind:            kind,
		decls:           decls,
		declaredSymbols: make(map[string]DeclKind),
	}
}

func (r *Resolver) popScope() {
	if r.current.parent != nil {
		r.current = r.current.parent
	}
}

func (r *Resolver) declare(id *ast.Identifier, kind DeclKind) {
	if r.current.conflicts(id.Name, kind) {
		r.errorf(id.Idx, "Identifier '%s' has already been declared", id.Name)
		return
	}
	if existing, ok := r.current.declaredSymbols[id.Name]; ok && existing == DeclKindParam {
		return
	}
	r.current.declaredSymbols[id.Name] = kind
}

// declareStatements records the let/const bindings and function
// declarations that list binds directly in the current scope.
func (r *Resolver) declareStatements(list ast.Statements) {
	for i := range list {
		r.declareStatement(list[i].Stmt, true)
	}
}

// declareStatement handles one statement. Function declarations in
// single-statement positions (`if (x) function f() {}`) bind in the
// enclosing scope.
func (r *Resolver) declareStatement(stmt ast.Stmt, direct bool) {
	decls := r.current.decls
	switch n := stmt.(type) {
	case *ast.VariableDeclaration:
		if n.Token == token.Var {
			return
		}
		if !direct {
			r.errorf(n.Idx, "Lexical declaration cannot appear in a single-statement context")
			return
		}
		for _, decl := range n.List {
			r.declare(decl.Target, DeclKindLexical)
			decls.Lexical = append(decls.Lexical, ast.Binding{Name: decl.Target.Name, Const: n.Token == token.Const})
		}
	case *ast.FunctionDeclaration:
		r.declare(n.Function.Name, DeclKindFunction)
		decls.Functions = append(decls.Functions, n.Function)
	case *ast.LabelledStatement:
		r.declareStatement(n.Statement.Stmt, false)
	case *ast.IfStatement:
		r.declareStatement(n.Consequent.Stmt, false)
		if n.Alternate != nil {
			r.declareStatement(n.Alternate.Stmt, false)
		}
	case *ast.WhileStatement:
		r.declareStatement(n.Body.Stmt, false)
	case *ast.DoWhileStatement:
		r.declareStatement(n.Body.Stmt, false)
	case *ast.ForStatement:
		r.declareStatement(n.Body.Stmt, false)
	case *ast.ForInStatement:
		r.declareStatement(n.Body.Stmt, false)
	}
}

func (r *Resolver) VisitProgram(n *ast.Program) {
	n.Declarations = &ast.Declarations{}
	r.pushScope(ScopeKindFunction, n.Declarations)
	r.declareStatements(n.Body)
	n.Declarations.Vars = hoistVars(&n.Body)
	n.Body.VisitWith(r)
	r.popScope()
}

func (r *Resolver) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	n.Declarations = &ast.Declarations{}
	r.pushScope(ScopeKindFunction, n.Declarations)
	for _, param := range n.ParameterList.List {
		r.current.declaredSymbols[param.Name] = DeclKindParam
	}
	r.declareStatements(n.Body.List)
	n.Declarations.Vars = hoistVars(&n.Body.List)
	// The body shares the function scope.
	n.Body.List.VisitWith(r)
	r.popScope()
}

func (r *Resolver) VisitBlockStatement(n *ast.BlockStatement) {
	n.Declarations = &ast.Declarations{}
	r.pushScope(ScopeKindBlock, n.Declarations)
	r.declareStatements(n.List)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Discriminant.VisitWith(r)

	n.Declarations = &ast.Declarations{}
	r.pushScope(ScopeKindBlock, n.Declarations)
	for i := range n.Body {
		r.declareStatements(n.Body[i].Consequent)
	}
	for i := range n.Body {
		n.Body[i].VisitWith(r)
	}
	r.popScope()
}

func (r *Resolver) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Token == token.Var {
		for _, decl := range n.List {
			if r.current.lexicallyDeclared(decl.Target.Name) {
				r.errorf(decl.Target.Idx, "Identifier '%s' has already been declared", decl.Target.Name)
			}
		}
	}
	n.VisitChildrenWith(r)
}
