package evaluator

import (
	"fmt"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/resolver"
	"github.com/t14raptor/fastscript/token"
)

// DefaultMaxCallDepth is the call depth at which a RangeError is raised.
const DefaultMaxCallDepth = 512

// Interpreter evaluates programs against a persistent global scope. It is
// not safe for concurrent use.
type Interpreter struct {
	global *Scope

	// MaxCallDepth bounds nested function calls.
	MaxCallDepth int

	// Hook, if set, is called at every loop iteration and function call. A
	// non-nil error aborts evaluation with an Interrupted RuntimeError.
	Hook func() error

	depth int
	file  *token.File

	// joining holds the arrays being joined, to cut cycles.
	joining map[*Object]bool

	objectPrototype   *Object
	functionPrototype *Object
	arrayPrototype    *Object
	stringPrototype   *Object
	numberPrototype   *Object
	booleanPrototype  *Object
	errorPrototypes   map[string]*Object
}

// New returns an interpreter whose global scope holds the builtins.
func New() *Interpreter {
	in := &Interpreter{
		global:       newFunctionScope(nil, undefinedValue),
		MaxCallDepth: DefaultMaxCallDepth,
	}
	in.initBuiltins()
	return in
}

// Run executes p in the global scope and returns the value of its last
// value-producing statement. Globals declared by p persist for later runs.
// The program is not modified.
func (in *Interpreter) Run(p *ast.Program) (Value, error) {
	if p.Declarations == nil {
		if err := resolver.Resolve(p); err != nil {
			return Value{}, err
		}
	}
	prevFile := in.file
	in.file = p.File
	defer func() {
		in.file = prevFile
	}()

	in.declare(p.Declarations, in.global)
	c := in.execList(p.Body, in.global)
	if c.kind == completionThrow {
		return Value{}, c.err
	}
	return c.updateEmpty(undefinedValue).value, nil
}

// Evaluate evaluates a single statement or expression in scope, or in the
// global scope when scope is nil. Positions in errors are resolved against
// the file of the last program run.
func (in *Interpreter) Evaluate(node ast.Node, scope *Scope) (Value, error) {
	if scope == nil {
		scope = in.global
	}
	switch n := node.(type) {
	case *ast.Program:
		return in.Run(n)
	case ast.Stmt:
		c := in.exec(n, scope)
		switch c.kind {
		case completionThrow:
			return Value{}, c.err
		case completionNormal, completionReturn:
			return c.updateEmpty(undefinedValue).value, nil
		}
		return Value{}, NewError(ReferenceError, "Illegal break or continue statement")
	case ast.Expr:
		v, c := in.eval(n, scope)
		if c != nil {
			return Value{}, c.err
		}
		return v, nil
	}
	return Value{}, fmt.Errorf("evaluate: unsupported node %T", node)
}

// Global returns the global scope.
func (in *Interpreter) Global() *Scope {
	return in.global
}

// NewScope returns a block scope nested in parent, or in the global scope
// when parent is nil.
func (in *Interpreter) NewScope(parent *Scope) *Scope {
	if parent == nil {
		parent = in.global
	}
	return newScope(parent)
}

// Set defines or replaces a global binding.
func (in *Interpreter) Set(name string, v Value) {
	in.global.set(name, v)
}

// Get returns an initialized global binding.
func (in *Interpreter) Get(name string) (Value, bool) {
	b, ok := in.global.bindings[name]
	if !ok || !b.initialized {
		return Value{}, false
	}
	return b.value, true
}

// Call invokes fn with the given this and arguments. Script exceptions are
// returned as *RuntimeError.
func (in *Interpreter) Call(fn Value, this Value, args ...Value) (Value, error) {
	v, c := in.call(fn, this, args, 0, nil)
	if c != nil {
		return Value{}, c.err
	}
	return v, nil
}

// declare binds the hoisted names of a scope on entry: vars to undefined
// (keeping existing bindings), let/const uninitialized, function
// declarations to fresh closures.
func (in *Interpreter) declare(decls *ast.Declarations, scope *Scope) {
	if decls == nil {
		return
	}
	for _, name := range decls.Vars {
		scope.declareVar(name)
	}
	for _, b := range decls.Lexical {
		scope.declareLexical(b.Name, b.Const)
	}
	for _, fn := range decls.Functions {
		scope.set(fn.Name.Name, in.newClosure(fn, scope))
	}
}

func hasBlockDeclarations(decls *ast.Declarations) bool {
	return decls != nil && (len(decls.Lexical) > 0 || len(decls.Functions) > 0)
}

func (in *Interpreter) position(idx ast.Idx) token.Position {
	if in.file == nil {
		return token.Position{}
	}
	return in.file.Position(int(idx))
}

// throwError raises a runtime error of the given kind. Scripts catch it as
// an instance of the matching Error constructor.
func (in *Interpreter) throwError(kind ErrorKind, idx ast.Idx, format string, args ...any) *completion {
	msg := fmt.Sprintf(format, args...)
	obj := in.newError(kind.constructorName(), msg)
	obj.errorKind = kind
	return &completion{
		kind:  completionThrow,
		value: ObjectValue(obj),
		err: &RuntimeError{
			Kind:     kind,
			Message:  msg,
			Position: in.position(idx),
			Value:    ObjectValue(obj),
		},
	}
}

// throwValue raises v as a script exception.
func (in *Interpreter) throwValue(v Value, idx ast.Idx) *completion {
	return &completion{
		kind:  completionThrow,
		value: v,
		err: &RuntimeError{
			Kind:     ScriptThrow,
			Message:  describe(v),
			Position: in.position(idx),
			Value:    v,
		},
	}
}

// tick runs the interrupt hook.
func (in *Interpreter) tick(idx ast.Idx) *completion {
	if in.Hook == nil {
		return nil
	}
	if err := in.Hook(); err != nil {
		return &completion{
			kind: completionThrow,
			err: &RuntimeError{
				Kind:     Interrupted,
				Message:  err.Error(),
				Position: in.position(idx),
				cause:    err,
			},
		}
	}
	return nil
}
