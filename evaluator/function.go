package evaluator

import (
	"strconv"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/generator"
	"github.com/t14raptor/fastscript/token"
)

type function struct {
	name string

	// Script functions.
	lit   *ast.FunctionLiteral
	scope *Scope
	file  *token.File

	// Native functions. construct, if set, handles `new`; natives without
	// it are not constructors.
	native    NativeFunction
	construct NativeFunction
}

func (f *function) source() string {
	if f.native != nil {
		return "function " + f.name + "() { [native code] }"
	}
	if f.lit.Source != "" {
		return f.lit.Source
	}
	return generator.Generate(f.lit)
}

func (in *Interpreter) newFunctionObject(f *function, length int) *Object {
	o := newObject(classFunction, in.functionPrototype)
	o.fn = f
	o.setHidden("name", stringValue(f.name))
	o.setHidden("length", float64Value(float64(length)))
	return o
}

// newClosure creates a script function capturing scope. Every closure gets
// its own prototype object for use with `new`.
func (in *Interpreter) newClosure(lit *ast.FunctionLiteral, scope *Scope) Value {
	f := &function{lit: lit, scope: scope, file: in.file}
	if lit.Name != nil {
		f.name = lit.Name.Name
	}
	o := in.newFunctionObject(f, len(lit.ParameterList.List))
	proto := newObject(classObject, in.objectPrototype)
	proto.setHidden("constructor", ObjectValue(o))
	o.setHidden("prototype", ObjectValue(proto))
	return ObjectValue(o)
}

// newFunctionExpression evaluates a function expression. A named function
// expression sees its own name in an intermediate scope.
func (in *Interpreter) newFunctionExpression(lit *ast.FunctionLiteral, scope *Scope) Value {
	if lit.Name == nil {
		return in.newClosure(lit, scope)
	}
	own := newScope(scope)
	fn := in.newClosure(lit, own)
	own.bindings[lit.Name.Name] = &binding{value: fn, initialized: true, constant: true}
	return fn
}

// nameAnonymous names an anonymous function after the binding or property
// it is first assigned to.
func (in *Interpreter) nameAnonymous(v Value, name string) {
	o := v.Object()
	if o == nil || o.fn == nil || o.fn.native != nil || o.fn.name != "" {
		return
	}
	o.fn.name = name
	o.setHidden("name", stringValue(name))
}

// enter checks the call depth and runs the interrupt hook before a call.
func (in *Interpreter) enter(idx ast.Idx) *completion {
	if in.MaxCallDepth > 0 && in.depth >= in.MaxCallDepth {
		return in.throwError(RangeError, idx, "Maximum call stack size exceeded")
	}
	if c := in.tick(idx); c != nil {
		return c
	}
	in.depth++
	return nil
}

// call invokes fn. callee is the expression that produced fn, used in the
// error message when fn is not callable.
func (in *Interpreter) call(fn Value, this Value, args []Value, idx ast.Idx, callee ast.Expr) (Value, *completion) {
	o := fn.Object()
	if o == nil || o.fn == nil {
		return Value{}, in.throwError(TypeError, idx, "%s is not a function", calleeText(callee, fn))
	}
	if c := in.enter(idx); c != nil {
		return Value{}, c
	}
	defer func() {
		in.depth--
	}()

	if o.fn.native != nil {
		return in.callNative(o.fn.native, this, args, idx)
	}
	return in.callClosure(o.fn, this, args)
}

func (in *Interpreter) callNative(fn NativeFunction, this Value, args []Value, idx ast.Idx) (Value, *completion) {
	v, err := fn(FunctionCall{This: this, Arguments: args, Interpreter: in, site: idx})
	if err != nil {
		return Value{}, in.fromNativeError(err, idx)
	}
	return v, nil
}

func (in *Interpreter) callClosure(f *function, this Value, args []Value) (Value, *completion) {
	prevFile := in.file
	in.file = f.file
	defer func() {
		in.file = prevFile
	}()

	lit := f.lit
	scope := newFunctionScope(f.scope, this)
	for i, param := range lit.ParameterList.List {
		v := undefinedValue
		if i < len(args) {
			v = args[i]
		}
		scope.set(param.Name, v)
	}
	if _, ok := scope.bindings["arguments"]; !ok {
		scope.set("arguments", ObjectValue(in.newArguments(args)))
	}
	in.declare(lit.Declarations, scope)

	c := in.execList(lit.Body.List, scope)
	switch c.kind {
	case completionReturn:
		return c.value, nil
	case completionThrow:
		return Value{}, &c
	}
	return undefinedValue, nil
}

// construct implements `new`: a fresh object linked to the constructor's
// prototype is passed as this, and is the result unless the constructor
// returns an object.
func (in *Interpreter) construct(fn Value, args []Value, idx ast.Idx, callee ast.Expr) (Value, *completion) {
	o := fn.Object()
	if o == nil || o.fn == nil || (o.fn.native != nil && o.fn.construct == nil) {
		return Value{}, in.throwError(TypeError, idx, "%s is not a constructor", calleeText(callee, fn))
	}
	if o.fn.construct != nil {
		if c := in.enter(idx); c != nil {
			return Value{}, c
		}
		defer func() {
			in.depth--
		}()
		return in.callNative(o.fn.construct, undefinedValue, args, idx)
	}

	proto := in.objectPrototype
	if p := o.Get("prototype"); p.IsObject() {
		proto = p.Object()
	}
	obj := ObjectValue(newObject(classObject, proto))
	res, c := in.call(fn, obj, args, idx, callee)
	if c != nil {
		return Value{}, c
	}
	if res.IsObject() {
		return res, nil
	}
	return obj, nil
}

// newArguments builds the array-like arguments object of a call.
func (in *Interpreter) newArguments(args []Value) *Object {
	o := newObject(classArguments, in.objectPrototype)
	for i, a := range args {
		o.Set(strconv.Itoa(i), a)
	}
	o.setHidden("length", float64Value(float64(len(args))))
	return o
}

func (in *Interpreter) newArray(elements []Value) Value {
	o := newObject(classArray, in.arrayPrototype)
	o.elements = elements
	return ObjectValue(o)
}

func (in *Interpreter) newError(name, message string) *Object {
	proto, ok := in.errorPrototypes[name]
	if !ok {
		proto = in.errorPrototypes["Error"]
	}
	o := newObject(classError, proto)
	o.setHidden("message", stringValue(message))
	return o
}
