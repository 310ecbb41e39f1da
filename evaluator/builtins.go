package evaluator

import (
	"math"
)

// builtinInitializers run in order: the Object and Function prototypes must
// exist before any native function is created.
var builtinInitializers = []func(*Interpreter){
	(*Interpreter).initObject,
	(*Interpreter).initFunction,
	(*Interpreter).initArray,
	(*Interpreter).initString,
	(*Interpreter).initNumber,
	(*Interpreter).initBoolean,
	(*Interpreter).initError,
	(*Interpreter).initMath,
	(*Interpreter).initGlobals,
}

func (in *Interpreter) initBuiltins() {
	in.objectPrototype = newObject(classObject, nil)
	in.functionPrototype = newObject(classFunction, in.objectPrototype)
	in.errorPrototypes = make(map[string]*Object)
	for _, initialize := range builtinInitializers {
		initialize(in)
	}
}

// method defines a non-enumerable native method on o.
func (in *Interpreter) method(o *Object, name string, length int, fn NativeFunction) {
	o.setHidden(name, ObjectValue(in.newNative(name, length, fn)))
}

// constructor defines a global constructor whose plain call runs call and
// whose `new` runs construct, linked both ways with proto.
func (in *Interpreter) constructor(name string, length int, proto *Object, call, construct NativeFunction) *Object {
	ctor := in.newFunctionObject(&function{name: name, native: call, construct: construct}, length)
	ctor.setHidden("prototype", ObjectValue(proto))
	proto.setHidden("constructor", ObjectValue(ctor))
	in.global.set(name, ObjectValue(ctor))
	return ctor
}

func (in *Interpreter) initGlobals() {
	in.global.set("NaN", NaNValue())
	in.global.set("Infinity", positiveInfinityValue())
	in.global.set("isNaN", in.NewNative("isNaN", func(c FunctionCall) (Value, error) {
		f, err := c.number(0)
		return boolValue(math.IsNaN(f)), err
	}))
	in.global.set("isFinite", in.NewNative("isFinite", func(c FunctionCall) (Value, error) {
		f, err := c.number(0)
		return boolValue(!math.IsNaN(f) && !math.IsInf(f, 0)), err
	}))
	in.global.set("parseInt", ObjectValue(in.newNative("parseInt", 2, builtinParseInt)))
	in.global.set("parseFloat", ObjectValue(in.newNative("parseFloat", 1, builtinParseFloat)))
}

// Helpers shared by the native implementations. Conversions may run script
// code, so they return errors.

func (c FunctionCall) call(fn Value, this Value, args ...Value) (Value, error) {
	v, cmp := c.Interpreter.call(fn, this, args, c.site, nil)
	if cmp != nil {
		return Value{}, cmp.err
	}
	return v, nil
}

func (c FunctionCall) toString(v Value) (string, error) {
	s, cmp := c.Interpreter.toString(v, c.site)
	if cmp != nil {
		return "", cmp.err
	}
	return s, nil
}

func (c FunctionCall) toNumber(v Value) (float64, error) {
	f, cmp := c.Interpreter.toNumber(v, c.site)
	if cmp != nil {
		return 0, cmp.err
	}
	return f, nil
}

func (c FunctionCall) toObject(v Value) (*Object, error) {
	o, cmp := c.Interpreter.toObject(v, c.site)
	if cmp != nil {
		return nil, cmp.err
	}
	return o, nil
}

func (c FunctionCall) toPropertyKey(v Value) (string, error) {
	k, cmp := c.Interpreter.toPropertyKey(v, c.site)
	if cmp != nil {
		return "", cmp.err
	}
	return k, nil
}

func (c FunctionCall) string(i int) (string, error) {
	return c.toString(c.Argument(i))
}

func (c FunctionCall) number(i int) (float64, error) {
	return c.toNumber(c.Argument(i))
}

// integer converts argument i with ToIntegerOrInfinity; undefined gives def.
func (c FunctionCall) integer(i int, def float64) (float64, error) {
	v := c.Argument(i)
	if v.IsUndefined() {
		return def, nil
	}
	f, err := c.toNumber(v)
	return toInteger(f), err
}

// relativeIndex resolves a possibly negative index against length n and
// clamps it to [0, n].
func relativeIndex(f float64, n int) int {
	if f < 0 {
		f += float64(n)
		if f < 0 {
			return 0
		}
		return int(f)
	}
	if f > float64(n) {
		return n
	}
	return int(f)
}
