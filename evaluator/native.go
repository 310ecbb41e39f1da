package evaluator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/t14raptor/fastscript/ast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NativeFunction is a host function callable from scripts. Returning an
// error throws in the calling script: Throw(v) throws v, a *RuntimeError
// keeps its kind and any other error throws an Error object carrying its
// message.
type NativeFunction func(FunctionCall) (Value, error)

// FunctionCall is the invocation of a NativeFunction.
type FunctionCall struct {
	This        Value
	Arguments   []Value
	Interpreter *Interpreter

	site ast.Idx
}

// Argument returns the i-th argument, or undefined past the end.
func (c FunctionCall) Argument(i int) Value {
	if i < len(c.Arguments) {
		return c.Arguments[i]
	}
	return undefinedValue
}

// NewNative wraps fn as a function value.
func (in *Interpreter) NewNative(name string, fn NativeFunction) Value {
	return ObjectValue(in.newNative(name, 0, fn))
}

// NewObject returns an empty object inheriting from Object.prototype.
func (in *Interpreter) NewObject() *Object {
	return newObject(classObject, in.objectPrototype)
}

func (in *Interpreter) newNative(name string, length int, fn NativeFunction) *Object {
	return in.newFunctionObject(&function{name: name, native: fn}, length)
}

// ToValue converts a Go value. nil becomes null; slices and arrays become
// script arrays, maps with string keys become objects.
func (in *Interpreter) ToValue(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return nullValue, nil
	case Value:
		return x, nil
	case *Object:
		if x == nil {
			return nullValue, nil
		}
		return ObjectValue(x), nil
	case bool:
		return boolValue(x), nil
	case string:
		return stringValue(x), nil
	case int:
		return float64Value(float64(x)), nil
	case int8:
		return float64Value(float64(x)), nil
	case int16:
		return float64Value(float64(x)), nil
	case int32:
		return float64Value(float64(x)), nil
	case int64:
		return float64Value(float64(x)), nil
	case uint:
		return float64Value(float64(x)), nil
	case uint8:
		return float64Value(float64(x)), nil
	case uint16:
		return float64Value(float64(x)), nil
	case uint32:
		return float64Value(float64(x)), nil
	case uint64:
		return float64Value(float64(x)), nil
	case float32:
		return float64Value(float64(x)), nil
	case float64:
		return float64Value(x), nil
	case NativeFunction:
		return in.NewNative("", x), nil
	case func(FunctionCall) (Value, error):
		return in.NewNative("", x), nil
	case []any:
		elements := make([]Value, len(x))
		for i, e := range x {
			v, err := in.ToValue(e)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			elements[i] = v
		}
		return in.newArray(elements), nil
	case map[string]any:
		obj := newObject(classObject, in.objectPrototype)
		for _, k := range sortedKeys(x) {
			v, err := in.ToValue(x[k])
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			obj.Set(k, v)
		}
		return ObjectValue(obj), nil
	}
	return in.reflectValue(reflect.ValueOf(x))
}

func (in *Interpreter) reflectValue(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nullValue, nil
		}
		return in.ToValue(rv.Elem().Interface())
	case reflect.Bool:
		return boolValue(rv.Bool()), nil
	case reflect.String:
		return stringValue(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64Value(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64Value(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return float64Value(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nullValue, nil
		}
		elements := make([]Value, rv.Len())
		for i := range elements {
			v, err := in.ToValue(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			elements[i] = v
		}
		return in.newArray(elements), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return in.ToValue(m)
	}
	return Value{}, fmt.Errorf("cannot convert %s to a script value", rv.Type())
}

// Export converts the value to a Go value: undefined and null become nil,
// arrays []any, objects map[string]any of their enumerable own properties.
// Functions and cyclic references are returned as the Value itself.
func (v Value) Export() any {
	return v.export(make(map[*Object]bool))
}

func (v Value) export(seen map[*Object]bool) any {
	switch v.kind {
	case KindUndefined, KindNull:
		return nil
	case KindBoolean, KindNumber, KindString:
		return v.value
	case KindFunction:
		return v
	}
	o := v.Object()
	if seen[o] {
		return v
	}
	seen[o] = true
	defer delete(seen, o)

	if o.class == classArray {
		out := make([]any, len(o.elements))
		for i, e := range o.elements {
			out[i] = e.export(seen)
		}
		return out
	}
	if o.primitive != nil {
		return o.primitive.value
	}
	out := make(map[string]any)
	for _, k := range o.Keys() {
		val, _ := o.GetOwn(k)
		out[k] = val.export(seen)
	}
	return out
}

// fromNativeError turns the error returned by a native function into a
// throw completion.
func (in *Interpreter) fromNativeError(err error, idx ast.Idx) *completion {
	var re *RuntimeError
	if !errors.As(err, &re) {
		obj := in.newError("Error", err.Error())
		return &completion{
			kind:  completionThrow,
			value: ObjectValue(obj),
			err: &RuntimeError{
				Kind:     ScriptThrow,
				Message:  describe(ObjectValue(obj)),
				Position: in.position(idx),
				Value:    ObjectValue(obj),
				cause:    err,
			},
		}
	}

	switch {
	case re.Kind == ScriptThrow:
		c := in.throwValue(re.Value, idx)
		c.err.cause = re.cause
		return c
	case re.Kind == Interrupted || re.Value.IsObject():
		// Already raised by the runtime, for example by a nested Call.
		if !re.Position.IsValid() {
			dup := *re
			dup.Position = in.position(idx)
			re = &dup
		}
		return &completion{kind: completionThrow, value: re.Value, err: re}
	}
	c := in.throwError(re.Kind, idx, "%s", re.Message)
	c.err.cause = re.cause
	return c
}

func sortedKeys(m map[string]any) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
