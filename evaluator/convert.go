package evaluator

import (
	"github.com/t14raptor/fastscript/ast"
)

type hint int

const (
	hintDefault hint = iota
	hintNumber
	hintString
)

// toPrimitive converts an object by calling its valueOf and toString
// methods, in that order unless the hint is string.
func (in *Interpreter) toPrimitive(v Value, h hint, idx ast.Idx) (Value, *completion) {
	if !v.IsObject() {
		return v, nil
	}
	methods := [2]string{"valueOf", "toString"}
	if h == hintString {
		methods = [2]string{"toString", "valueOf"}
	}
	for _, name := range methods {
		fn := v.Object().Get(name)
		if !fn.IsFunction() {
			continue
		}
		res, c := in.call(fn, v, nil, idx, nil)
		if c != nil {
			return Value{}, c
		}
		if !res.IsObject() {
			return res, nil
		}
	}
	return Value{}, in.throwError(TypeError, idx, "Cannot convert object to primitive value")
}

func (in *Interpreter) toNumber(v Value, idx ast.Idx) (float64, *completion) {
	v, c := in.toPrimitive(v, hintNumber, idx)
	if c != nil {
		return 0, c
	}
	return v.float64(), nil
}

func (in *Interpreter) toString(v Value, idx ast.Idx) (string, *completion) {
	v, c := in.toPrimitive(v, hintString, idx)
	if c != nil {
		return "", c
	}
	return v.string(), nil
}

func (in *Interpreter) toPropertyKey(v Value, idx ast.Idx) (string, *completion) {
	if v.IsString() {
		return v.value.(string), nil
	}
	return in.toString(v, idx)
}

// getMember reads a property. Strings, numbers and booleans delegate to
// their prototypes; reading from undefined or null is a TypeError.
func (in *Interpreter) getMember(v Value, key string, idx ast.Idx) (Value, *completion) {
	switch v.kind {
	case KindUndefined, KindNull:
		return Value{}, in.throwError(TypeError, idx, "Cannot read properties of %s (reading '%s')", v.string(), key)
	case KindString:
		s := v.value.(string)
		if key == "length" {
			return float64Value(float64(utf16Length(s))), nil
		}
		if i, ok := arrayIndex(key); ok {
			if ch, ok := charAt(s, i); ok {
				return stringValue(ch), nil
			}
			return undefinedValue, nil
		}
		return in.stringPrototype.Get(key), nil
	case KindNumber:
		return in.numberPrototype.Get(key), nil
	case KindBoolean:
		return in.booleanPrototype.Get(key), nil
	}
	return v.Object().Get(key), nil
}

// setMember writes an own property. Writes to primitives are ignored;
// writing to undefined or null is a TypeError.
func (in *Interpreter) setMember(v Value, key string, value Value, idx ast.Idx) *completion {
	switch v.kind {
	case KindUndefined, KindNull:
		return in.throwError(TypeError, idx, "Cannot set properties of %s (setting '%s')", v.string(), key)
	case KindBoolean, KindNumber, KindString:
		return nil
	}
	o := v.Object()
	if o.class == classArray && key == "length" {
		n, c := in.toNumber(value, idx)
		if c != nil {
			return c
		}
		if n < 0 || n != float64(uint32(n)) || n > maxDenseLength {
			return in.throwError(RangeError, idx, "Invalid array length")
		}
		o.setLength(int(n))
		return nil
	}
	if i, ok := arrayIndex(key); ok && o.class == classArray && i >= maxDenseLength {
		return in.throwError(RangeError, idx, "Invalid array length")
	}
	o.Set(key, value)
	return nil
}

// toObject returns the object for v, wrapping primitives. It fails for
// undefined and null.
func (in *Interpreter) toObject(v Value, idx ast.Idx) (*Object, *completion) {
	switch v.kind {
	case KindUndefined, KindNull:
		return nil, in.throwError(TypeError, idx, "Cannot convert undefined or null to object")
	case KindBoolean:
		return in.newPrimitiveObject(classBoolean, in.booleanPrototype, v), nil
	case KindNumber:
		return in.newPrimitiveObject(classNumber, in.numberPrototype, v), nil
	case KindString:
		return in.newPrimitiveObject(classString, in.stringPrototype, v), nil
	}
	return v.Object(), nil
}

func (in *Interpreter) newPrimitiveObject(class string, proto *Object, v Value) *Object {
	o := newObject(class, proto)
	o.primitive = &v
	if class == classString {
		o.setHidden("length", float64Value(float64(utf16Length(v.string()))))
	}
	return o
}

// charAt returns the code unit at UTF-16 index i as a string.
func charAt(s string, i int) (string, bool) {
	if isASCII(s) {
		if i < len(s) {
			return s[i : i+1], true
		}
		return "", false
	}
	units := toUTF16(s)
	if i < len(units) {
		return fromUTF16(units[i : i+1]), true
	}
	return "", false
}
