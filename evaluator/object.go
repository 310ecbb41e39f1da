package evaluator

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	classObject    = "Object"
	classArray     = "Array"
	classFunction  = "Function"
	classError     = "Error"
	classArguments = "Arguments"
	classString    = "String"
	classNumber    = "Number"
	classBoolean   = "Boolean"
	classMath      = "Math"
)

type property struct {
	value Value
	// hidden properties are skipped by for-in and Object.keys.
	hidden bool
}

// Object is the payload shared by object, array and function values: an
// ordered property bag with an optional prototype link plus per-class
// internal slots.
type Object struct {
	class string
	proto *Object

	keys  []string
	props map[string]property

	// elements is the dense storage of an Array.
	elements []Value

	// fn is set for callable objects.
	fn *function

	// primitive is the wrapped value of a String, Number or Boolean object.
	primitive *Value

	// errorKind is set on error objects created by the runtime.
	errorKind ErrorKind
}

func newObject(class string, proto *Object) *Object {
	return &Object{
		class: class,
		proto: proto,
		props: make(map[string]property),
	}
}

// Class returns the internal class name ("Object", "Array", "Function",
// "Error", ...).
func (o *Object) Class() string { return o.class }

// Prototype returns the prototype link, or nil.
func (o *Object) Prototype() *Object { return o.proto }

// Len returns the element count of an Array, or 0.
func (o *Object) Len() int { return len(o.elements) }

// GetOwn returns an own property.
func (o *Object) GetOwn(key string) (Value, bool) {
	if o.class == classArray {
		if key == "length" {
			return float64Value(float64(len(o.elements))), true
		}
		if i, ok := arrayIndex(key); ok {
			if i < len(o.elements) {
				return o.elements[i], true
			}
			return Value{}, false
		}
	}
	p, ok := o.props[key]
	return p.value, ok
}

// Get reads key from the object or its prototype chain. Missing keys read as
// undefined.
func (o *Object) Get(key string) Value {
	for obj := o; obj != nil; obj = obj.proto {
		if v, ok := obj.GetOwn(key); ok {
			return v
		}
	}
	return undefinedValue
}

// HasOwn reports whether key is an own property.
func (o *Object) HasOwn(key string) bool {
	_, ok := o.GetOwn(key)
	return ok
}

// Has reports whether key is found on the object or its prototype chain.
func (o *Object) Has(key string) bool {
	for obj := o; obj != nil; obj = obj.proto {
		if obj.HasOwn(key) {
			return true
		}
	}
	return false
}

// Set creates or updates an own property. The prototype is never written.
// Array writes past the element limit are dropped.
func (o *Object) Set(key string, value Value) {
	if o.class == classArray {
		if key == "length" {
			o.setLength(int(toUint32(value)))
			return
		}
		if i, ok := arrayIndex(key); ok {
			o.setIndex(i, value)
			return
		}
	}
	if p, ok := o.props[key]; ok {
		p.value = value
		o.props[key] = p
		return
	}
	o.keys = append(o.keys, key)
	o.props[key] = property{value: value}
}

// setHidden defines a property that is not enumerated.
func (o *Object) setHidden(key string, value Value) {
	if _, ok := o.props[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.props[key] = property{value: value, hidden: true}
}

// Delete removes an own property and reports whether the object no longer
// has it.
func (o *Object) Delete(key string) bool {
	if o.class == classArray {
		if key == "length" {
			return false
		}
		if i, ok := arrayIndex(key); ok {
			if i < len(o.elements) {
				o.elements[i] = undefinedValue
			}
			return true
		}
	}
	if _, ok := o.props[key]; !ok {
		return true
	}
	delete(o.props, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

// Keys returns the own enumerable keys: array indices first, then the other
// properties in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.elements)+len(o.keys))
	for i := range o.elements {
		keys = append(keys, strconv.Itoa(i))
	}
	for _, k := range o.keys {
		if !o.props[k].hidden {
			keys = append(keys, k)
		}
	}
	return keys
}

// maxDenseLength bounds the element storage of an Array. Scripts writing an
// index or length past it get a RangeError.
const maxDenseLength = 1 << 24

func (o *Object) setIndex(i int, value Value) {
	if i >= maxDenseLength {
		return
	}
	if i >= len(o.elements) {
		o.setLength(i + 1)
	}
	o.elements[i] = value
}

func (o *Object) setLength(n int) {
	if n > maxDenseLength {
		return
	}
	if n <= len(o.elements) {
		clear(o.elements[n:])
		o.elements = o.elements[:n]
		return
	}
	o.elements = slices.Grow(o.elements, n-len(o.elements))
	for len(o.elements) < n {
		o.elements = append(o.elements, undefinedValue)
	}
}

// isPrototypeOf walks v's chain looking for o.
func (o *Object) isPrototypeOf(v *Object) bool {
	for p := v.proto; p != nil; p = p.proto {
		if p == o {
			return true
		}
	}
	return false
}

// display is the script-free string form used by Value.String.
func (o *Object) display(depth int) string {
	switch {
	case o.class == classArray:
		if depth > 3 {
			return ""
		}
		parts := make([]string, len(o.elements))
		for i, e := range o.elements {
			if e.IsUndefined() || e.IsNull() {
				continue
			}
			if e.IsObject() {
				parts[i] = e.Object().display(depth + 1)
			} else {
				parts[i] = e.string()
			}
		}
		return strings.Join(parts, ",")
	case o.fn != nil:
		return o.fn.source()
	case o.primitive != nil:
		return o.primitive.string()
	case o.class == classError:
		name := o.Get("name").string()
		msg := o.Get("message")
		if msg.IsUndefined() || msg.string() == "" {
			return name
		}
		return name + ": " + msg.string()
	}
	return "[object " + o.class + "]"
}
