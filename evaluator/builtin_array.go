package evaluator

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

func (in *Interpreter) initArray() {
	proto := newObject(classArray, in.objectPrototype)
	in.arrayPrototype = proto

	construct := func(c FunctionCall) (Value, error) {
		if len(c.Arguments) == 1 && c.Arguments[0].IsNumber() {
			n := c.Arguments[0].float64()
			if n < 0 || n != float64(uint32(n)) || n > maxDenseLength {
				return Value{}, NewError(RangeError, "Invalid array length")
			}
			return in.newArray(make([]Value, int(n))), nil
		}
		return in.newArray(slices.Clone(c.Arguments)), nil
	}
	ctor := in.constructor("Array", 1, proto, construct, construct)
	in.method(ctor, "isArray", 1, func(c FunctionCall) (Value, error) {
		return boolValue(c.Argument(0).kind == KindArray), nil
	})

	in.method(proto, "push", 1, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "push")
		if err != nil {
			return Value{}, err
		}
		o.elements = append(o.elements, c.Arguments...)
		return float64Value(float64(len(o.elements))), nil
	})
	in.method(proto, "pop", 0, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "pop")
		if err != nil || len(o.elements) == 0 {
			return undefinedValue, err
		}
		last := o.elements[len(o.elements)-1]
		o.setLength(len(o.elements) - 1)
		return last, nil
	})
	in.method(proto, "shift", 0, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "shift")
		if err != nil || len(o.elements) == 0 {
			return undefinedValue, err
		}
		first := o.elements[0]
		o.elements = slices.Delete(o.elements, 0, 1)
		return first, nil
	})
	in.method(proto, "unshift", 1, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "unshift")
		if err != nil {
			return Value{}, err
		}
		o.elements = slices.Insert(o.elements, 0, c.Arguments...)
		return float64Value(float64(len(o.elements))), nil
	})
	in.method(proto, "slice", 2, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "slice")
		if err != nil {
			return Value{}, err
		}
		start, end, err := c.span(len(o.elements))
		if err != nil {
			return Value{}, err
		}
		return in.newArray(slices.Clone(o.elements[start:end])), nil
	})
	in.method(proto, "splice", 2, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "splice")
		if err != nil {
			return Value{}, err
		}
		n := len(o.elements)
		f, err := c.integer(0, 0)
		if err != nil {
			return Value{}, err
		}
		start := relativeIndex(f, n)
		count := n - start
		switch {
		case len(c.Arguments) == 0:
			count = 0
		case len(c.Arguments) > 1:
			d, err := c.integer(1, 0)
			if err != nil {
				return Value{}, err
			}
			count = int(math.Min(math.Max(d, 0), float64(n-start)))
		}
		removed := slices.Clone(o.elements[start : start+count])
		o.elements = slices.Delete(o.elements, start, start+count)
		if len(c.Arguments) > 2 {
			o.elements = slices.Insert(o.elements, start, c.Arguments[2:]...)
		}
		return in.newArray(removed), nil
	})
	in.method(proto, "concat", 1, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "concat")
		if err != nil {
			return Value{}, err
		}
		out := slices.Clone(o.elements)
		for _, arg := range c.Arguments {
			if arg.kind == KindArray {
				out = append(out, arg.Object().elements...)
			} else {
				out = append(out, arg)
			}
		}
		return in.newArray(out), nil
	})
	join := func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "join")
		if err != nil {
			return Value{}, err
		}
		sep := ","
		if v := c.Argument(0); !v.IsUndefined() {
			if sep, err = c.toString(v); err != nil {
				return Value{}, err
			}
		}
		s, err := in.join(c, o, sep)
		return stringValue(s), err
	}
	in.method(proto, "join", 1, join)
	in.method(proto, "toString", 0, func(c FunctionCall) (Value, error) {
		return join(FunctionCall{This: c.This, Interpreter: c.Interpreter, site: c.site})
	})
	in.method(proto, "reverse", 0, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "reverse")
		if err != nil {
			return Value{}, err
		}
		for i, j := 0, len(o.elements)-1; i < j; i, j = i+1, j-1 {
			o.elements[i], o.elements[j] = o.elements[j], o.elements[i]
		}
		return c.This, nil
	})
	in.method(proto, "indexOf", 1, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "indexOf")
		if err != nil {
			return Value{}, err
		}
		from, err := c.integer(1, 0)
		if err != nil {
			return Value{}, err
		}
		search := c.Argument(0)
		for i := relativeIndex(from, len(o.elements)); i < len(o.elements); i++ {
			if strictEquals(o.elements[i], search) {
				return float64Value(float64(i)), nil
			}
		}
		return float64Value(-1), nil
	})
	in.method(proto, "includes", 1, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "includes")
		if err != nil {
			return Value{}, err
		}
		from, err := c.integer(1, 0)
		if err != nil {
			return Value{}, err
		}
		search := c.Argument(0)
		for i := relativeIndex(from, len(o.elements)); i < len(o.elements); i++ {
			if sameValueZero(o.elements[i], search) {
				return trueValue, nil
			}
		}
		return falseValue, nil
	})
	in.method(proto, "forEach", 1, func(c FunctionCall) (Value, error) {
		err := in.eachElement(c, "forEach", func(int, Value, Value) bool { return true })
		return undefinedValue, err
	})
	in.method(proto, "map", 1, func(c FunctionCall) (Value, error) {
		var out []Value
		err := in.eachElement(c, "map", func(_ int, _ Value, res Value) bool {
			out = append(out, res)
			return true
		})
		if err != nil {
			return Value{}, err
		}
		if out == nil {
			out = []Value{}
		}
		return in.newArray(out), nil
	})
	in.method(proto, "filter", 1, func(c FunctionCall) (Value, error) {
		out := []Value{}
		err := in.eachElement(c, "filter", func(_ int, el Value, res Value) bool {
			if res.bool() {
				out = append(out, el)
			}
			return true
		})
		if err != nil {
			return Value{}, err
		}
		return in.newArray(out), nil
	})
	in.method(proto, "reduce", 1, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "reduce")
		if err != nil {
			return Value{}, err
		}
		fn := c.Argument(0)
		if !fn.IsFunction() {
			return Value{}, NewError(TypeError, "%s is not a function", Inspect(fn))
		}
		i := 0
		acc := c.Argument(1)
		if len(c.Arguments) < 2 {
			if len(o.elements) == 0 {
				return Value{}, NewError(TypeError, "Reduce of empty array with no initial value")
			}
			acc = o.elements[0]
			i = 1
		}
		for ; i < len(o.elements); i++ {
			if acc, err = c.call(fn, undefinedValue, acc, o.elements[i], float64Value(float64(i)), c.This); err != nil {
				return Value{}, err
			}
		}
		return acc, nil
	})
	in.method(proto, "sort", 1, func(c FunctionCall) (Value, error) {
		o, err := thisArray(c, "sort")
		if err != nil {
			return Value{}, err
		}
		cmp := c.Argument(0)
		if !cmp.IsUndefined() && !cmp.IsFunction() {
			return Value{}, NewError(TypeError, "The comparison function must be either a function or undefined")
		}
		err = in.sortElements(c, o.elements, cmp)
		return c.This, err
	})
}

func thisArray(c FunctionCall, name string) (*Object, error) {
	if c.This.kind != KindArray {
		return nil, NewError(TypeError, "Array.prototype.%s called on %s", name, Inspect(c.This))
	}
	return c.This.Object(), nil
}

// span resolves the (start, end) arguments of slice-like methods.
func (c FunctionCall) span(n int) (int, int, error) {
	start, err := c.integer(0, 0)
	if err != nil {
		return 0, 0, err
	}
	end, err := c.integer(1, float64(n))
	if err != nil {
		return 0, 0, err
	}
	s, e := relativeIndex(start, n), relativeIndex(end, n)
	if e < s {
		e = s
	}
	return s, e, nil
}

func sameValueZero(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() && math.IsNaN(a.float64()) && math.IsNaN(b.float64()) {
		return true
	}
	return strictEquals(a, b)
}

// eachElement calls the callback argument for every element present when
// the iteration reaches it, passing (element, index, array), and hands each
// result to yield.
func (in *Interpreter) eachElement(c FunctionCall, name string, yield func(i int, el, res Value) bool) error {
	o, err := thisArray(c, name)
	if err != nil {
		return err
	}
	fn := c.Argument(0)
	if !fn.IsFunction() {
		return NewError(TypeError, "%s is not a function", Inspect(fn))
	}
	thisArg := c.Argument(1)
	n := len(o.elements)
	for i := 0; i < n && i < len(o.elements); i++ {
		el := o.elements[i]
		res, err := c.call(fn, thisArg, el, float64Value(float64(i)), c.This)
		if err != nil {
			return err
		}
		if !yield(i, el, res) {
			break
		}
	}
	return nil
}

// join renders the elements separated by sep. undefined and null render as
// empty strings, as does an array already being joined further up the
// stack.
func (in *Interpreter) join(c FunctionCall, o *Object, sep string) (string, error) {
	if in.joining[o] {
		return "", nil
	}
	if in.joining == nil {
		in.joining = make(map[*Object]bool)
	}
	in.joining[o] = true
	defer delete(in.joining, o)

	var b strings.Builder
	for i, el := range o.elements {
		if i > 0 {
			b.WriteString(sep)
		}
		if el.IsUndefined() || el.IsNull() {
			continue
		}
		s, err := c.toString(el)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// sortElements sorts in place. Without a comparator elements compare by
// their string forms; undefined always sorts last. The first error raised
// by a comparator or conversion stops the sort.
func (in *Interpreter) sortElements(c FunctionCall, elements []Value, cmp Value) error {
	var firstErr error
	less := func(a, b Value) bool {
		if firstErr != nil {
			return false
		}
		switch {
		case a.IsUndefined():
			return false
		case b.IsUndefined():
			return true
		}
		if cmp.IsFunction() {
			res, err := c.call(cmp, undefinedValue, a, b)
			if err != nil {
				firstErr = err
				return false
			}
			f, err := c.toNumber(res)
			if err != nil {
				firstErr = err
				return false
			}
			return f < 0
		}
		as, err := c.toString(a)
		if err != nil {
			firstErr = err
			return false
		}
		bs, err := c.toString(b)
		if err != nil {
			firstErr = err
			return false
		}
		return compareUTF16(as, bs) < 0
	}
	sort.SliceStable(elements, func(i, j int) bool {
		return less(elements[i], elements[j])
	})
	return firstErr
}
