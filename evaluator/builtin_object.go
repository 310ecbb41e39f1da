package evaluator

func (in *Interpreter) initObject() {
	proto := in.objectPrototype
	in.method(proto, "hasOwnProperty", 1, func(c FunctionCall) (Value, error) {
		key, err := c.toPropertyKey(c.Argument(0))
		if err != nil {
			return Value{}, err
		}
		o, err := c.toObject(c.This)
		if err != nil {
			return Value{}, err
		}
		return boolValue(o.HasOwn(key)), nil
	})
	in.method(proto, "toString", 0, func(c FunctionCall) (Value, error) {
		switch c.This.kind {
		case KindUndefined:
			return stringValue("[object Undefined]"), nil
		case KindNull:
			return stringValue("[object Null]"), nil
		}
		o, err := c.toObject(c.This)
		if err != nil {
			return Value{}, err
		}
		return stringValue("[object " + o.class + "]"), nil
	})
	in.method(proto, "valueOf", 0, func(c FunctionCall) (Value, error) {
		o, err := c.toObject(c.This)
		if err != nil {
			return Value{}, err
		}
		return ObjectValue(o), nil
	})

	construct := func(c FunctionCall) (Value, error) {
		v := c.Argument(0)
		if v.IsUndefined() || v.IsNull() {
			return ObjectValue(newObject(classObject, in.objectPrototype)), nil
		}
		o, err := c.toObject(v)
		return ObjectValue(o), err
	}
	ctor := in.constructor("Object", 1, proto, construct, construct)

	in.method(ctor, "create", 2, func(c FunctionCall) (Value, error) {
		p := c.Argument(0)
		switch {
		case p.IsNull():
			return ObjectValue(newObject(classObject, nil)), nil
		case p.IsObject():
			return ObjectValue(newObject(classObject, p.Object())), nil
		}
		return Value{}, NewError(TypeError, "Object prototype may only be an Object or null: %s", Inspect(p))
	})
	in.method(ctor, "keys", 1, func(c FunctionCall) (Value, error) {
		o, err := c.toObject(c.Argument(0))
		if err != nil {
			return Value{}, err
		}
		keys := o.Keys()
		elements := make([]Value, len(keys))
		for i, k := range keys {
			elements[i] = stringValue(k)
		}
		return in.newArray(elements), nil
	})
	in.method(ctor, "getPrototypeOf", 1, func(c FunctionCall) (Value, error) {
		o, err := c.toObject(c.Argument(0))
		if err != nil {
			return Value{}, err
		}
		return ObjectValue(o.proto), nil
	})
	in.method(ctor, "assign", 2, func(c FunctionCall) (Value, error) {
		target, err := c.toObject(c.Argument(0))
		if err != nil {
			return Value{}, err
		}
		for _, src := range c.Arguments[1:] {
			o := src.Object()
			if o == nil {
				continue
			}
			for _, k := range o.Keys() {
				v, _ := o.GetOwn(k)
				if cmp := in.setMember(ObjectValue(target), k, v, c.site); cmp != nil {
					return Value{}, cmp.err
				}
			}
		}
		return ObjectValue(target), nil
	})
}

func (in *Interpreter) initFunction() {
	proto := in.functionPrototype
	in.method(proto, "call", 1, func(c FunctionCall) (Value, error) {
		if !c.This.IsFunction() {
			return Value{}, NewError(TypeError, "Function.prototype.call called on %s", Inspect(c.This))
		}
		var args []Value
		if len(c.Arguments) > 1 {
			args = c.Arguments[1:]
		}
		return c.call(c.This, c.Argument(0), args...)
	})
	in.method(proto, "apply", 2, func(c FunctionCall) (Value, error) {
		if !c.This.IsFunction() {
			return Value{}, NewError(TypeError, "Function.prototype.apply called on %s", Inspect(c.This))
		}
		args, err := c.arrayLike(c.Argument(1))
		if err != nil {
			return Value{}, err
		}
		return c.call(c.This, c.Argument(0), args...)
	})
	in.method(proto, "toString", 0, func(c FunctionCall) (Value, error) {
		o := c.This.Object()
		if o == nil || o.fn == nil {
			return Value{}, NewError(TypeError, "Function.prototype.toString requires that 'this' be a Function")
		}
		return stringValue(o.fn.source()), nil
	})

	notSupported := func(FunctionCall) (Value, error) {
		return Value{}, NewError(TypeError, "Function constructor is not supported")
	}
	in.constructor("Function", 1, proto, notSupported, notSupported)
}

// arrayLike lists the elements of an array, an arguments object or any
// object with a length. undefined and null give no elements.
func (c FunctionCall) arrayLike(v Value) ([]Value, error) {
	if v.IsUndefined() || v.IsNull() {
		return nil, nil
	}
	o := v.Object()
	if o == nil {
		return nil, NewError(TypeError, "CreateListFromArrayLike called on non-object")
	}
	if o.class == classArray {
		return o.elements, nil
	}
	n, err := c.toNumber(o.Get("length"))
	if err != nil {
		return nil, err
	}
	length := int(toUint32(float64Value(n)))
	out := make([]Value, length)
	for i := range out {
		out[i] = o.Get(float64Value(float64(i)).string())
	}
	return out, nil
}
