package evaluator

func (in *Interpreter) initError() {
	base := in.defineError("Error", in.objectPrototype)
	in.method(base, "toString", 0, func(c FunctionCall) (Value, error) {
		o := c.This.Object()
		if o == nil {
			return Value{}, NewError(TypeError, "Error.prototype.toString called on non-object")
		}
		name := "Error"
		if v := o.Get("name"); !v.IsUndefined() {
			var err error
			if name, err = c.toString(v); err != nil {
				return Value{}, err
			}
		}
		msg := ""
		if v := o.Get("message"); !v.IsUndefined() {
			var err error
			if msg, err = c.toString(v); err != nil {
				return Value{}, err
			}
		}
		switch {
		case msg == "":
			return stringValue(name), nil
		case name == "":
			return stringValue(msg), nil
		}
		return stringValue(name + ": " + msg), nil
	})
	for _, name := range []string{"TypeError", "ReferenceError", "RangeError"} {
		in.defineError(name, base)
	}
}

// defineError installs an error constructor whose instances inherit from a
// prototype carrying name and an empty message. Calling it without `new`
// also constructs.
func (in *Interpreter) defineError(name string, parent *Object) *Object {
	proto := newObject(classObject, parent)
	proto.setHidden("name", stringValue(name))
	proto.setHidden("message", stringValue(""))
	in.errorPrototypes[name] = proto

	construct := func(c FunctionCall) (Value, error) {
		o := newObject(classError, proto)
		if v := c.Argument(0); !v.IsUndefined() {
			msg, err := c.toString(v)
			if err != nil {
				return Value{}, err
			}
			o.setHidden("message", stringValue(msg))
		}
		return ObjectValue(o), nil
	}
	in.constructor(name, 1, proto, construct, construct)
	return proto
}
