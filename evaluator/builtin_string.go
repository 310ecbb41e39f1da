package evaluator

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func (in *Interpreter) initString() {
	proto := newObject(classString, in.objectPrototype)
	empty := stringValue("")
	proto.primitive = &empty
	in.stringPrototype = proto

	in.constructor("String", 1, proto,
		func(c FunctionCall) (Value, error) {
			if len(c.Arguments) == 0 {
				return empty, nil
			}
			s, err := c.string(0)
			return stringValue(s), err
		},
		func(c FunctionCall) (Value, error) {
			s := ""
			if len(c.Arguments) > 0 {
				var err error
				if s, err = c.string(0); err != nil {
					return Value{}, err
				}
			}
			return ObjectValue(in.newPrimitiveObject(classString, proto, stringValue(s))), nil
		},
	)

	valueOf := func(c FunctionCall) (Value, error) {
		switch {
		case c.This.IsString():
			return c.This, nil
		case c.This.Object() != nil && c.This.Object().class == classString:
			return *c.This.Object().primitive, nil
		}
		return Value{}, NewError(TypeError, "String.prototype.valueOf requires that 'this' be a String")
	}
	in.method(proto, "toString", 0, valueOf)
	in.method(proto, "valueOf", 0, valueOf)

	in.method(proto, "charAt", 1, func(c FunctionCall) (Value, error) {
		units, err := thisUnits(c, "charAt")
		if err != nil {
			return Value{}, err
		}
		i, err := c.integer(0, 0)
		if err != nil || i < 0 || i >= float64(len(units)) {
			return empty, err
		}
		return stringValue(fromUTF16(units[int(i) : int(i)+1])), nil
	})
	in.method(proto, "charCodeAt", 1, func(c FunctionCall) (Value, error) {
		units, err := thisUnits(c, "charCodeAt")
		if err != nil {
			return Value{}, err
		}
		i, err := c.integer(0, 0)
		if err != nil || i < 0 || i >= float64(len(units)) {
			return NaNValue(), err
		}
		return float64Value(float64(units[int(i)])), nil
	})
	in.method(proto, "indexOf", 1, func(c FunctionCall) (Value, error) {
		units, search, err := thisAndSearch(c, "indexOf")
		if err != nil {
			return Value{}, err
		}
		from, err := c.integer(1, 0)
		if err != nil {
			return Value{}, err
		}
		start := int(math.Min(math.Max(from, 0), float64(len(units))))
		return float64Value(float64(indexUnits(units, search, start))), nil
	})
	in.method(proto, "lastIndexOf", 1, func(c FunctionCall) (Value, error) {
		units, search, err := thisAndSearch(c, "lastIndexOf")
		if err != nil {
			return Value{}, err
		}
		from := math.Inf(1)
		if v := c.Argument(1); !v.IsUndefined() {
			f, err := c.toNumber(v)
			if err != nil {
				return Value{}, err
			}
			if !math.IsNaN(f) {
				from = toInteger(f)
			}
		}
		start := int(math.Min(math.Max(from, 0), float64(len(units)-len(search))))
		for i := start; i >= 0; i-- {
			if hasUnitsAt(units, search, i) {
				return float64Value(float64(i)), nil
			}
		}
		return float64Value(-1), nil
	})
	in.method(proto, "slice", 2, func(c FunctionCall) (Value, error) {
		units, err := thisUnits(c, "slice")
		if err != nil {
			return Value{}, err
		}
		start, end, err := c.span(len(units))
		if err != nil {
			return Value{}, err
		}
		return stringValue(fromUTF16(units[start:end])), nil
	})
	in.method(proto, "substring", 2, func(c FunctionCall) (Value, error) {
		units, err := thisUnits(c, "substring")
		if err != nil {
			return Value{}, err
		}
		n := float64(len(units))
		a, err := c.integer(0, 0)
		if err != nil {
			return Value{}, err
		}
		b, err := c.integer(1, n)
		if err != nil {
			return Value{}, err
		}
		start := int(math.Min(math.Max(a, 0), n))
		end := int(math.Min(math.Max(b, 0), n))
		if start > end {
			start, end = end, start
		}
		return stringValue(fromUTF16(units[start:end])), nil
	})
	in.method(proto, "split", 2, func(c FunctionCall) (Value, error) {
		s, err := thisString(c, "split")
		if err != nil {
			return Value{}, err
		}
		limit := -1
		if v := c.Argument(1); !v.IsUndefined() {
			f, err := c.toNumber(v)
			if err != nil {
				return Value{}, err
			}
			limit = int(toUint32(float64Value(f)))
		}
		var parts []string
		switch sep := c.Argument(0); {
		case sep.IsUndefined():
			parts = []string{s}
		default:
			sepStr, err := c.toString(sep)
			if err != nil {
				return Value{}, err
			}
			if sepStr == "" {
				for _, u := range toUTF16(s) {
					parts = append(parts, fromUTF16([]uint16{u}))
				}
			} else {
				parts = strings.Split(s, sepStr)
			}
		}
		if limit >= 0 && len(parts) > limit {
			parts = parts[:limit]
		}
		elements := make([]Value, len(parts))
		for i, p := range parts {
			elements[i] = stringValue(p)
		}
		return in.newArray(elements), nil
	})
	in.method(proto, "trim", 0, func(c FunctionCall) (Value, error) {
		s, err := thisString(c, "trim")
		return stringValue(strings.Trim(s, builtinStringTrimWhitespace)), err
	})
	in.method(proto, "toUpperCase", 0, func(c FunctionCall) (Value, error) {
		s, err := thisString(c, "toUpperCase")
		return stringValue(cases.Upper(language.Und).String(s)), err
	})
	in.method(proto, "toLowerCase", 0, func(c FunctionCall) (Value, error) {
		s, err := thisString(c, "toLowerCase")
		return stringValue(cases.Lower(language.Und).String(s)), err
	})
	in.method(proto, "normalize", 0, func(c FunctionCall) (Value, error) {
		s, err := thisString(c, "normalize")
		if err != nil {
			return Value{}, err
		}
		form := "NFC"
		if v := c.Argument(0); !v.IsUndefined() {
			if form, err = c.toString(v); err != nil {
				return Value{}, err
			}
		}
		switch form {
		case "NFC":
			return stringValue(norm.NFC.String(s)), nil
		case "NFD":
			return stringValue(norm.NFD.String(s)), nil
		case "NFKC":
			return stringValue(norm.NFKC.String(s)), nil
		case "NFKD":
			return stringValue(norm.NFKD.String(s)), nil
		}
		return Value{}, NewError(RangeError, "The normalization form should be one of NFC, NFD, NFKC, NFKD.")
	})
	in.method(proto, "includes", 1, func(c FunctionCall) (Value, error) {
		units, search, err := thisAndSearch(c, "includes")
		if err != nil {
			return Value{}, err
		}
		from, err := c.integer(1, 0)
		if err != nil {
			return Value{}, err
		}
		start := int(math.Min(math.Max(from, 0), float64(len(units))))
		return boolValue(indexUnits(units, search, start) >= 0), nil
	})
	in.method(proto, "startsWith", 1, func(c FunctionCall) (Value, error) {
		units, search, err := thisAndSearch(c, "startsWith")
		if err != nil {
			return Value{}, err
		}
		pos, err := c.integer(1, 0)
		if err != nil {
			return Value{}, err
		}
		start := int(math.Min(math.Max(pos, 0), float64(len(units))))
		return boolValue(hasUnitsAt(units, search, start)), nil
	})
	in.method(proto, "endsWith", 1, func(c FunctionCall) (Value, error) {
		units, search, err := thisAndSearch(c, "endsWith")
		if err != nil {
			return Value{}, err
		}
		pos, err := c.integer(1, float64(len(units)))
		if err != nil {
			return Value{}, err
		}
		end := int(math.Min(math.Max(pos, 0), float64(len(units))))
		return boolValue(hasUnitsAt(units, search, end-len(search))), nil
	})
}

// thisString converts the receiver of a String.prototype method.
func thisString(c FunctionCall, name string) (string, error) {
	if c.This.IsString() {
		return c.This.string(), nil
	}
	if c.This.IsUndefined() || c.This.IsNull() {
		return "", NewError(TypeError, "String.prototype.%s called on null or undefined", name)
	}
	return c.toString(c.This)
}

func thisUnits(c FunctionCall, name string) ([]uint16, error) {
	s, err := thisString(c, name)
	if err != nil {
		return nil, err
	}
	return toUTF16(s), nil
}

func thisAndSearch(c FunctionCall, name string) ([]uint16, []uint16, error) {
	units, err := thisUnits(c, name)
	if err != nil {
		return nil, nil, err
	}
	search, err := c.string(0)
	if err != nil {
		return nil, nil, err
	}
	return units, toUTF16(search), nil
}

func hasUnitsAt(units, search []uint16, i int) bool {
	if i < 0 || i+len(search) > len(units) {
		return false
	}
	for j, u := range search {
		if units[i+j] != u {
			return false
		}
	}
	return true
}

func indexUnits(units, search []uint16, start int) int {
	for i := start; i+len(search) <= len(units); i++ {
		if hasUnitsAt(units, search, i) {
			return i
		}
	}
	return -1
}
