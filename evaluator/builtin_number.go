package evaluator

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

func (in *Interpreter) initNumber() {
	proto := newObject(classNumber, in.objectPrototype)
	zero := float64Value(0)
	proto.primitive = &zero
	in.numberPrototype = proto

	toNumber := func(c FunctionCall) (float64, error) {
		if len(c.Arguments) == 0 {
			return 0, nil
		}
		return c.number(0)
	}
	ctor := in.constructor("Number", 1, proto,
		func(c FunctionCall) (Value, error) {
			f, err := toNumber(c)
			return float64Value(f), err
		},
		func(c FunctionCall) (Value, error) {
			f, err := toNumber(c)
			if err != nil {
				return Value{}, err
			}
			return ObjectValue(in.newPrimitiveObject(classNumber, proto, float64Value(f))), nil
		},
	)
	ctor.setHidden("NaN", NaNValue())
	ctor.setHidden("POSITIVE_INFINITY", positiveInfinityValue())
	ctor.setHidden("NEGATIVE_INFINITY", negativeInfinityValue())
	ctor.setHidden("MAX_VALUE", float64Value(math.MaxFloat64))
	ctor.setHidden("MIN_VALUE", float64Value(math.SmallestNonzeroFloat64))
	ctor.setHidden("MAX_SAFE_INTEGER", float64Value(1<<53-1))
	ctor.setHidden("MIN_SAFE_INTEGER", float64Value(-(1<<53 - 1)))
	ctor.setHidden("EPSILON", float64Value(math.Nextafter(1, 2)-1))
	in.method(ctor, "isInteger", 1, func(c FunctionCall) (Value, error) {
		v := c.Argument(0)
		if !v.IsNumber() {
			return falseValue, nil
		}
		f := v.float64()
		return boolValue(!math.IsInf(f, 0) && f == math.Trunc(f)), nil
	})

	in.method(proto, "valueOf", 0, func(c FunctionCall) (Value, error) {
		f, err := thisNumber(c, "valueOf")
		return float64Value(f), err
	})
	in.method(proto, "toString", 1, func(c FunctionCall) (Value, error) {
		f, err := thisNumber(c, "toString")
		if err != nil {
			return Value{}, err
		}
		radix, err := c.integer(0, 10)
		if err != nil {
			return Value{}, err
		}
		if radix < 2 || radix > 36 {
			return Value{}, NewError(RangeError, "toString() radix must be between 2 and 36")
		}
		if radix == 10 {
			return float64Value(f).stringValue(), nil
		}
		return stringValue(formatRadix(f, int(radix))), nil
	})
	in.method(proto, "toFixed", 1, func(c FunctionCall) (Value, error) {
		f, err := thisNumber(c, "toFixed")
		if err != nil {
			return Value{}, err
		}
		digits, err := c.integer(0, 0)
		if err != nil {
			return Value{}, err
		}
		if digits < 0 || digits > 100 {
			return Value{}, NewError(RangeError, "toFixed() digits argument must be between 0 and 100")
		}
		if math.IsNaN(f) || math.Abs(f) >= 1e21 {
			return float64Value(f).stringValue(), nil
		}
		return stringValue(formatFixed(f, int(digits))), nil
	})
}

func (in *Interpreter) initBoolean() {
	proto := newObject(classBoolean, in.objectPrototype)
	f := falseValue
	proto.primitive = &f
	in.booleanPrototype = proto

	in.constructor("Boolean", 1, proto,
		func(c FunctionCall) (Value, error) {
			return boolValue(c.Argument(0).bool()), nil
		},
		func(c FunctionCall) (Value, error) {
			return ObjectValue(in.newPrimitiveObject(classBoolean, proto, boolValue(c.Argument(0).bool()))), nil
		},
	)
	thisBoolean := func(c FunctionCall, name string) (Value, error) {
		switch {
		case c.This.IsBoolean():
			return c.This, nil
		case c.This.Object() != nil && c.This.Object().class == classBoolean:
			return *c.This.Object().primitive, nil
		}
		return Value{}, NewError(TypeError, "Boolean.prototype.%s requires that 'this' be a Boolean", name)
	}
	in.method(proto, "toString", 0, func(c FunctionCall) (Value, error) {
		b, err := thisBoolean(c, "toString")
		if err != nil {
			return Value{}, err
		}
		return b.stringValue(), nil
	})
	in.method(proto, "valueOf", 0, func(c FunctionCall) (Value, error) {
		return thisBoolean(c, "valueOf")
	})
}

func thisNumber(c FunctionCall, name string) (float64, error) {
	switch {
	case c.This.IsNumber():
		return c.This.float64(), nil
	case c.This.Object() != nil && c.This.Object().class == classNumber:
		return c.This.Object().primitive.float64(), nil
	}
	return 0, NewError(TypeError, "Number.prototype.%s requires that 'this' be a Number", name)
}

// stringValue converts a primitive to a string value.
func (v Value) stringValue() Value {
	return stringValue(v.string())
}

// formatRadix renders f in the given base: the integer part exactly, the
// fraction to at most 52 digits.
func formatRadix(f float64, radix int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	intPart, frac := math.Modf(f)
	var digits string
	if intPart < 1<<63 {
		digits = strconv.FormatUint(uint64(intPart), radix)
	} else {
		i, _ := new(big.Float).SetFloat64(intPart).Int(nil)
		digits = i.Text(radix)
	}
	if frac == 0 {
		return sign + digits
	}
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(digits)
	b.WriteByte('.')
	for n := 0; frac != 0 && n < 52; n++ {
		frac *= float64(radix)
		d, rest := math.Modf(frac)
		b.WriteString(strconv.FormatInt(int64(d), radix))
		frac = rest
	}
	return b.String()
}

// formatFixed renders f with exactly digits fraction digits. Ties round
// away from zero on the exact binary value.
func formatFixed(f float64, digits int) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	// 1074 fraction digits represent every float64 exactly.
	exact := new(big.Float).SetFloat64(f).Text('f', 1074)
	intPart, fracPart, _ := strings.Cut(exact, ".")
	keep := []byte(intPart + fracPart[:digits])
	if fracPart[digits] >= '5' {
		i := len(keep) - 1
		for ; i >= 0; i-- {
			if keep[i] < '9' {
				keep[i]++
				break
			}
			keep[i] = '0'
		}
		if i < 0 {
			keep = append([]byte{'1'}, keep...)
		}
	}
	s := string(keep)
	intDigits := len(s) - digits
	out := s[:intDigits]
	if digits > 0 {
		out += "." + s[intDigits:]
	}
	return sign + out
}

func builtinParseInt(c FunctionCall) (Value, error) {
	s, err := c.string(0)
	if err != nil {
		return Value{}, err
	}
	radix, err := c.integer(1, 0)
	if err != nil {
		return Value{}, err
	}
	s = strings.TrimLeft(s, builtinStringTrimWhitespace)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	base := int(toInt32(float64Value(radix)))
	switch {
	case base == 0:
		base = 10
		if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			base = 16
			s = s[2:]
		}
	case base == 16:
		if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			s = s[2:]
		}
	case base < 2 || base > 36:
		return NaNValue(), nil
	}
	end := 0
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok || d >= base {
			break
		}
		end++
	}
	if end == 0 {
		return NaNValue(), nil
	}
	f := parseBigInteger(s[:end], base)
	if negative {
		f = -f
	}
	return float64Value(f), nil
}

var matchFloatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

func builtinParseFloat(c FunctionCall) (Value, error) {
	s, err := c.string(0)
	if err != nil {
		return Value{}, err
	}
	prefix := matchFloatPrefix.FindString(strings.TrimLeft(s, builtinStringTrimWhitespace))
	if prefix == "" {
		return NaNValue(), nil
	}
	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		if prefix[0] == '-' {
			return negativeInfinityValue(), nil
		}
		return positiveInfinityValue(), nil
	}
	// Out of range values come back as infinity or zero with an error.
	f, _ := strconv.ParseFloat(prefix, 64)
	return float64Value(f), nil
}
