package evaluator

import (
	"math"
	"strings"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

func evaluateDivide(left float64, right float64) Value {
	if math.IsNaN(left) || math.IsNaN(right) {
		return NaNValue()
	}
	if math.IsInf(left, 0) && math.IsInf(right, 0) {
		return NaNValue()
	}
	if left == 0 && right == 0 {
		return NaNValue()
	}
	if math.IsInf(left, 0) {
		if math.Signbit(left) == math.Signbit(right) {
			return positiveInfinityValue()
		}
		return negativeInfinityValue()
	}
	if math.IsInf(right, 0) {
		if math.Signbit(left) == math.Signbit(right) {
			return positiveZeroValue()
		}
		return negativeZeroValue()
	}
	if right == 0 {
		if math.Signbit(left) == math.Signbit(right) {
			return positiveInfinityValue()
		}
		return negativeInfinityValue()
	}
	return float64Value(left / right)
}

// ApplyBinary applies a binary operator to primitive operands. It reports
// false for `in` and `instanceof`, which need objects, and when an operand
// is an object.
func ApplyBinary(operator token.Token, left Value, right Value) (Value, bool) {
	if left.IsObject() || right.IsObject() {
		return Value{}, false
	}
	switch operator {
	// Additive
	case token.Plus:
		if left.IsString() || right.IsString() {
			return stringValue(left.string() + right.string()), true
		}
		return float64Value(left.float64() + right.float64()), true
	case token.Minus:
		return float64Value(left.float64() - right.float64()), true

	// Multiplicative
	case token.Multiply:
		return float64Value(left.float64() * right.float64()), true
	case token.Slash:
		return evaluateDivide(left.float64(), right.float64()), true
	case token.Remainder:
		return float64Value(math.Mod(left.float64(), right.float64())), true

	// Logical
	case token.LogicalAnd:
		if !left.bool() {
			return left, true
		}
		return right, true
	case token.LogicalOr:
		if left.bool() {
			return left, true
		}
		return right, true

	// Bitwise
	case token.And:
		return int32Value(toInt32(left) & toInt32(right)), true
	case token.Or:
		return int32Value(toInt32(left) | toInt32(right)), true
	case token.ExclusiveOr:
		return int32Value(toInt32(left) ^ toInt32(right)), true

	// Shift
	// (Masking of 0x1f is to restrict the shift to a maximum of 31 places)
	case token.ShiftLeft:
		return int32Value(toInt32(left) << (toUint32(right) & 0x1f)), true
	case token.ShiftRight:
		return int32Value(toInt32(left) >> (toUint32(right) & 0x1f)), true
	case token.UnsignedShiftRight:
		// Shifting an unsigned integer is a logical shift
		return uint32Value(toUint32(left) >> (toUint32(right) & 0x1f)), true

	// Equality
	case token.StrictEqual:
		return boolValue(strictEquals(left, right)), true
	case token.StrictNotEqual:
		return boolValue(!strictEquals(left, right)), true
	case token.Equal:
		return boolValue(looseEqualsPrimitive(left, right)), true
	case token.NotEqual:
		return boolValue(!looseEqualsPrimitive(left, right)), true

	// Relational
	case token.Less:
		return boolValue(lessThan(left, right) == relationTrue), true
	case token.Greater:
		return boolValue(lessThan(right, left) == relationTrue), true
	case token.LessOrEqual:
		return boolValue(lessThan(right, left) == relationFalse), true
	case token.GreaterOrEqual:
		return boolValue(lessThan(left, right) == relationFalse), true
	}

	return Value{}, false
}

// ApplyUnary applies a unary operator to a primitive operand. typeof,
// delete and the update operators are not handled.
func ApplyUnary(operator token.Token, v Value) (Value, bool) {
	if v.IsObject() {
		return Value{}, false
	}
	switch operator {
	case token.Minus:
		return float64Value(-v.float64()), true
	case token.Plus:
		return float64Value(v.float64()), true
	case token.BitwiseNot:
		return int32Value(^toInt32(v)), true
	case token.Not:
		return boolValue(!v.bool()), true
	case token.Void:
		return undefinedValue, true
	}
	return Value{}, false
}

// strictEquals compares kind and value without coercion. NaN is not equal
// to itself, +0 equals -0, objects compare by identity.
func strictEquals(left, right Value) bool {
	if left.kind != right.kind {
		return false
	}
	switch left.kind {
	case KindUndefined, KindNull:
		return true
	case KindBoolean:
		return left.value.(bool) == right.value.(bool)
	case KindNumber:
		return left.value.(float64) == right.value.(float64)
	case KindString:
		return left.value.(string) == right.value.(string)
	}
	return left.Object() == right.Object()
}

// looseEqualsPrimitive is == for primitives:
//  1. same kind: strict comparison;
//  2. null and undefined equal each other and nothing else;
//  3. number and string: the string is converted to a number;
//  4. a boolean is converted to a number and the comparison restarts;
//  5. otherwise false.
func looseEqualsPrimitive(left, right Value) bool {
	for {
		switch {
		case left.kind == right.kind:
			return strictEquals(left, right)
		case isNullish(left) || isNullish(right):
			return isNullish(left) && isNullish(right)
		case left.IsNumber() && right.IsString():
			return left.float64() == right.float64()
		case left.IsString() && right.IsNumber():
			return left.float64() == right.float64()
		case left.IsBoolean():
			left = float64Value(left.float64())
		case right.IsBoolean():
			right = float64Value(right.float64())
		default:
			return false
		}
	}
}

func isNullish(v Value) bool {
	return v.kind == KindUndefined || v.kind == KindNull
}

type relation int

const (
	relationFalse relation = iota
	relationTrue
	relationUndefined
)

// lessThan compares two primitives: strings by UTF-16 code units, anything
// else numerically. NaN makes the relation undefined, which every
// relational operator treats as false.
func lessThan(left, right Value) relation {
	if left.IsString() && right.IsString() {
		if compareUTF16(left.string(), right.string()) < 0 {
			return relationTrue
		}
		return relationFalse
	}
	x, y := left.float64(), right.float64()
	if math.IsNaN(x) || math.IsNaN(y) {
		return relationUndefined
	}
	if x < y {
		return relationTrue
	}
	return relationFalse
}

// compareUTF16 orders strings by code units. For valid UTF-8 the byte order
// only differs from code unit order when a supplementary character meets a
// character in U+E000..U+FFFF.
func compareUTF16(a, b string) int {
	if isASCII(a) && isASCII(b) {
		return strings.Compare(a, b)
	}
	ua, ub := toUTF16(a), toUTF16(b)
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	}
	return 0
}

// binary applies a non-short-circuit binary operator, converting object
// operands to primitives first.
func (in *Interpreter) binary(op token.Token, left, right Value, idx ast.Idx) (Value, *completion) {
	switch op {
	case token.StrictEqual:
		return boolValue(strictEquals(left, right)), nil
	case token.StrictNotEqual:
		return boolValue(!strictEquals(left, right)), nil
	case token.Equal, token.NotEqual:
		eq, c := in.looseEquals(left, right, idx)
		if c != nil {
			return Value{}, c
		}
		return boolValue(eq == (op == token.Equal)), nil
	case token.In:
		if !right.IsObject() {
			return Value{}, in.throwError(TypeError, idx, "Cannot use 'in' operator to search for '%s' in %s", left.string(), Inspect(right))
		}
		key, c := in.toPropertyKey(left, idx)
		if c != nil {
			return Value{}, c
		}
		return boolValue(right.Object().Has(key)), nil
	case token.InstanceOf:
		if !right.IsFunction() {
			return Value{}, in.throwError(TypeError, idx, "Right-hand side of 'instanceof' is not callable")
		}
		if !left.IsObject() {
			return falseValue, nil
		}
		proto := right.Object().Get("prototype")
		if !proto.IsObject() {
			return Value{}, in.throwError(TypeError, idx, "Function has non-object prototype '%s' in instanceof check", proto.string())
		}
		return boolValue(proto.Object().isPrototypeOf(left.Object())), nil
	}

	hint := hintNumber
	if op == token.Plus {
		hint = hintDefault
	}
	left, c := in.toPrimitive(left, hint, idx)
	if c != nil {
		return Value{}, c
	}
	right, c = in.toPrimitive(right, hint, idx)
	if c != nil {
		return Value{}, c
	}
	v, ok := ApplyBinary(op, left, right)
	if !ok {
		return Value{}, in.throwError(TypeError, idx, "Unsupported operator %s", op)
	}
	return v, nil
}

// looseEquals is == with the object step of the ladder: an object compared
// with a number or string is converted to a primitive and the comparison
// restarts.
func (in *Interpreter) looseEquals(left, right Value, idx ast.Idx) (bool, *completion) {
	for {
		switch {
		case left.IsObject() && right.IsObject():
			return left.Object() == right.Object(), nil
		case left.IsObject() && (right.IsNumber() || right.IsString()):
			var c *completion
			if left, c = in.toPrimitive(left, hintDefault, idx); c != nil {
				return false, c
			}
		case right.IsObject() && (left.IsNumber() || left.IsString()):
			var c *completion
			if right, c = in.toPrimitive(right, hintDefault, idx); c != nil {
				return false, c
			}
		case left.IsObject() && right.IsBoolean():
			right = float64Value(right.float64())
		case right.IsObject() && left.IsBoolean():
			left = float64Value(left.float64())
		case left.IsObject() || right.IsObject():
			return false, nil
		default:
			return looseEqualsPrimitive(left, right), nil
		}
	}
}
