package evaluator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

const builtinStringTrimWhitespace = "\u0009\u000A\u000B\u000C\u000D\u0020\u00A0\u1680\u180E\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF"

// Kind is the type tag of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindObject
	KindArray
	KindFunction
)

var kind2string = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindObject:    "object",
	KindArray:     "array",
	KindFunction:  "function",
}

func (k Kind) String() string {
	if int(k) < len(kind2string) {
		return kind2string[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

var (
	undefinedValue = Value{kind: KindUndefined}
	nullValue      = Value{kind: KindNull}
	falseValue     = Value{kind: KindBoolean, value: false}
	trueValue      = Value{kind: KindBoolean, value: true}
)

// Value is a script value. The zero Value is undefined.
//
// Numbers are held as float64, strings as Go strings, booleans as bool and
// objects, arrays and functions as a shared *Object.
type Value struct {
	value any
	kind  Kind
}

// Undefined returns the undefined value.
func Undefined() Value { return undefinedValue }

// Null returns the null value.
func Null() Value { return nullValue }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return boolValue(b) }

// NumberValue returns a number value.
func NumberValue(f float64) Value { return float64Value(f) }

// StringValue returns a string value.
func StringValue(s string) Value { return stringValue(s) }

// ObjectValue wraps o. The kind is derived from the object's class.
func ObjectValue(o *Object) Value {
	if o == nil {
		return nullValue
	}
	switch {
	case o.class == classArray:
		return Value{kind: KindArray, value: o}
	case o.fn != nil:
		return Value{kind: KindFunction, value: o}
	}
	return Value{kind: KindObject, value: o}
}

func (v Value) Kind() Kind { return v.kind }

// IsBoolean will return true if value is a boolean (primitive).
func (v Value) IsBoolean() bool {
	return v.kind == KindBoolean
}

// IsNumber will return true if value is a number (primitive).
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// IsString will return true if value is a string (primitive).
func (v Value) IsString() bool {
	return v.kind == KindString
}

// IsNull will return true if the value is null, and false otherwise.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsUndefined will return true if the value is undefined, and false otherwise.
func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

// IsObject reports whether the value is an object, array or function.
func (v Value) IsObject() bool {
	return v.kind >= KindObject
}

// IsFunction reports whether the value is callable.
func (v Value) IsFunction() bool {
	return v.kind == KindFunction
}

// Object returns the object payload, or nil for primitives.
func (v Value) Object() *Object {
	if o, ok := v.value.(*Object); ok {
		return o
	}
	return nil
}

// Bool returns the truthiness of the value.
func (v Value) Bool() bool { return v.bool() }

// Float returns the numeric value of a primitive. Objects yield NaN; use
// the interpreter's conversions when valueOf must be consulted.
func (v Value) Float() float64 { return v.float64() }

// String returns the string form of the value without invoking script code:
// primitives convert as the language does, arrays join their elements,
// functions print their source and other objects print as [object Class].
func (v Value) String() string {
	if v.IsObject() {
		return v.Object().display(0)
	}
	return v.string()
}

func (v Value) string() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(v.value.(bool))
	case KindNumber:
		value := v.value.(float64)
		if value == 0 {
			return "0" // Take care not to return -0
		}
		return floatToString(value, 64)
	case KindString:
		return v.value.(string)
	case KindObject, KindArray, KindFunction:
		return v.Object().display(0)
	}
	return ""
}

func (v Value) float64() float64 {
	switch v.kind {
	case KindUndefined:
		return math.NaN()
	case KindNull:
		return 0
	case KindBoolean:
		if v.value.(bool) {
			return 1
		}
		return 0
	case KindNumber:
		return v.value.(float64)
	case KindString:
		return parseNumber(v.value.(string))
	}
	if o := v.Object(); o != nil && o.primitive != nil {
		return o.primitive.float64()
	}
	return math.NaN()
}

func (v Value) bool() bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.value.(bool)
	case KindNumber:
		value := v.value.(float64)
		return !math.IsNaN(value) && value != 0
	case KindString:
		return len(v.value.(string)) != 0
	}
	return true
}

var matchLeading0Exponent = regexp.MustCompile(`([eE][\+\-])0+([1-9])`) // 1e-07 => 1e-7

// floatToString formats a number the way the language prints it: the
// shortest string that round-trips, in exponent form at 1e21 and above or
// below 1e-6.
func floatToString(value float64, bitsize int) string {
	if math.IsNaN(value) {
		return "NaN"
	} else if math.IsInf(value, 0) {
		if math.Signbit(value) {
			return "-Infinity"
		}
		return "Infinity"
	}
	if value == 0 {
		return "0"
	}
	exponent := math.Log10(math.Abs(value))
	if exponent >= 21 || exponent < -6 {
		return matchLeading0Exponent.ReplaceAllString(strconv.FormatFloat(value, 'g', -1, bitsize), "$1$2")
	}
	return strconv.FormatFloat(value, 'f', -1, bitsize)
}

// parseNumber is the string-to-number conversion: surrounding whitespace is
// ignored, the empty string is 0, anything unparseable is NaN.
func parseNumber(value string) float64 {
	value = strings.Trim(value, builtinStringTrimWhitespace)

	if value == "" {
		return 0
	}

	switch value {
	case "Infinity", "+Infinity":
		return math.Inf(+1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(value) > 2 && value[0] == '0' {
		base := 0
		switch value[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			number, err := strconv.ParseUint(value[2:], base, 64)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return parseBigInteger(value[2:], base)
				}
				return math.NaN()
			}
			return float64(number)
		}
	}

	// strconv accepts spellings (inf, nan, hex floats, underscores) that
	// are not numbers here.
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case '0' <= c && c <= '9', c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return math.NaN()
		}
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return number
}

func parseBigInteger(digits string, base int) float64 {
	var f float64
	for _, c := range digits {
		d, ok := digitValue(c)
		if !ok || d >= base {
			return math.NaN()
		}
		f = f*float64(base) + float64(d)
	}
	return f
}

func digitValue(c rune) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// toInteger truncates toward zero; NaN becomes 0.
func toInteger(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Trunc(f)
}

// ECMA 262: 9.5.
func toInt32(value Value) int32 {
	return int32(toUint32(value))
}

func toUint32(value Value) uint32 {
	floatValue := value.float64()
	if math.IsNaN(floatValue) || math.IsInf(floatValue, 0) || floatValue == 0 {
		return 0
	}
	// Reduce modulo 2^32 before converting so large values wrap.
	m := math.Mod(math.Trunc(floatValue), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}

var (
	nan              float64 = math.NaN()
	positiveInfinity float64 = math.Inf(+1)
	negativeInfinity float64 = math.Inf(-1)
	positiveZero     float64 = 0
	negativeZero     float64 = math.Float64frombits(0 | (1 << 63))
)

// NaNValue will return a value representing NaN.
func NaNValue() Value {
	return Value{kind: KindNumber, value: nan}
}

func positiveInfinityValue() Value {
	return Value{kind: KindNumber, value: positiveInfinity}
}

func negativeInfinityValue() Value {
	return Value{kind: KindNumber, value: negativeInfinity}
}

func positiveZeroValue() Value {
	return Value{kind: KindNumber, value: positiveZero}
}

func negativeZeroValue() Value {
	return Value{kind: KindNumber, value: negativeZero}
}

func stringValue(value string) Value {
	return Value{
		kind:  KindString,
		value: value,
	}
}

func float64Value(value float64) Value {
	return Value{
		kind:  KindNumber,
		value: value,
	}
}

func boolValue(value bool) Value {
	if value {
		return trueValue
	}
	return falseValue
}

func int32Value(value int32) Value {
	return float64Value(float64(value))
}

func uint32Value(value uint32) Value {
	return float64Value(float64(value))
}

// utf16Length is the length of s in UTF-16 code units.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func toUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func fromUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}

// isASCII reports whether indexing s by byte equals indexing it by code unit.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// arrayIndex parses a canonical array index ("0", "17", not "01" or "-1").
func arrayIndex(key string) (int, bool) {
	if key == "" || len(key) > 10 || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n := 0
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n >= math.MaxUint32 {
		return 0, false
	}
	return n, true
}
