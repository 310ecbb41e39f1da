package evaluator

import (
	"math"
	"math/rand/v2"
)

func (in *Interpreter) initMath() {
	m := newObject(classMath, in.objectPrototype)
	in.global.set("Math", ObjectValue(m))

	m.setHidden("PI", float64Value(math.Pi))
	m.setHidden("E", float64Value(math.E))
	m.setHidden("LN2", float64Value(math.Ln2))
	m.setHidden("LN10", float64Value(math.Ln10))
	m.setHidden("SQRT2", float64Value(math.Sqrt2))

	unary := map[string]func(float64) float64{
		"abs":   math.Abs,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": mathRound,
		"trunc": math.Trunc,
		"sign":  mathSign,
		"sqrt":  math.Sqrt,
		"log":   math.Log,
		"exp":   math.Exp,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
	}
	for _, name := range []string{"abs", "floor", "ceil", "round", "trunc", "sign", "sqrt", "log", "exp", "sin", "cos", "tan"} {
		fn := unary[name]
		in.method(m, name, 1, func(c FunctionCall) (Value, error) {
			f, err := c.number(0)
			return float64Value(fn(f)), err
		})
	}
	in.method(m, "pow", 2, func(c FunctionCall) (Value, error) {
		x, err := c.number(0)
		if err != nil {
			return Value{}, err
		}
		y, err := c.number(1)
		return float64Value(mathPow(x, y)), err
	})
	in.method(m, "atan2", 2, func(c FunctionCall) (Value, error) {
		y, err := c.number(0)
		if err != nil {
			return Value{}, err
		}
		x, err := c.number(1)
		return float64Value(math.Atan2(y, x)), err
	})
	in.method(m, "min", 2, func(c FunctionCall) (Value, error) {
		return extremum(c, math.Inf(1), func(a, b float64) bool {
			return a < b || a == b && math.Signbit(a)
		})
	})
	in.method(m, "max", 2, func(c FunctionCall) (Value, error) {
		return extremum(c, math.Inf(-1), func(a, b float64) bool {
			return a > b || a == b && !math.Signbit(a)
		})
	})
	in.method(m, "random", 0, func(FunctionCall) (Value, error) {
		return float64Value(rand.Float64()), nil
	})
}

// extremum converts every argument, then picks the one better than all
// others. Any NaN makes the result NaN.
func extremum(c FunctionCall, result float64, better func(a, b float64) bool) (Value, error) {
	nan := false
	for i := range c.Arguments {
		f, err := c.number(i)
		if err != nil {
			return Value{}, err
		}
		switch {
		case math.IsNaN(f):
			nan = true
		case better(f, result):
			result = f
		}
	}
	if nan {
		return NaNValue(), nil
	}
	return float64Value(result), nil
}

// mathRound rounds half up, keeping the sign of zero for inputs in
// [-0.5, 0).
func mathRound(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r := math.Floor(f)
	if f-r >= 0.5 {
		r++
	}
	if r == 0 && math.Signbit(f) {
		return math.Copysign(0, -1)
	}
	return r
}

func mathSign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return f
}

// mathPow differs from math.Pow where ±1 meets an infinite or NaN
// exponent: the result is NaN.
func mathPow(x, y float64) float64 {
	if math.IsNaN(y) {
		return math.NaN()
	}
	if math.Abs(x) == 1 && math.IsInf(y, 0) {
		return math.NaN()
	}
	return math.Pow(x, y)
}
