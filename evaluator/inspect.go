package evaluator

import (
	"math"
	"strings"

	"github.com/t14raptor/fastscript/generator"
	"github.com/t14raptor/fastscript/parser/scanner"
)

// Inspect renders v for a console: strings are quoted, arrays and objects
// are expanded and functions print as [Function: name].
func Inspect(v Value) string {
	var b strings.Builder
	inspect(&b, v, nil, true)
	return b.String()
}

func inspect(b *strings.Builder, v Value, stack []*Object, top bool) {
	switch v.kind {
	case KindString:
		if top {
			b.WriteString(generator.Quote(v.string()))
		} else {
			b.WriteString(quoteSingle(v.string()))
		}
		return
	case KindUndefined, KindNull, KindBoolean, KindNumber:
		if v.IsNumber() && v.value.(float64) == 0 && math.Signbit(v.value.(float64)) {
			b.WriteString("-0")
			return
		}
		b.WriteString(v.string())
		return
	}

	o := v.Object()
	for _, seen := range stack {
		if seen == o {
			b.WriteString("[Circular]")
			return
		}
	}
	stack = append(stack, o)

	switch {
	case o.fn != nil:
		if o.fn.name == "" {
			b.WriteString("[Function (anonymous)]")
		} else {
			b.WriteString("[Function: " + o.fn.name + "]")
		}
		return
	case o.class == classError:
		b.WriteString(o.display(0))
		return
	case o.primitive != nil:
		b.WriteString("[" + o.class + ": ")
		inspect(b, *o.primitive, stack, true)
		b.WriteString("]")
		return
	case o.class == classArray:
		if len(o.elements) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[ ")
		for i, e := range o.elements {
			if i > 0 {
				b.WriteString(", ")
			}
			inspect(b, e, stack, false)
		}
		b.WriteString(" ]")
		return
	}

	keys := o.Keys()
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		if scanner.IsIdentifierName(k) {
			b.WriteString(k)
		} else {
			b.WriteString(quoteSingle(k))
		}
		b.WriteString(": ")
		val, _ := o.GetOwn(k)
		inspect(b, val, stack, false)
	}
	b.WriteString(" }")
}

func quoteSingle(s string) string {
	q := generator.Quote(s)
	q = strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`)
	return "'" + strings.ReplaceAll(q, "'", `\'`) + "'"
}
