package simplifier

import (
	"math"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/token"
)

// literalValue returns the value of a primitive literal, including a
// negated number literal.
func literalValue(n *ast.Expression) (evaluator.Value, bool) {
	switch n := n.Expr.(type) {
	case *ast.NumberLiteral:
		return evaluator.NumberValue(n.Value), true
	case *ast.StringLiteral:
		return evaluator.StringValue(n.Value), true
	case *ast.BooleanLiteral:
		return evaluator.BoolValue(n.Value), true
	case *ast.NullLiteral:
		return evaluator.Null(), true
	case *ast.UndefinedLiteral:
		return evaluator.Undefined(), true
	case *ast.UnaryExpression:
		if num, ok := n.Operand.Expr.(*ast.NumberLiteral); ok && n.Operator == token.Minus {
			return evaluator.NumberValue(-num.Value), true
		}
	}
	return evaluator.Value{}, false
}

func literalExpr(v evaluator.Value, idx ast.Idx) (ast.Expr, bool) {
	switch {
	case v.IsUndefined():
		return &ast.UndefinedLiteral{Idx: idx}, true
	case v.IsNull():
		return &ast.NullLiteral{Idx: idx}, true
	case v.IsBoolean():
		return &ast.BooleanLiteral{Idx: idx, Value: v.Bool()}, true
	case v.IsString():
		return &ast.StringLiteral{Idx: idx, Value: v.String()}, true
	case v.IsNumber():
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		if !math.Signbit(f) {
			return numberLiteral(f, idx), true
		}
		return &ast.UnaryExpression{
			Operator: token.Minus,
			Idx:      idx,
			Operand:  &ast.Expression{Expr: numberLiteral(-f, idx)},
		}, true
	}
	return nil, false
}

func numberLiteral(f float64, idx ast.Idx) *ast.NumberLiteral {
	return &ast.NumberLiteral{
		Idx:     idx,
		Literal: evaluator.NumberValue(f).String(),
		Value:   f,
	}
}

func typeOf(v evaluator.Value) string {
	switch {
	case v.IsUndefined():
		return "undefined"
	case v.IsNull():
		return "object"
	case v.IsBoolean():
		return "boolean"
	case v.IsNumber():
		return "number"
	}
	return "string"
}

// directnessMatters reports whether unwrapping n changes its meaning as a
// callee: `(true && o.m)()` calls m with an undefined this, `o.m()` does not.
func directnessMatters(n *ast.Expression) bool {
	_, ok := n.Expr.(*ast.MemberExpression)
	return ok
}
