// Package simplifier folds operator applications whose operands are all
// literals into a single literal and removes unreachable statements.
package simplifier

import (
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/resolver"
	"github.com/t14raptor/fastscript/token"
)

type Simplifier struct {
	ast.NoopVisitor

	changed int
}

// VisitExpression folds bottom-up so that nested literal operations
// collapse in a single pass.
func (s *Simplifier) VisitExpression(n *ast.Expression) {
	n.VisitChildrenWith(s)

	switch expr := n.Expr.(type) {
	case *ast.UnaryExpression:
		s.foldUnary(n, expr)
	case *ast.BinaryExpression:
		s.foldBinary(n, expr)
	case *ast.ConditionalExpression:
		// true ? a : b
		test, ok := literalValue(expr.Test)
		if !ok {
			return
		}
		chosen := expr.Alternate
		if test.Bool() {
			chosen = expr.Consequent
		}
		if !directnessMatters(chosen) {
			s.changed++
			n.Expr = chosen.Expr
		}
	}
}

func (s *Simplifier) foldUnary(n *ast.Expression, expr *ast.UnaryExpression) {
	if expr.Operator == token.Minus {
		// -5 is how negative numbers are written; it is already folded.
		if _, ok := expr.Operand.Expr.(*ast.NumberLiteral); ok {
			return
		}
	}
	operand, ok := literalValue(expr.Operand)
	if !ok {
		return
	}
	var result evaluator.Value
	if expr.Operator == token.Typeof {
		result = evaluator.StringValue(typeOf(operand))
	} else if result, ok = evaluator.ApplyUnary(expr.Operator, operand); !ok {
		return
	}
	s.replace(n, result)
}

func (s *Simplifier) foldBinary(n *ast.Expression, expr *ast.BinaryExpression) {
	left, ok := literalValue(expr.Left)
	if !ok {
		return
	}
	switch expr.Operator {
	case token.LogicalAnd, token.LogicalOr:
		// The right operand need not be a literal: `true && f()` is `f()`.
		switch {
		case left.Bool() == (expr.Operator == token.LogicalOr):
			s.replace(n, left)
		case !directnessMatters(expr.Right):
			s.changed++
			n.Expr = expr.Right.Expr
		}
		return
	}
	right, ok := literalValue(expr.Right)
	if !ok {
		return
	}
	result, ok := evaluator.ApplyBinary(expr.Operator, left, right)
	if !ok {
		return
	}
	s.replace(n, result)
}

// replace swaps n for the literal form of v. Results without a literal
// form (NaN, Infinity) are left unfolded.
func (s *Simplifier) replace(n *ast.Expression, v evaluator.Value) {
	lit, ok := literalExpr(v, n.Expr.Idx0())
	if !ok {
		return
	}
	s.changed++
	n.Expr = lit
}

// Simplify folds constant expressions in p and drops unreachable
// statements, resolving its declarations first if the resolver has not
// run. It returns the number of rewrites.
func Simplify(p *ast.Program) (int, error) {
	if p.Declarations == nil {
		if err := resolver.Resolve(p); err != nil {
			return 0, err
		}
	}
	visitor := &Simplifier{}
	visitor.V = visitor
	p.VisitWith(visitor)
	return visitor.changed, nil
}
