package ast

import "github.com/t14raptor/fastscript/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		// Elided elements are stored as an Expression with a nil Expr.
		Value Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	// BinaryExpression covers arithmetic, bitwise, relational, equality and
	// the short-circuiting logical operators.
	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	// MemberExpression is o.name (Property is a StringLiteral) or o[expr]
	// (Computed).
	MemberExpression struct {
		Object       *Expression
		Property     *Expression
		Computed     bool
		RightBracket Idx
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // operator position
		Operand  *Expression
		Postfix  bool
	}
)

// IsReference reports whether the expression can appear on the left-hand
// side of an assignment.
func (e *Expression) IsReference() bool {
	switch e.Expr.(type) {
	case *Identifier, *MemberExpression:
		return true
	}
	return false
}

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*ThisExpression) _expr()        {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
