package ast

import "github.com/t14raptor/fastscript/token"

// Idx is a byte offset into the source of a Program.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

// Program is the root of a parsed source buffer.
type Program struct {
	Body Statements

	// File resolves node offsets to line/column positions.
	File *token.File

	// Declarations is filled in by the resolver.
	Declarations *Declarations
}

// Position returns the line/column position of idx within the program source.
func (n *Program) Position(idx Idx) token.Position {
	return n.File.Position(int(idx))
}

// Binding is a lexically scoped (let/const) name.
type Binding struct {
	Name  string
	Const bool
}

// Declarations lists the names that bind on entry to a scope.
//
// For a Program or FunctionLiteral, Vars holds every var name hoisted from
// the body (nested blocks included, nested functions excluded) and Functions
// the top-level function declarations. For a block-like statement, Vars is
// always empty.
type Declarations struct {
	Vars      []string
	Lexical   []Binding
	Functions []*FunctionLiteral
}

func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}

func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}

func (n *ArrayLiteral) Idx0() Idx          { return n.LeftBracket }
func (n *AssignExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BinaryExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *BooleanLiteral) Idx0() Idx        { return n.Idx }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (n *FunctionLiteral) Idx0() Idx       { return n.Function }
func (n *Identifier) Idx0() Idx            { return n.Idx }
func (n *MemberExpression) Idx0() Idx      { return n.Object.Idx0() }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *ThisExpression) Idx0() Idx        { return n.Idx }
func (n *UndefinedLiteral) Idx0() Idx      { return n.Idx }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Idx0()
	}
	return n.Idx
}

func (n *ArrayLiteral) Idx1() Idx          { return n.RightBracket + 1 }
func (n *AssignExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BinaryExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *BooleanLiteral) Idx1() Idx        { return n.Idx + Idx(len(n.Literal())) }
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (n *FunctionLiteral) Idx1() Idx       { return n.Body.Idx1() }
func (n *Identifier) Idx1() Idx            { return n.Idx + Idx(len(n.Name)) }
func (n *MemberExpression) Idx1() Idx {
	if n.Computed {
		return n.RightBracket + 1
	}
	return n.Property.Idx1()
}
func (n *NewExpression) Idx1() Idx {
	if n.RightParenthesis > 0 {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}
func (n *NullLiteral) Idx1() Idx        { return n.Idx + 4 }
func (n *NumberLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.Literal)) }
func (n *ObjectLiteral) Idx1() Idx      { return n.RightBrace + 1 }
func (n *SequenceExpression) Idx1() Idx { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *StringLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.Literal)) }
func (n *ThisExpression) Idx1() Idx     { return n.Idx + 4 }
func (n *UndefinedLiteral) Idx1() Idx   { return n.Idx + 9 }
func (n *UnaryExpression) Idx1() Idx    { return n.Operand.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Idx + 2
	}
	return n.Operand.Idx1()
}

func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *BreakStatement) Idx0() Idx      { return n.Idx }
func (n *ContinueStatement) Idx0() Idx   { return n.Idx }
func (n *CaseStatement) Idx0() Idx       { return n.Case }
func (n *CatchStatement) Idx0() Idx      { return n.Catch }
func (n *DoWhileStatement) Idx0() Idx    { return n.Do }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *ForInStatement) Idx0() Idx      { return n.For }
func (n *ForStatement) Idx0() Idx        { return n.For }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *LabelledStatement) Idx0() Idx   { return n.Label.Idx0() }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *SwitchStatement) Idx0() Idx     { return n.Switch }
func (n *ThrowStatement) Idx0() Idx      { return n.Throw }
func (n *TryStatement) Idx0() Idx        { return n.Try }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *WhileStatement) Idx0() Idx      { return n.While }

func (n *BlockStatement) Idx1() Idx { return n.RightBrace + 1 }
func (n *BreakStatement) Idx1() Idx {
	if n.Label != nil {
		return n.Label.Idx1()
	}
	return n.Idx + 5
}
func (n *ContinueStatement) Idx1() Idx {
	if n.Label != nil {
		return n.Label.Idx1()
	}
	return n.Idx + 8
}
func (n *CaseStatement) Idx1() Idx {
	if len(n.Consequent) > 0 {
		return n.Consequent[len(n.Consequent)-1].Idx1()
	}
	if n.Test != nil {
		return n.Test.Idx1() + 1
	}
	return n.Case + 8
}
func (n *CatchStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *DoWhileStatement) Idx1() Idx    { return n.RightParenthesis + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *ForInStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForStatement) Idx1() Idx        { return n.Body.Idx1() }
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *LabelledStatement) Idx1() Idx { return n.Statement.Idx1() }
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *SwitchStatement) Idx1() Idx     { return n.RightBrace + 1 }
func (n *ThrowStatement) Idx1() Idx      { return n.Argument.Idx1() }
func (n *TryStatement) Idx1() Idx {
	if n.Finally != nil {
		return n.Finally.Idx1()
	}
	return n.Catch.Idx1()
}
func (n *VariableDeclaration) Idx1() Idx {
	last := n.List[len(n.List)-1]
	if last.Initializer != nil {
		return last.Initializer.Idx1()
	}
	return last.Target.Idx1()
}
func (n *WhileStatement) Idx1() Idx { return n.Body.Idx1() }

// Idx0 of a wrapper returns the index of the wrapped node, or 0 when empty.
func (e *Expression) Idx0() Idx {
	if e == nil || e.Expr == nil {
		return 0
	}
	return e.Expr.Idx0()
}

func (e *Expression) Idx1() Idx {
	if e == nil || e.Expr == nil {
		return 0
	}
	return e.Expr.Idx1()
}

func (s *Statement) Idx0() Idx {
	if s == nil || s.Stmt == nil {
		return 0
	}
	return s.Stmt.Idx0()
}

func (s *Statement) Idx1() Idx {
	if s == nil || s.Stmt == nil {
		return 0
	}
	return s.Stmt.Idx1()
}
