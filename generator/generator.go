package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/parser/scanner"
	"github.com/t14raptor/fastscript/token"
)

// Expression binding levels, loosest first. Binary operators occupy
// levelBinary+1 through levelBinary+10 following token.Precedence.
const (
	levelSequence = iota + 1
	levelAssign
	levelConditional
	levelBinary
	levelPrefix  = levelBinary + 11
	levelPostfix = levelPrefix + 1
	levelCall    = levelPostfix + 1
	levelPrimary = levelCall + 1
)

// Generate prints node as source text. Statements are separated by newlines
// and blocks indented by four spaces.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for i := range n.Body {
			if i > 0 {
				s.line()
			}
			gen(s.wrap(n.Body[i].Stmt))
		}
	case *ast.Statement:
		if n != nil {
			gen(s.wrap(n.Stmt))
		}
	case *ast.Expression:
		if n != nil && n.Expr != nil {
			genExpr(s, n.Expr, levelSequence)
		}
	case ast.Expr:
		genExpr(s, n, levelSequence)
	case ast.Stmt:
		genStmt(s, n)
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genStmt(s *state, stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.BlockStatement:
		genList(s, n.List)
	case *ast.BreakStatement:
		s.write("break")
		if n.Label != nil {
			s.write(" " + n.Label.Name)
		}
		s.write(";")
	case *ast.ContinueStatement:
		s.write("continue")
		if n.Label != nil {
			s.write(" " + n.Label.Name)
		}
		s.write(";")
	case *ast.DoWhileStatement:
		s.write("do ")
		genStmt(s.wrap(n.Body.Stmt), n.Body.Stmt)
		s.write(" while (")
		genExpr(s, n.Test.Expr, levelSequence)
		s.write(");")
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.ExpressionStatement:
		if startsAmbiguous(n.Expression.Expr) {
			s.write("(")
			genExpr(s, n.Expression.Expr, levelSequence)
			s.write(");")
			return
		}
		genExpr(s, n.Expression.Expr, levelSequence)
		s.write(";")
	case *ast.ForInStatement:
		s.write("for (")
		head := s.wrap(n)
		head.noIn = true
		switch into := n.Into.Into.(type) {
		case *ast.VariableDeclaration:
			genVariableDeclaration(head, into)
		case *ast.Expression:
			genExpr(head, into.Expr, levelCall)
		}
		s.write(" in ")
		genExpr(s, n.Source.Expr, levelSequence)
		s.write(") ")
		genStmt(s.wrap(n.Body.Stmt), n.Body.Stmt)
	case *ast.ForStatement:
		s.write("for (")
		if n.Initializer != nil {
			head := s.wrap(n)
			head.noIn = true
			switch init := n.Initializer.Initializer.(type) {
			case *ast.VariableDeclaration:
				genVariableDeclaration(head, init)
			case *ast.Expression:
				genExpr(head, init.Expr, levelSequence)
			}
		}
		s.write(";")
		if n.Test != nil {
			s.write(" ")
			genExpr(s, n.Test.Expr, levelSequence)
		}
		s.write(";")
		if n.Update != nil {
			s.write(" ")
			genExpr(s, n.Update.Expr, levelSequence)
		}
		s.write(") ")
		genStmt(s.wrap(n.Body.Stmt), n.Body.Stmt)
	case *ast.FunctionDeclaration:
		genFunction(s, n.Function)
	case *ast.IfStatement:
		s.write("if (")
		genExpr(s, n.Test.Expr, levelSequence)
		s.write(") ")
		if n.Alternate == nil {
			genStmt(s.wrap(n.Consequent.Stmt), n.Consequent.Stmt)
			return
		}
		// A non-block consequent is braced so the else cannot attach to a
		// nested if.
		if block, ok := n.Consequent.Stmt.(*ast.BlockStatement); ok {
			genList(s, block.List)
		} else {
			genList(s, ast.Statements{*n.Consequent})
		}
		s.write(" else ")
		genStmt(s.wrap(n.Alternate.Stmt), n.Alternate.Stmt)
	case *ast.LabelledStatement:
		s.write(n.Label.Name + ": ")
		genStmt(s.wrap(n.Statement.Stmt), n.Statement.Stmt)
	case *ast.ReturnStatement:
		s.write("return")
		if n.Argument != nil {
			s.write(" ")
			genExpr(s, n.Argument.Expr, levelSequence)
		}
		s.write(";")
	case *ast.SwitchStatement:
		s.write("switch (")
		genExpr(s, n.Discriminant.Expr, levelSequence)
		s.write(") {")
		s.indent++
		for i := range n.Body {
			c := &n.Body[i]
			s.lineAndPad()
			if c.Test != nil {
				s.write("case ")
				genExpr(s, c.Test.Expr, levelSequence)
				s.write(":")
			} else {
				s.write("default:")
			}
			s.indent++
			for _, st := range c.Consequent {
				s.lineAndPad()
				genStmt(s.wrap(st.Stmt), st.Stmt)
			}
			s.indent--
		}
		s.indent--
		if len(n.Body) > 0 {
			s.lineAndPad()
		}
		s.write("}")
	case *ast.ThrowStatement:
		s.write("throw ")
		genExpr(s, n.Argument.Expr, levelSequence)
		s.write(";")
	case *ast.TryStatement:
		s.write("try ")
		genList(s, n.Body.List)
		if n.Catch != nil {
			s.write(" catch ")
			if n.Catch.Parameter != nil {
				s.write("(" + n.Catch.Parameter.Name + ") ")
			}
			genList(s, n.Catch.Body.List)
		}
		if n.Finally != nil {
			s.write(" finally ")
			genList(s, n.Finally.List)
		}
	case *ast.VariableDeclaration:
		genVariableDeclaration(s, n)
		s.write(";")
	case *ast.WhileStatement:
		s.write("while (")
		genExpr(s, n.Test.Expr, levelSequence)
		s.write(") ")
		genStmt(s.wrap(n.Body.Stmt), n.Body.Stmt)
	default:
		panic(fmt.Sprintf("gen: unexpected statement type %T", n))
	}
}

// genList prints statements as a braced block.
func genList(s *state, list ast.Statements) {
	if len(list) == 0 {
		s.write("{}")
		return
	}
	s.write("{")
	s.indent++
	for _, st := range list {
		s.lineAndPad()
		genStmt(s.wrap(st.Stmt), st.Stmt)
	}
	s.indent--
	s.lineAndPad()
	s.write("}")
}

func genVariableDeclaration(s *state, n *ast.VariableDeclaration) {
	s.write(n.Token.String() + " ")
	for i, decl := range n.List {
		if i > 0 {
			s.write(", ")
		}
		s.write(decl.Target.Name)
		if decl.Initializer != nil {
			s.write(" = ")
			genExpr(s, decl.Initializer.Expr, levelAssign)
		}
	}
}

func genFunction(s *state, n *ast.FunctionLiteral) {
	s.write("function")
	if n.Name != nil {
		s.write(" " + n.Name.Name)
	}
	s.write("(")
	for i, p := range n.ParameterList.List {
		if i > 0 {
			s.write(", ")
		}
		s.write(p.Name)
	}
	s.write(") ")
	body := s.wrap(n.Body)
	body.noIn = false
	genList(body, n.Body.List)
}

// level returns how tightly an expression binds; an operand printed where a
// higher level is required gets parentheses.
func level(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return levelSequence
	case *ast.AssignExpression:
		return levelAssign
	case *ast.ConditionalExpression:
		return levelConditional
	case *ast.BinaryExpression:
		return levelBinary + n.Operator.Precedence()
	case *ast.UnaryExpression:
		return levelPrefix
	case *ast.UpdateExpression:
		if n.Postfix {
			return levelPostfix
		}
		return levelPrefix
	case *ast.CallExpression, *ast.MemberExpression, *ast.NewExpression:
		return levelCall
	}
	return levelPrimary
}

func genExpr(s *state, e ast.Expr, min int) {
	paren := level(e) < min
	if b, ok := e.(*ast.BinaryExpression); ok && b.Operator == token.In && s.noIn {
		paren = true
	}
	if paren {
		s.write("(")
		defer s.write(")")
	}
	s = s.wrap(e)
	if paren {
		s.noIn = false
	}

	switch n := e.(type) {
	case *ast.ArrayLiteral:
		s.noIn = false
		s.write("[")
		for i, el := range n.Value {
			if i > 0 {
				s.write(", ")
			}
			if el.Expr != nil {
				genExpr(s, el.Expr, levelAssign)
			}
		}
		if len(n.Value) > 0 && n.Value[len(n.Value)-1].Expr == nil {
			s.write(",")
		}
		s.write("]")
	case *ast.AssignExpression:
		genExpr(s, n.Left.Expr, levelCall)
		s.write(" " + n.Operator.String() + " ")
		genExpr(s, n.Right.Expr, levelAssign)
	case *ast.BinaryExpression:
		lvl := level(n)
		genExpr(s, n.Left.Expr, lvl)
		s.write(" " + n.Operator.String() + " ")
		genExpr(s, n.Right.Expr, lvl+1)
	case *ast.BooleanLiteral:
		s.write(n.Literal())
	case *ast.CallExpression:
		genExpr(s, n.Callee.Expr, levelCall)
		genArguments(s, n.ArgumentList)
	case *ast.ConditionalExpression:
		genExpr(s, n.Test.Expr, levelBinary+1)
		s.write(" ? ")
		genExpr(s, n.Consequent.Expr, levelAssign)
		s.write(" : ")
		genExpr(s, n.Alternate.Expr, levelAssign)
	case *ast.FunctionLiteral:
		genFunction(s, n)
	case *ast.Identifier:
		s.write(n.Name)
	case *ast.MemberExpression:
		if _, ok := n.Object.Expr.(*ast.NumberLiteral); ok && !n.Computed {
			s.write("(")
			genExpr(s, n.Object.Expr, levelSequence)
			s.write(")")
		} else {
			genExpr(s, n.Object.Expr, levelCall)
		}
		if name, ok := n.Property.Expr.(*ast.StringLiteral); ok && !n.Computed {
			s.write("." + name.Value)
			return
		}
		s.write("[")
		inner := s.wrap(n)
		inner.noIn = false
		genExpr(inner, n.Property.Expr, levelSequence)
		s.write("]")
	case *ast.NewExpression:
		s.write("new ")
		if containsCall(n.Callee.Expr) {
			s.write("(")
			genExpr(s, n.Callee.Expr, levelSequence)
			s.write(")")
		} else {
			genExpr(s, n.Callee.Expr, levelCall)
		}
		genArguments(s, n.ArgumentList)
	case *ast.NullLiteral:
		s.write("null")
	case *ast.NumberLiteral:
		if n.Literal != "" {
			s.write(n.Literal)
		} else {
			s.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *ast.ObjectLiteral:
		genObject(s, n)
	case *ast.SequenceExpression:
		for i, e := range n.Sequence {
			if i > 0 {
				s.write(", ")
			}
			genExpr(s, e.Expr, levelAssign)
		}
	case *ast.StringLiteral:
		if strings.HasPrefix(n.Literal, `"`) || strings.HasPrefix(n.Literal, `'`) {
			s.write(n.Literal)
		} else {
			s.write(Quote(n.Value))
		}
	case *ast.ThisExpression:
		s.write("this")
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.write(op)
		switch n.Operator {
		case token.Typeof, token.Void, token.Delete:
			s.write(" ")
		case token.Plus, token.Minus:
			if startsWithSign(n.Operand.Expr, n.Operator) {
				s.write(" ")
			}
		}
		genExpr(s, n.Operand.Expr, levelPrefix)
	case *ast.UndefinedLiteral:
		s.write("undefined")
	case *ast.UpdateExpression:
		if n.Postfix {
			genExpr(s, n.Operand.Expr, levelCall)
			s.write(n.Operator.String())
			return
		}
		s.write(n.Operator.String())
		genExpr(s, n.Operand.Expr, levelCall)
	default:
		panic(fmt.Sprintf("gen: unexpected expression type %T", n))
	}
}

func genArguments(s *state, args ast.Expressions) {
	inner := s.wrap(s.node)
	inner.noIn = false
	s.write("(")
	for i, a := range args {
		if i > 0 {
			s.write(", ")
		}
		genExpr(inner, a.Expr, levelAssign)
	}
	s.write(")")
}

func genObject(s *state, n *ast.ObjectLiteral) {
	if len(n.Value) == 0 {
		s.write("{}")
		return
	}
	s.noIn = false
	s.write("{")
	s.indent++
	for i, p := range n.Value {
		if i > 0 {
			s.write(",")
		}
		s.lineAndPad()
		switch key := p.Key.Expr.(type) {
		case *ast.StringLiteral:
			if !p.Computed && scanner.IsIdentifierName(key.Value) {
				s.write(key.Value)
			} else if p.Computed {
				s.write("[")
				genExpr(s, key, levelAssign)
				s.write("]")
			} else {
				s.write(Quote(key.Value))
			}
		default:
			if p.Computed {
				s.write("[")
				genExpr(s, p.Key.Expr, levelAssign)
				s.write("]")
			} else {
				genExpr(s, p.Key.Expr, levelPrimary)
			}
		}
		s.write(": ")
		genExpr(s, p.Value.Expr, levelAssign)
	}
	s.indent--
	s.lineAndPad()
	s.write("}")
}

// startsAmbiguous reports whether an expression statement would begin with
// `{` or `function`, which the parser reads as a block or declaration.
func startsAmbiguous(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral:
			return true
		case *ast.AssignExpression:
			e = n.Left.Expr
		case *ast.BinaryExpression:
			e = n.Left.Expr
		case *ast.ConditionalExpression:
			e = n.Test.Expr
		case *ast.SequenceExpression:
			e = n.Sequence[0].Expr
		case *ast.CallExpression:
			e = n.Callee.Expr
		case *ast.MemberExpression:
			if _, ok := n.Object.Expr.(*ast.NumberLiteral); ok && !n.Computed {
				return false
			}
			e = n.Object.Expr
		case *ast.UpdateExpression:
			if !n.Postfix {
				return false
			}
			e = n.Operand.Expr
		default:
			return false
		}
		if level(e) < levelCall {
			// The operand will be parenthesized.
			return false
		}
	}
}

// containsCall reports whether a new-expression callee has a call in its
// member chain, which must be parenthesized to keep `new` from taking the
// call's arguments.
func containsCall(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = n.Object.Expr
		default:
			return false
		}
	}
}

func startsWithSign(e ast.Expr, sign token.Token) bool {
	switch n := e.(type) {
	case *ast.UnaryExpression:
		return n.Operator == sign
	case *ast.UpdateExpression:
		if n.Postfix {
			return false
		}
		return (sign == token.Plus && n.Operator == token.Increment) || (sign == token.Minus && n.Operator == token.Decrement)
	case *ast.NumberLiteral:
		return sign == token.Minus && strings.HasPrefix(n.Literal, "-")
	}
	return false
}

// Quote returns s as a double-quoted string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
