package parser

import (
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	node := &ast.Identifier{Idx: p.currentOffset()}
	if p.currentKind() != token.Identifier {
		p.errorExpected(token.Identifier)
		return node
	}
	node.Name = p.token.Value
	p.next()
	return node
}

func (p *parser) parsePrimaryExpression() ast.Expr {
	tok := p.token
	idx := tok.Idx0
	switch tok.Kind {
	case token.Identifier:
		return p.parseIdentifier()
	case token.Number:
		p.next()
		return &ast.NumberLiteral{Idx: idx, Literal: tok.Literal, Value: tok.Number}
	case token.String:
		p.next()
		return &ast.StringLiteral{Idx: idx, Literal: tok.Literal, Value: tok.Value}
	case token.Boolean:
		p.next()
		return &ast.BooleanLiteral{Idx: idx, Value: tok.Value == "true"}
	case token.Null:
		p.next()
		return &ast.NullLiteral{Idx: idx}
	case token.Undefined:
		p.next()
		return &ast.UndefinedLiteral{Idx: idx}
	case token.This:
		p.next()
		return &ast.ThisExpression{Idx: idx}
	case token.Function:
		return p.parseFunction(false)
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftParenthesis:
		p.next()
		defer p.allowIn(true)()
		expr := p.parseExpression()
		p.expect(token.RightParenthesis)
		return expr.Expr
	}

	p.errorExpecting("expression")
	return &ast.UndefinedLiteral{Idx: idx}
}

func (p *parser) parseArrayLiteral() ast.Expr {
	defer p.allowIn(true)()
	idx0 := p.expect(token.LeftBracket)
	var value ast.Expressions
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		if p.currentKind() == token.Comma {
			p.next()
			value = append(value, ast.Expression{})
			continue
		}
		value = append(value, *p.parseAssignmentExpression())
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	idx1 := p.expect(token.RightBracket)

	return &ast.ArrayLiteral{
		LeftBracket:  idx0,
		RightBracket: idx1,
		Value:        value,
	}
}

func (p *parser) parseObjectLiteral() ast.Expr {
	defer p.allowIn(true)()
	idx0 := p.expect(token.LeftBrace)
	var value ast.Properties
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		value = append(value, p.parseObjectProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	idx1 := p.expect(token.RightBrace)

	return &ast.ObjectLiteral{
		LeftBrace:  idx0,
		RightBrace: idx1,
		Value:      value,
	}
}

func (p *parser) parseObjectProperty() ast.Property {
	tok := p.token
	var prop ast.Property
	switch {
	case tok.Kind == token.Identifier || token.IsKeyword(tok.Kind):
		p.next()
		prop.Key = &ast.Expression{Expr: &ast.StringLiteral{Idx: tok.Idx0, Literal: tok.Value, Value: tok.Value}}
		if tok.Kind == token.Identifier && (p.currentKind() == token.Comma || p.currentKind() == token.RightBrace) {
			// {x} is shorthand for {x: x}.
			prop.Value = &ast.Expression{Expr: &ast.Identifier{Idx: tok.Idx0, Name: tok.Value}}
			return prop
		}
	case tok.Kind == token.String:
		p.next()
		prop.Key = &ast.Expression{Expr: &ast.StringLiteral{Idx: tok.Idx0, Literal: tok.Literal, Value: tok.Value}}
	case tok.Kind == token.Number:
		p.next()
		prop.Key = &ast.Expression{Expr: &ast.NumberLiteral{Idx: tok.Idx0, Literal: tok.Literal, Value: tok.Number}}
	case tok.Kind == token.LeftBracket:
		p.next()
		prop.Key = p.parseAssignmentExpression()
		prop.Computed = true
		p.expect(token.RightBracket)
	default:
		p.errorUnexpectedToken()
		prop.Key = &ast.Expression{Expr: &ast.UndefinedLiteral{Idx: tok.Idx0}}
		prop.Value = prop.Key
		return prop
	}
	p.expect(token.Colon)
	prop.Value = p.parseAssignmentExpression()
	return prop
}

func (p *parser) parseArgumentList() (argumentList ast.Expressions, idx0, idx1 ast.Idx) {
	defer p.allowIn(true)()
	idx0 = p.expect(token.LeftParenthesis)
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		argumentList = append(argumentList, *p.parseAssignmentExpression())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	idx1 = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseCallExpression(left ast.Expr) ast.Expr {
	argumentList, idx0, idx1 := p.parseArgumentList()
	return &ast.CallExpression{
		Callee:           &ast.Expression{Expr: left},
		LeftParenthesis:  idx0,
		ArgumentList:     argumentList,
		RightParenthesis: idx1,
	}
}

// parseDotMember parses `.name`. Any identifier-like word, keywords
// included, may follow the dot.
func (p *parser) parseDotMember(left ast.Expr) ast.Expr {
	p.expect(token.Period)
	tok := p.token
	if tok.Kind != token.Identifier && !token.IsKeyword(tok.Kind) {
		p.errorExpected(token.Identifier)
		return left
	}
	p.next()
	return &ast.MemberExpression{
		Object:   &ast.Expression{Expr: left},
		Property: &ast.Expression{Expr: &ast.StringLiteral{Idx: tok.Idx0, Literal: tok.Value, Value: tok.Value}},
	}
}

func (p *parser) parseBracketMember(left ast.Expr) ast.Expr {
	defer p.allowIn(true)()
	p.expect(token.LeftBracket)
	member := p.parseExpression()
	idx1 := p.expect(token.RightBracket)
	return &ast.MemberExpression{
		Object:       &ast.Expression{Expr: left},
		Property:     member,
		Computed:     true,
		RightBracket: idx1,
	}
}

// parseNewExpression parses `new Callee(args)`. The callee is a member
// expression without calls, so `new a.b.C()` constructs a.b.C and
// `new f()()` calls the constructed object.
func (p *parser) parseNewExpression() ast.Expr {
	idx := p.expect(token.New)
	var callee ast.Expr
	if p.currentKind() == token.New {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	for {
		switch p.currentKind() {
		case token.Period:
			callee = p.parseDotMember(callee)
			continue
		case token.LeftBracket:
			callee = p.parseBracketMember(callee)
			continue
		}
		break
	}
	node := &ast.NewExpression{
		New:    idx,
		Callee: &ast.Expression{Expr: callee},
	}
	if p.currentKind() == token.LeftParenthesis {
		node.ArgumentList, node.LeftParenthesis, node.RightParenthesis = p.parseArgumentList()
	}
	return node
}

func (p *parser) parseLeftHandSideExpressionAllowCall() ast.Expr {
	var left ast.Expr
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.LeftParenthesis:
			left = p.parseCallExpression(left)
		default:
			return left
		}
	}
}

func (p *parser) parsePostfixExpression() ast.Expr {
	operand := p.parseLeftHandSideExpressionAllowCall()

	switch p.currentKind() {
	case token.Increment, token.Decrement:
		// Make sure there is no line terminator here
		if p.token.OnNewLine {
			break
		}
		tkn := p.currentKind()
		idx := p.currentOffset()
		operandExpr := &ast.Expression{Expr: operand}
		if !operandExpr.IsReference() {
			p.errorAt(operand.Idx0(), "Invalid left-hand side in postfix operation")
		}
		p.next()
		return &ast.UpdateExpression{
			Operator: tkn,
			Idx:      idx,
			Operand:  operandExpr,
			Postfix:  true,
		}
	}

	return operand
}

func (p *parser) parseUnaryExpression() ast.Expr {
	switch p.currentKind() {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		return &ast.UnaryExpression{
			Operator: tkn,
			Idx:      idx,
			Operand:  &ast.Expression{Expr: p.parseUnaryExpression()},
		}
	case token.Increment, token.Decrement:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		operand := &ast.Expression{Expr: p.parseUnaryExpression()}
		if !operand.IsReference() {
			p.errorAt(operand.Idx0(), "Invalid left-hand side in prefix operation")
		}
		return &ast.UpdateExpression{
			Operator: tkn,
			Idx:      idx,
			Operand:  operand,
		}
	}

	return p.parsePostfixExpression()
}

// parseBinaryExpression is the Pratt loop over the binary and logical
// operators, all of which are left-associative.
func (p *parser) parseBinaryExpression(minBP Precedence) ast.Expr {
	left := p.parseUnaryExpression()

	for {
		kind := p.currentKind()
		lbp := KindToPrecedence(kind)
		if lbp <= minBP {
			break
		}
		if kind == token.In && !p.scope.allowIn {
			break
		}
		p.next()
		right := p.parseBinaryExpression(lbp ^ 1)
		left = &ast.BinaryExpression{
			Operator: kind,
			Left:     &ast.Expression{Expr: left},
			Right:    &ast.Expression{Expr: right},
		}
	}

	return left
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	test := &ast.Expression{Expr: p.parseBinaryExpression(PrecedenceLowest)}
	if p.currentKind() != token.QuestionMark {
		return test
	}
	p.next()
	restore := p.allowIn(true)
	consequent := p.parseAssignmentExpression()
	restore()
	p.expect(token.Colon)
	return &ast.Expression{Expr: &ast.ConditionalExpression{
		Test:       test,
		Consequent: consequent,
		Alternate:  p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	left := p.parseConditionalExpression()
	if !p.currentKind().IsAssign() {
		return left
	}
	if !left.IsReference() {
		p.errorAt(left.Idx0(), "Invalid left-hand side in assignment")
		return left
	}
	operator := p.currentKind()
	p.next()
	return &ast.Expression{Expr: &ast.AssignExpression{
		Operator: operator,
		Left:     left,
		Right:    p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()
	if p.currentKind() != token.Comma {
		return left
	}
	sequence := ast.Expressions{*left}
	for p.currentKind() == token.Comma {
		p.next()
		sequence = append(sequence, *p.parseAssignmentExpression())
	}
	return &ast.Expression{Expr: &ast.SequenceExpression{Sequence: sequence}}
}
