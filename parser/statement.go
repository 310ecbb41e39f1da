package parser

import (
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{}
	node.LeftBrace = p.expect(token.LeftBrace)
	node.List = p.parseStatementList()
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	idx := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Semicolon: idx}
}

func (p *parser) parseStatementList() (list ast.Statements) {
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		list = append(list, ast.Statement{Stmt: p.parseStatement()})
	}
	return list
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.currentKind() {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForOrForInStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Var, token.Let, token.Const:
		return p.parseVariableStatement()
	case token.Function:
		return &ast.FunctionDeclaration{
			Function: p.parseFunction(true),
		}
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	}

	expression := p.parseExpression()

	if identifier, isIdentifier := expression.Expr.(*ast.Identifier); isIdentifier && p.currentKind() == token.Colon {
		return p.parseLabelledStatement(identifier)
	}

	p.semicolon()

	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func (p *parser) parseLabelledStatement(identifier *ast.Identifier) ast.Stmt {
	colon := p.currentOffset()
	p.next() // :
	if _, exists := p.scope.findLabel(identifier.Name); exists {
		p.errorAt(identifier.Idx, "Label '%s' has already been declared", identifier.Name)
	}
	var loop bool
	switch p.currentKind() {
	case token.For, token.While, token.Do:
		loop = true
	}
	p.scope.labels = append(p.scope.labels, label{name: identifier.Name, loop: loop})
	statement := p.parseStatement()
	p.scope.labels = p.scope.labels[:len(p.scope.labels)-1]
	return &ast.LabelledStatement{
		Label:     identifier,
		Colon:     colon,
		Statement: &ast.Statement{Stmt: statement},
	}
}

func (p *parser) parseTryStatement() ast.Stmt {
	node := &ast.TryStatement{
		Try:  p.expect(token.Try),
		Body: p.parseBlockStatement(),
	}

	if p.currentKind() == token.Catch {
		catch := p.currentOffset()
		p.next()
		var parameter *ast.Identifier
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			parameter = p.parseIdentifier()
			p.expect(token.RightParenthesis)
		}
		node.Catch = &ast.CatchStatement{
			Catch:     catch,
			Parameter: parameter,
			Body:      p.parseBlockStatement(),
		}
	}

	if p.currentKind() == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}

	if node.Catch == nil && node.Finally == nil {
		p.errorf("Missing catch or finally after try")
	}

	return node
}

func (p *parser) parseFunctionParameterList() ast.ParameterList {
	opening := p.expect(token.LeftParenthesis)
	var list []*ast.Identifier
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		list = append(list, p.parseIdentifier())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	closing := p.expect(token.RightParenthesis)

	return ast.ParameterList{
		Opening: opening,
		List:    list,
		Closing: closing,
	}
}

// parseFunction parses a function declaration or expression starting at the
// `function` keyword. Declarations require a name.
func (p *parser) parseFunction(declaration bool) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function: p.expect(token.Function),
	}

	if p.currentKind() == token.Identifier {
		node.Name = p.parseIdentifier()
	} else if declaration {
		p.errorExpected(token.Identifier)
	}

	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseFunctionBlock()
	if p.err == nil {
		node.Source = p.str[node.Function:node.Body.Idx1()]
	}
	return node
}

func (p *parser) parseFunctionBlock() *ast.BlockStatement {
	p.openScope()
	p.scope.inFunction = true
	defer p.closeScope()
	return p.parseBlockStatement()
}

func (p *parser) parseVariableStatement() ast.Stmt {
	decl := p.parseVariableDeclarationList()
	p.checkConstInitializers(decl)
	p.semicolon()
	return decl
}

// parseVariableDeclarationList parses `var|let|const a = 1, b`. The const
// initializer check is left to the caller since a for-in head may omit it.
func (p *parser) parseVariableDeclarationList() *ast.VariableDeclaration {
	node := &ast.VariableDeclaration{
		Idx:   p.currentOffset(),
		Token: p.currentKind(),
	}
	p.next()

	for {
		target := p.parseIdentifier()
		declarator := ast.VariableDeclarator{Target: target}
		if p.currentKind() == token.Assign {
			p.next()
			declarator.Initializer = p.parseAssignmentExpression()
		}
		node.List = append(node.List, declarator)
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	return node
}

func (p *parser) checkConstInitializers(decl *ast.VariableDeclaration) {
	if decl.Token != token.Const {
		return
	}
	for _, d := range decl.List {
		if d.Initializer == nil {
			p.errorAt(d.Target.Idx, "Missing initializer in const declaration")
			return
		}
	}
}

func (p *parser) parseIfStatement() ast.Stmt {
	node := &ast.IfStatement{
		If: p.expect(token.If),
	}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)

	node.Consequent = &ast.Statement{Stmt: p.parseStatement()}
	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = &ast.Statement{Stmt: p.parseStatement()}
	}
	return node
}

func (p *parser) parseIterationBody() *ast.Statement {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	defer func() {
		p.scope.inIteration = inIteration
	}()
	return &ast.Statement{Stmt: p.parseStatement()}
}

func (p *parser) parseWhileStatement() ast.Stmt {
	node := &ast.WhileStatement{
		While: p.expect(token.While),
	}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return node
}

func (p *parser) parseDoWhileStatement() ast.Stmt {
	node := &ast.DoWhileStatement{
		Do: p.expect(token.Do),
	}
	node.Body = p.parseIterationBody()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	node.RightParenthesis = p.expect(token.RightParenthesis)
	if p.currentKind() == token.Semicolon {
		p.next()
	}
	return node
}

func (p *parser) parseForOrForInStatement() ast.Stmt {
	idx := p.expect(token.For)
	p.expect(token.LeftParenthesis)

	var initializer ast.ForLoopInit
	switch p.currentKind() {
	case token.Semicolon:
	case token.Var, token.Let, token.Const:
		restore := p.allowIn(false)
		decl := p.parseVariableDeclarationList()
		restore()
		if p.currentKind() == token.In {
			if len(decl.List) != 1 || decl.List[0].Initializer != nil {
				p.errorAt(decl.Idx, "Invalid left-hand side in for-in loop: must have a single binding")
			}
			return p.parseForIn(idx, &ast.ForInto{Into: decl})
		}
		p.checkConstInitializers(decl)
		initializer = decl
	default:
		restore := p.allowIn(false)
		expr := p.parseExpression()
		restore()
		if p.currentKind() == token.In {
			if !expr.IsReference() {
				p.errorAt(expr.Idx0(), "Invalid left-hand side in for-in")
			}
			return p.parseForIn(idx, &ast.ForInto{Into: expr})
		}
		initializer = expr
	}

	node := &ast.ForStatement{For: idx}
	if initializer != nil {
		node.Initializer = &ast.ForLoopInitializer{Initializer: initializer}
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return node
}

func (p *parser) parseForIn(idx ast.Idx, into *ast.ForInto) ast.Stmt {
	p.expect(token.In)
	source := p.parseExpression()
	p.expect(token.RightParenthesis)
	return &ast.ForInStatement{
		For:    idx,
		Into:   into,
		Source: source,
		Body:   p.parseIterationBody(),
	}
}

// parseJumpLabel parses the optional label of break/continue. A label must be
// on the same line as the keyword.
func (p *parser) parseJumpLabel() *ast.Identifier {
	if p.currentKind() != token.Identifier || p.token.OnNewLine {
		return nil
	}
	return p.parseIdentifier()
}

func (p *parser) parseBreakStatement() ast.Stmt {
	node := &ast.BreakStatement{Idx: p.expect(token.Break)}
	node.Label = p.parseJumpLabel()
	if node.Label != nil {
		if _, ok := p.scope.findLabel(node.Label.Name); !ok {
			p.errorAt(node.Label.Idx, "Undefined label '%s'", node.Label.Name)
		}
	} else if !p.scope.inIteration && !p.scope.inSwitch {
		p.errorAt(node.Idx, "Illegal break statement")
	}
	p.semicolon()
	return node
}

func (p *parser) parseContinueStatement() ast.Stmt {
	node := &ast.ContinueStatement{Idx: p.expect(token.Continue)}
	node.Label = p.parseJumpLabel()
	if !p.scope.inIteration {
		p.errorAt(node.Idx, "Illegal continue statement: no surrounding iteration statement")
	} else if node.Label != nil {
		l, ok := p.scope.findLabel(node.Label.Name)
		if !ok {
			p.errorAt(node.Label.Idx, "Undefined label '%s'", node.Label.Name)
		} else if !l.loop {
			p.errorAt(node.Label.Idx, "Illegal continue statement: '%s' does not denote an iteration statement", node.Label.Name)
		}
	}
	p.semicolon()
	return node
}

func (p *parser) parseReturnStatement() ast.Stmt {
	node := &ast.ReturnStatement{Return: p.expect(token.Return)}
	if !p.scope.inFunction {
		p.errorAt(node.Return, "Illegal return statement")
	}
	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}
	p.semicolon()
	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	node := &ast.ThrowStatement{Throw: p.expect(token.Throw)}
	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
		return node
	}
	node.Argument = p.parseExpression()
	p.semicolon()
	return node
}

func (p *parser) parseSwitchStatement() ast.Stmt {
	node := &ast.SwitchStatement{
		Switch:  p.expect(token.Switch),
		Default: -1,
	}
	p.expect(token.LeftParenthesis)
	node.Discriminant = p.parseExpression()
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	inSwitch := p.scope.inSwitch
	p.scope.inSwitch = true
	defer func() {
		p.scope.inSwitch = inSwitch
	}()

	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		clause := ast.CaseStatement{Case: p.currentOffset()}
		switch p.currentKind() {
		case token.Case:
			p.next()
			clause.Test = p.parseExpression()
		case token.Default:
			if node.Default != -1 {
				p.errorf("More than one default clause in switch statement")
			}
			node.Default = len(node.Body)
			p.next()
		default:
			p.errorUnexpectedToken()
			return node
		}
		p.expect(token.Colon)
		for k := p.currentKind(); k != token.Case && k != token.Default && k != token.RightBrace && k != token.Eof; k = p.currentKind() {
			clause.Consequent = append(clause.Consequent, ast.Statement{Stmt: p.parseStatement()})
		}
		node.Body = append(node.Body, clause)
	}
	node.RightBrace = p.expect(token.RightBrace)
	return node
}
