package ast

// VisitableNode is a node that can be walked with a Visitor.
type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// Visitor has one method per node type. Embed NoopVisitor and override the
// methods of interest; call VisitChildrenWith to keep descending.
type Visitor interface {
	VisitProgram(n *Program)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitAssignExpression(n *AssignExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitCallExpression(n *CallExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitIdentifier(n *Identifier)
	VisitMemberExpression(n *MemberExpression)
	VisitNewExpression(n *NewExpression)
	VisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitProperty(n *Property)
	VisitSequenceExpression(n *SequenceExpression)
	VisitStringLiteral(n *StringLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUndefinedLiteral(n *UndefinedLiteral)
	VisitUpdateExpression(n *UpdateExpression)
	VisitExpression(n *Expression)
	VisitExpressions(n *Expressions)
	VisitStatement(n *Statement)
	VisitStatements(n *Statements)
	VisitBlockStatement(n *BlockStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitCaseStatement(n *CaseStatement)
	VisitCatchStatement(n *CatchStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitDoWhileStatement(n *DoWhileStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitForInStatement(n *ForInStatement)
	VisitForStatement(n *ForStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitIfStatement(n *IfStatement)
	VisitLabelledStatement(n *LabelledStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitWhileStatement(n *WhileStatement)
}

// NoopVisitor walks every child. V must be set to the embedding visitor so
// that overridden methods are reached.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIdentifier(n *Identifier) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNewExpression(n *NewExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitProperty(n *Property) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUndefinedLiteral(n *UndefinedLiteral) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpression(n *Expression) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressions(n *Expressions) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStatement(n *Statement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStatements(n *Statements) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCaseStatement(n *CaseStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCatchStatement(n *CatchStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDoWhileStatement(n *DoWhileStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForStatement(n *ForStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIfStatement(n *IfStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitLabelledStatement(n *LabelledStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSwitchStatement(n *SwitchStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTryStatement(n *TryStatement) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) {
	n.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement) {
	n.VisitChildrenWith(nv.V)
}

func (n *Expression) VisitWith(v Visitor) {
	v.VisitExpression(n)
}

func (n *Expression) VisitChildrenWith(v Visitor) {
	if n == nil || n.Expr == nil {
		return
	}
	n.Expr.(VisitableNode).VisitWith(v)
}

func (n *Expressions) VisitWith(v Visitor) {
	v.VisitExpressions(n)
}

func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitExpression(&(*n)[i])
	}
}

func (n *Statement) VisitWith(v Visitor) {
	v.VisitStatement(n)
}

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n == nil || n.Stmt == nil {
		return
	}
	n.Stmt.(VisitableNode).VisitWith(v)
}

func (n *Statements) VisitWith(v Visitor) {
	v.VisitStatements(n)
}

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitStatement(&(*n)[i])
	}
}

func (n *Program) VisitWith(v Visitor) {
	v.VisitProgram(n)
}

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *ArrayLiteral) VisitWith(v Visitor) {
	v.VisitArrayLiteral(n)
}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *AssignExpression) VisitWith(v Visitor) {
	v.VisitAssignExpression(n)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) {
	v.VisitBinaryExpression(n)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BooleanLiteral) VisitWith(v Visitor) {
	v.VisitBooleanLiteral(n)
}

func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *CallExpression) VisitWith(v Visitor) {
	v.VisitCallExpression(n)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ConditionalExpression) VisitWith(v Visitor) {
	v.VisitConditionalExpression(n)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *FunctionLiteral) VisitWith(v Visitor) {
	v.VisitFunctionLiteral(n)
}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	for _, param := range n.ParameterList.List {
		param.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *Identifier) VisitWith(v Visitor) {
	v.VisitIdentifier(n)
}

func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *MemberExpression) VisitWith(v Visitor) {
	v.VisitMemberExpression(n)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *NewExpression) VisitWith(v Visitor) {
	v.VisitNewExpression(n)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *NullLiteral) VisitWith(v Visitor) {
	v.VisitNullLiteral(n)
}

func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor) {
	v.VisitNumberLiteral(n)
}

func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *ObjectLiteral) VisitWith(v Visitor) {
	v.VisitObjectLiteral(n)
}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *Property) VisitWith(v Visitor) {
	v.VisitProperty(n)
}

func (n *Property) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *SequenceExpression) VisitWith(v Visitor) {
	v.VisitSequenceExpression(n)
}

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *StringLiteral) VisitWith(v Visitor) {
	v.VisitStringLiteral(n)
}

func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *ThisExpression) VisitWith(v Visitor) {
	v.VisitThisExpression(n)
}

func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *UnaryExpression) VisitWith(v Visitor) {
	v.VisitUnaryExpression(n)
}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UndefinedLiteral) VisitWith(v Visitor) {
	v.VisitUndefinedLiteral(n)
}

func (n *UndefinedLiteral) VisitChildrenWith(v Visitor) {}

func (n *UpdateExpression) VisitWith(v Visitor) {
	v.VisitUpdateExpression(n)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *BlockStatement) VisitWith(v Visitor) {
	v.VisitBlockStatement(n)
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *BreakStatement) VisitWith(v Visitor) {
	v.VisitBreakStatement(n)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {}

func (n *CaseStatement) VisitWith(v Visitor) {
	v.VisitCaseStatement(n)
}

func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	n.Consequent.VisitWith(v)
}

func (n *CatchStatement) VisitWith(v Visitor) {
	v.VisitCatchStatement(n)
}

func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	if n.Parameter != nil {
		n.Parameter.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ContinueStatement) VisitWith(v Visitor) {
	v.VisitContinueStatement(n)
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {}

func (n *DoWhileStatement) VisitWith(v Visitor) {
	v.VisitDoWhileStatement(n)
}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor) {
	v.VisitEmptyStatement(n)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) {
	v.VisitExpressionStatement(n)
}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) {
	v.VisitForInStatement(n)
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	switch into := n.Into.Into.(type) {
	case *VariableDeclaration:
		into.VisitWith(v)
	case *Expression:
		into.VisitWith(v)
	}
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) {
	v.VisitForStatement(n)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		switch init := n.Initializer.Initializer.(type) {
		case *VariableDeclaration:
			init.VisitWith(v)
		case *Expression:
			init.VisitWith(v)
		}
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *FunctionDeclaration) VisitWith(v Visitor) {
	v.VisitFunctionDeclaration(n)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) {
	v.VisitIfStatement(n)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *LabelledStatement) VisitWith(v Visitor) {
	v.VisitLabelledStatement(n)
}

func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	n.Statement.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) {
	v.VisitReturnStatement(n)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitWith(v Visitor) {
	v.VisitSwitchStatement(n)
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *ThrowStatement) VisitWith(v Visitor) {
	v.VisitThrowStatement(n)
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *TryStatement) VisitWith(v Visitor) {
	v.VisitTryStatement(n)
}

func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	if n.Catch != nil {
		n.Catch.VisitWith(v)
	}
	if n.Finally != nil {
		n.Finally.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitWith(v Visitor) {
	v.VisitVariableDeclaration(n)
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) {
	v.VisitVariableDeclarator(n)
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) {
	v.VisitWhileStatement(n)
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}
