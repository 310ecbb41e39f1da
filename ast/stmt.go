package ast

type (
	Statements []Statement

	Statement struct {
		Stmt
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx

		// Declarations is filled in by the resolver.
		Declarations *Declarations
	}

	BreakStatement struct {
		Idx   Idx
		Label *Identifier
	}

	ContinueStatement struct {
		Idx   Idx
		Label *Identifier
	}

	CaseStatement struct {
		Case       Idx
		Test       *Expression // nil for default
		Consequent Statements
	}

	CatchStatement struct {
		Catch     Idx
		Parameter *Identifier // nil for `catch {`
		Body      *BlockStatement
	}

	DoWhileStatement struct {
		Do               Idx
		Test             *Expression
		Body             *Statement
		RightParenthesis Idx
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement
	}

	LabelledStatement struct {
		Label     *Identifier
		Colon     Idx
		Statement *Statement
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression
	}

	SwitchStatement struct {
		Switch       Idx
		Discriminant *Expression
		Default      int // index of the default clause in Body, or -1
		Body         []CaseStatement
		RightBrace   Idx

		// Declarations is filled in by the resolver.
		Declarations *Declarations
	}

	ThrowStatement struct {
		Throw    Idx
		Argument *Expression
	}

	TryStatement struct {
		Try     Idx
		Body    *BlockStatement
		Catch   *CatchStatement
		Finally *BlockStatement
	}

	WhileStatement struct {
		While Idx
		Test  *Expression
		Body  *Statement
	}

	ForStatement struct {
		For         Idx
		Initializer *ForLoopInitializer
		Test        *Expression
		Update      *Expression
		Body        *Statement
	}

	ForLoopInitializer struct {
		Initializer ForLoopInit
	}

	// ForLoopInit is a *VariableDeclaration or an *Expression.
	ForLoopInit interface {
		_forLoopInitializer()
	}

	ForInStatement struct {
		For    Idx
		Into   *ForInto
		Source *Expression
		Body   *Statement
	}

	ForInto struct {
		Into
	}

	// Into is a *VariableDeclaration with a single declarator, or an
	// *Expression that is a valid assignment target.
	Into interface {
		_forInto()
	}
)

func (*VariableDeclaration) _forLoopInitializer() {}
func (*Expression) _forLoopInitializer()          {}

func (*VariableDeclaration) _forInto() {}
func (*Expression) _forInto()          {}

func (*BlockStatement) _stmt()      {}
func (*BreakStatement) _stmt()      {}
func (*CaseStatement) _stmt()       {}
func (*ContinueStatement) _stmt()   {}
func (*CatchStatement) _stmt()      {}
func (*DoWhileStatement) _stmt()    {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*ForInStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*IfStatement) _stmt()         {}
func (*LabelledStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*WhileStatement) _stmt()      {}
