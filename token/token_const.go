package token

const (
	Undetermined Token = iota

	Illegal
	Eof

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	Assign          // =
	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=
	Not            // !
	BitwiseNot     // ~

	LeftParenthesis  // (
	LeftBracket      // [
	LeftBrace        // {
	Comma            // ,
	Period           // .
	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?

	Identifier

	Boolean
	Null
	Undefined

	If
	In
	Do

	Var
	Let
	For
	New
	Try

	This
	Else
	Case
	Void

	Const
	While
	Break
	Catch
	Throw

	Return
	Typeof
	Delete
	Switch

	Default
	Finally

	Function
	Continue

	InstanceOf
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	String:                   "String",
	Number:                   "Number",
	Identifier:               "Identifier",
	Boolean:                  "Boolean",
	Null:                     "null",
	Undefined:                "undefined",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	Assign:                   "=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	Less:                     "<",
	Greater:                  ">",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	Not:                      "!",
	BitwiseNot:               "~",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	If:                       "if",
	In:                       "in",
	Do:                       "do",
	Var:                      "var",
	Let:                      "let",
	For:                      "for",
	New:                      "new",
	Try:                      "try",
	This:                     "this",
	Else:                     "else",
	Case:                     "case",
	Void:                     "void",
	Const:                    "const",
	While:                    "while",
	Break:                    "break",
	Catch:                    "catch",
	Throw:                    "throw",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Switch:                   "switch",
	Default:                  "default",
	Finally:                  "finally",
	Function:                 "function",
	Continue:                 "continue",
	InstanceOf:               "instanceof",
}

var keywordTable = map[string]Token{
	"if":         If,
	"in":         In,
	"do":         Do,
	"var":        Var,
	"let":        Let,
	"for":        For,
	"new":        New,
	"try":        Try,
	"this":       This,
	"else":       Else,
	"case":       Case,
	"void":       Void,
	"const":      Const,
	"while":      While,
	"break":      Break,
	"catch":      Catch,
	"throw":      Throw,
	"return":     Return,
	"typeof":     Typeof,
	"delete":     Delete,
	"switch":     Switch,
	"default":    Default,
	"finally":    Finally,
	"function":   Function,
	"continue":   Continue,
	"instanceof": InstanceOf,
	"true":       Boolean,
	"false":      Boolean,
	"null":       Null,
	"undefined":  Undefined,
}
