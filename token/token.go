package token

import (
	"strconv"
)

// Token is the set of lexical tokens of the scripting language.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binary precedence of the operator, used by the
// generator to decide where parentheses are needed. Zero means the token is
// not a binary operator.
func (t Token) Precedence() int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Or:
		return 3
	case ExclusiveOr:
		return 4
	case And:
		return 5
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf, In:
		return 7
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 8
	case Plus, Minus:
		return 9
	case Multiply, Slash, Remainder:
		return 10
	}
	return 0
}

// IsAssign reports whether the token is `=` or a compound assignment operator.
func (t Token) IsAssign() bool {
	return t == Assign || (t >= AddAssign && t <= UnsignedShiftRightAssign)
}

// BinaryOf returns the binary operator a compound assignment applies, e.g.
// Plus for AddAssign. It returns 0 for tokens that are not compound
// assignments.
func (t Token) BinaryOf() Token {
	switch t {
	case AddAssign:
		return Plus
	case SubtractAssign:
		return Minus
	case MultiplyAssign:
		return Multiply
	case QuotientAssign:
		return Slash
	case RemainderAssign:
		return Remainder
	case AndAssign:
		return And
	case OrAssign:
		return Or
	case ExclusiveOrAssign:
		return ExclusiveOr
	case ShiftLeftAssign:
		return ShiftLeft
	case ShiftRightAssign:
		return ShiftRight
	case UnsignedShiftRightAssign:
		return UnsignedShiftRight
	}
	return 0
}

// LiteralKeyword returns the keyword token for literal, or false if the
// literal is an ordinary identifier.
func LiteralKeyword(literal string) (Token, bool) {
	if tkn, exists := keywordTable[literal]; exists {
		return tkn, true
	}
	return 0, false
}

// IsKeyword reports whether the token is a reserved word.
func IsKeyword(t Token) bool {
	return t > Identifier
}
