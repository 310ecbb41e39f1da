package parser

import "github.com/t14raptor/fastscript/token"

// Precedence represents operator binding power for Pratt parsing.
//
// Values use a binding-power encoding where even values represent
// left-associative operators and odd values right-associative ones. The
// Pratt loop breaks when lbp <= minBP and the recursive call passes lbp ^ 1
// as the new minimum, so a left-assoc operator stops at its own level while a
// right-assoc one continues.
//
// Assignment and the conditional operator are right-associative and parsed by
// their own functions; their levels are listed for the generator.
//
// See: https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html
type Precedence uint8

const (
	PrecedenceLowest      Precedence = 0
	PrecedenceComma       Precedence = 2  // ,             (left-assoc)
	PrecedenceAssign      Precedence = 9  // = += -= etc   (right-assoc)
	PrecedenceConditional Precedence = 11 // ?:            (right-assoc)
	PrecedenceLogicalOr   Precedence = 14 // ||
	PrecedenceLogicalAnd  Precedence = 16 // &&
	PrecedenceBitwiseOr   Precedence = 18 // |
	PrecedenceBitwiseXor  Precedence = 20 // ^
	PrecedenceBitwiseAnd  Precedence = 22 // &
	PrecedenceEquals      Precedence = 24 // == != === !==
	PrecedenceCompare     Precedence = 26 // < > <= >= instanceof in
	PrecedenceShift       Precedence = 28 // << >> >>>
	PrecedenceAdd         Precedence = 30 // + -
	PrecedenceMultiply    Precedence = 32 // * / %
	PrecedencePrefix      Precedence = 36 // ! ~ + - ++ -- typeof void delete
	PrecedencePostfix     Precedence = 38 // ++ --
	PrecedenceNew         Precedence = 40 // new
	PrecedenceCall        Precedence = 42 // ()
	PrecedenceMember      Precedence = 44 // . []
)

// tokenPrecedence maps each token kind to its left binding power.
// Zero means the token is not a binary/logical operator.
var tokenPrecedence [256]Precedence

func init() {
	tokenPrecedence[token.LogicalOr] = PrecedenceLogicalOr
	tokenPrecedence[token.LogicalAnd] = PrecedenceLogicalAnd
	tokenPrecedence[token.Or] = PrecedenceBitwiseOr
	tokenPrecedence[token.ExclusiveOr] = PrecedenceBitwiseXor
	tokenPrecedence[token.And] = PrecedenceBitwiseAnd
	tokenPrecedence[token.Equal] = PrecedenceEquals
	tokenPrecedence[token.StrictEqual] = PrecedenceEquals
	tokenPrecedence[token.NotEqual] = PrecedenceEquals
	tokenPrecedence[token.StrictNotEqual] = PrecedenceEquals
	tokenPrecedence[token.Less] = PrecedenceCompare
	tokenPrecedence[token.Greater] = PrecedenceCompare
	tokenPrecedence[token.LessOrEqual] = PrecedenceCompare
	tokenPrecedence[token.GreaterOrEqual] = PrecedenceCompare
	tokenPrecedence[token.InstanceOf] = PrecedenceCompare
	tokenPrecedence[token.In] = PrecedenceCompare
	tokenPrecedence[token.ShiftLeft] = PrecedenceShift
	tokenPrecedence[token.ShiftRight] = PrecedenceShift
	tokenPrecedence[token.UnsignedShiftRight] = PrecedenceShift
	tokenPrecedence[token.Plus] = PrecedenceAdd
	tokenPrecedence[token.Minus] = PrecedenceAdd
	tokenPrecedence[token.Multiply] = PrecedenceMultiply
	tokenPrecedence[token.Slash] = PrecedenceMultiply
	tokenPrecedence[token.Remainder] = PrecedenceMultiply
}

// KindToPrecedence returns the left binding power for a token kind, or 0 if
// the token is not a binary/logical operator.
func KindToPrecedence(kind token.Token) Precedence {
	if kind < 0 || int(kind) >= len(tokenPrecedence) {
		return 0
	}
	return tokenPrecedence[kind]
}

// IsLogicalOperator reports whether the token is a short-circuiting
// operator.
func IsLogicalOperator(kind token.Token) bool {
	return kind == token.LogicalAnd || kind == token.LogicalOr
}
