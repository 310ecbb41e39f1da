package scanner

import (
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

type punctuator struct {
	text string
	kind token.Token
}

// punctuators holds the operator spellings keyed by first byte.
var punctuators [128][]punctuator

func init() {
	for _, p := range []punctuator{
		{"(", token.LeftParenthesis}, {")", token.RightParenthesis},
		{"[", token.LeftBracket}, {"]", token.RightBracket},
		{"{", token.LeftBrace}, {"}", token.RightBrace},
		{",", token.Comma}, {":", token.Colon}, {";", token.Semicolon},
		{"?", token.QuestionMark}, {"~", token.BitwiseNot},
		{"!", token.Not}, {"!=", token.NotEqual}, {"!==", token.StrictNotEqual},
		{"=", token.Assign}, {"==", token.Equal}, {"===", token.StrictEqual},
		{"%", token.Remainder}, {"%=", token.RemainderAssign},
		{"*", token.Multiply}, {"*=", token.MultiplyAssign},
		{"/", token.Slash}, {"/=", token.QuotientAssign},
		{"^", token.ExclusiveOr}, {"^=", token.ExclusiveOrAssign},
		{"&", token.And}, {"&&", token.LogicalAnd}, {"&=", token.AndAssign},
		{"|", token.Or}, {"||", token.LogicalOr}, {"|=", token.OrAssign},
		{"+", token.Plus}, {"++", token.Increment}, {"+=", token.AddAssign},
		{"-", token.Minus}, {"--", token.Decrement}, {"-=", token.SubtractAssign},
		{"<", token.Less}, {"<=", token.LessOrEqual},
		{"<<", token.ShiftLeft}, {"<<=", token.ShiftLeftAssign},
		{">", token.Greater}, {">=", token.GreaterOrEqual},
		{">>", token.ShiftRight}, {">>=", token.ShiftRightAssign},
		{">>>", token.UnsignedShiftRight}, {">>>=", token.UnsignedShiftRightAssign},
	} {
		punctuators[p.text[0]] = append(punctuators[p.text[0]], p)
	}
}

// scanPunctuator consumes the longest operator starting at the cursor.
func (s *Scanner) scanPunctuator(candidates []punctuator) token.Token {
	best := punctuator{kind: token.Illegal}
	for _, p := range candidates {
		if len(p.text) > len(best.text) && s.src.HasPrefix(p.text) {
			best = p
		}
	}
	s.src.pos += ast.Idx(len(best.text))
	return best.kind
}

func (s *Scanner) readDot() token.Token {
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		return s.decLitAfterDecPointAfterDigits()
	}
	return token.Period
}
