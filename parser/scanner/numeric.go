package scanner

import (
	"errors"
	"strconv"

	"github.com/t14raptor/fastscript/token"
)

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func digitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return int(b - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

func (s *Scanner) readZero() token.Token {
	b, ok := s.PeekByte()
	if !ok {
		return s.checkAfterNumericLiteral(10)
	}

	switch b {
	case 'b', 'B':
		return s.readNonDecimal(2)
	case 'o', 'O':
		return s.readNonDecimal(8)
	case 'x', 'X':
		return s.readNonDecimal(16)
	case 'e', 'E':
		if !s.readDecExp() {
			return token.Illegal
		}
		return s.checkAfterNumericLiteral(10)
	case '.':
		s.ConsumeByte()
		return s.decLitAfterDecPointAfterDigits()
	}
	if isDecimalDigit(b) {
		// Legacy octal literals are not supported.
		s.readDecimalDigits()
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
		return token.Illegal
	}
	return s.checkAfterNumericLiteral(10)
}

func (s *Scanner) decimalLiteralAfterFirstDigit() token.Token {
	s.readDecimalDigits()
	if s.AdvanceIfByteEquals('.') {
		return s.decLitAfterDecPointAfterDigits()
	}
	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		if !s.readDecExp() {
			return token.Illegal
		}
	}
	return s.checkAfterNumericLiteral(10)
}

// decLitAfterDecPointAfterDigits scans the fraction and exponent after a
// consumed dot.
func (s *Scanner) decLitAfterDecPointAfterDigits() token.Token {
	s.readDecimalDigits()
	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		if !s.readDecExp() {
			return token.Illegal
		}
	}
	return s.checkAfterNumericLiteral(10)
}

func (s *Scanner) readNonDecimal(base int) token.Token {
	s.ConsumeByte() // b, o or x

	if b, ok := s.PeekByte(); !ok || digitValue(b) >= base {
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
		return token.Illegal
	}
	for {
		b, ok := s.PeekByte()
		if !ok || digitValue(b) >= base {
			break
		}
		s.ConsumeByte()
	}
	return s.checkAfterNumericLiteral(base)
}

// readDecExp consumes an exponent part starting at `e`/`E`.
func (s *Scanner) readDecExp() bool {
	s.ConsumeByte()
	if b, ok := s.PeekByte(); ok && (b == '-' || b == '+') {
		s.ConsumeByte()
	}
	if b, ok := s.PeekByte(); !ok || !isDecimalDigit(b) {
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
		return false
	}
	s.readDecimalDigits()
	return true
}

func (s *Scanner) readDecimalDigits() {
	for {
		b, ok := s.PeekByte()
		if !ok || !isDecimalDigit(b) {
			return
		}
		s.ConsumeByte()
	}
}

// checkAfterNumericLiteral rejects identifier characters glued to a number
// (`3in`, `1_000`) and stores the numeric value on the token.
func (s *Scanner) checkAfterNumericLiteral(base int) token.Token {
	if c, ok := s.PeekRune(); ok && isIdentifierPart(c) {
		start := s.src.Offset()
		s.ConsumeRune()
		s.error(invalidNumberEnd(start, s.src.Offset()))
		return token.Illegal
	}

	literal := s.src.FromPositionToCurrent(s.Token.Idx0)
	value, err := ParseNumber(literal, base)
	if err != nil {
		s.error(invalidNumber(s.Token.Idx0, s.src.Offset()))
		return token.Illegal
	}
	s.Token.Number = value
	return token.Number
}

// ParseNumber converts a numeric literal to its float64 value. base must be
// 10 for decimal literals or 2, 8, 16 for prefixed ones.
func ParseNumber(literal string, base int) (float64, error) {
	if base != 10 {
		var value float64
		for i := 2; i < len(literal); i++ {
			digit := digitValue(literal[i])
			if digit >= base {
				return 0, errors.New("illegal numeric literal")
			}
			value = value*float64(base) + float64(digit)
		}
		return value, nil
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	// Out of range: ParseFloat already returned ±Inf or 0.
	return value, nil
}
