package scanner

import (
	"strings"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

// scanStringLiteral scans a quoted string and stores its decoded value on the
// token. A raw line terminator or the end of input before the closing quote
// is an unterminated string.
func (s *Scanner) scanStringLiteral(delim byte) token.Token {
	s.ConsumeByte()
	afterOpen := s.src.Offset()

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(s.Token.Idx0, s.src.Offset()))
			return token.Illegal
		}
		if b == delim {
			s.Token.Value = s.src.FromPositionToCurrent(afterOpen)
			s.ConsumeByte()
			return token.String
		}
		if b == '\\' {
			return s.scanStringLiteralEscaped(delim, afterOpen)
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) scanStringLiteralEscaped(delim byte, afterOpen ast.Idx) token.Token {
	str := &strings.Builder{}
	soFar := s.src.FromPositionToCurrent(afterOpen)
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(s.Token.Idx0, s.src.Offset()))
			return token.Illegal
		}
		switch b {
		case delim:
			s.ConsumeByte()
			s.Token.Value = str.String()
			return token.String
		case '\\':
			escapeStart := s.src.Offset()
			s.ConsumeByte()
			if !s.readStringEscapeSequence(str) {
				s.error(invalidEscapeSequence(escapeStart, s.src.Offset()))
				return token.Illegal
			}
		default:
			c := s.ConsumeRune()
			str.WriteRune(c)
		}
	}
}

// readStringEscapeSequence decodes the escape after a consumed backslash.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder) bool {
	c, ok := s.src.NextRune()
	if !ok {
		return false
	}
	switch c {
	case 'n':
		str.WriteByte('\n')
	case 't':
		str.WriteByte('\t')
	case 'r':
		str.WriteByte('\r')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'v':
		str.WriteByte('\v')
	case '0':
		if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
			return false
		}
		str.WriteByte(0)
	case 'x':
		value, ok := s.hexDigits(2)
		if !ok {
			return false
		}
		str.WriteRune(value)
	case 'u':
		value, ok := s.unicodeEscape()
		if !ok {
			return false
		}
		str.WriteRune(value)
	case '\r':
		// Line continuation.
		s.AdvanceIfByteEquals('\n')
	case '\n', '\u2028', '\u2029':
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return false
	default:
		str.WriteRune(c)
	}
	return true
}
