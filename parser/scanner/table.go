package scanner

import (
	"unicode"

	"github.com/nukilabs/unicodeid"
	"github.com/t14raptor/fastscript/token"
)

func (s *Scanner) next() {
	s.Token = Token{OnNewLine: s.Token.Kind == 0}

	for {
		s.Token.Idx0 = s.src.pos

		b, ok := s.src.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		switch b {
		// ---- Whitespace ----
		case '\t', ' ', 0x0B, 0x0C:
			s.skipWhitespace()
			continue

		case '\n', '\r':
			s.handleLineBreak()
			continue

		case '.':
			s.ConsumeByte()
			s.Token.Kind = s.readDot()

		case '/':
			if next, _ := s.src.PeekByteAt(1); next == '/' || next == '*' {
				s.src.pos += 2
				if next == '/' {
					s.skipSingleLineComment()
					continue
				}
				if s.skipMultiLineComment() {
					s.Token.OnNewLine = true
				}
				if s.err != nil {
					s.Token.Kind = token.Illegal
					break
				}
				continue
			}
			s.Token.Kind = s.scanPunctuator(punctuators[b])

		// ---- Literals ----
		case '"':
			s.Token.Kind = s.scanStringLiteral('"')
		case '\'':
			s.Token.Kind = s.scanStringLiteral('\'')

		case '0':
			s.ConsumeByte()
			s.Token.Kind = s.readZero()
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			s.ConsumeByte()
			s.Token.Kind = s.decimalLiteralAfterFirstDigit()

		default:
			switch {
			case b < 0x80 && punctuators[b] != nil:
				s.Token.Kind = s.scanPunctuator(punctuators[b])
			case b < 0x80 && asciiStart[b]:
				s.Token.Kind = s.scanIdentifier()
			case b >= 0x80:
				c, _ := s.PeekRune()
				switch {
				case unicodeid.IsIDStartUnicode(c):
					s.Token.Kind = s.scanIdentifier()
				case isLineTerminator(c):
					s.ConsumeRune()
					s.Token.OnNewLine = true
					continue
				case unicode.IsSpace(c) || c == '\uFEFF':
					s.ConsumeRune()
					continue
				default:
					start := s.src.Offset()
					s.ConsumeRune()
					s.error(invalidCharacter(c, start, s.src.Offset()))
					s.Token.Kind = token.Illegal
				}
			default:
				start := s.src.Offset()
				c := s.ConsumeRune()
				s.error(invalidCharacter(c, start, s.src.Offset()))
				s.Token.Kind = token.Illegal
			}
		}
		break
	}
	s.Token.Idx1 = s.src.pos
	s.Token.Literal = s.src.Slice(s.Token.Idx0, s.Token.Idx1)
}
