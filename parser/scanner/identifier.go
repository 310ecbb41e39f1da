package scanner

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
	"github.com/t14raptor/fastscript/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return unicodeid.IsIDContinueUnicode(chr) || chr == '\u200C' || chr == '\u200D'
}

// IsIdentifierName reports whether s can be written as an identifier name,
// such as an unquoted property key.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentifierStart(r) || i > 0 && !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

// scanIdentifier scans an identifier or keyword whose first character is at
// the cursor and is known to be an identifier start.
func (s *Scanner) scanIdentifier() token.Token {
	start := s.src.Offset()
	s.ConsumeRune()

	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}
		if b < utf8.RuneSelf {
			if !asciiContinue[b] {
				break
			}
			s.ConsumeByte()
			continue
		}
		c, _ := s.PeekRune()
		if !isIdentifierPart(c) {
			break
		}
		s.ConsumeRune()
	}

	name := s.src.FromPositionToCurrent(start)
	s.Token.Value = name
	if kw, ok := token.LiteralKeyword(name); ok {
		return kw
	}
	return token.Identifier
}
