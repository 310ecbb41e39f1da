package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/fastscript/ast"
)

// Source is a read cursor over a source buffer.
type Source struct {
	str string
	pos ast.Idx
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return int(s.pos) >= len(s.str)
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) EndOffset() ast.Idx {
	return ast.Idx(len(s.str))
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = pos
}

func (s *Source) NextRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	if b < utf8.RuneSelf {
		s.pos++
		return rune(b), true
	}
	chr, size := utf8.DecodeRuneInString(s.str[s.pos:])
	s.pos += ast.Idx(size)
	return chr, true
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	if b < utf8.RuneSelf {
		return rune(b), true
	}
	chr, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return chr, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.NextByteUnchecked(), true
}

func (s *Source) NextByteUnchecked() byte {
	b := s.str[s.pos]
	s.pos++
	return b
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n positions ahead of the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	i := int(s.pos) + n
	if i >= len(s.str) {
		return 0, false
	}
	return s.str[i], true
}

func (s *Source) AdvanceIfByteEquals(b byte) (matched bool) {
	nextB, ok := s.PeekByte()
	if ok && nextB == b {
		s.pos++
		return true
	}
	return false
}

// HasPrefix reports whether the unread input starts with prefix.
func (s *Source) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.str[s.pos:], prefix)
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}
