package scanner

import (
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

// Scanner produces tokens lazily from a source buffer. Each call to Next
// advances past exactly the characters of the returned token (plus any
// whitespace and comments preceding it).
type Scanner struct {
	Token Token

	src Source
	err *Error
}

// New returns a scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{
		src: NewSource(src),
	}
}

// Next scans and returns the next token. At the end of input it keeps
// returning an Eof token. After a lexical error it returns Illegal tokens and
// Err reports the error.
func (s *Scanner) Next() Token {
	if s.err != nil {
		s.Token = Token{Kind: token.Illegal, Idx0: s.err.Start, Idx1: s.err.End}
		return s.Token
	}
	s.next()
	if s.err != nil {
		s.Token.Kind = token.Illegal
	}
	return s.Token
}

// Err returns the first lexical error encountered, if any.
func (s *Scanner) Err() *Error {
	return s.err
}

func (s *Scanner) error(err *Error) {
	if s.err == nil {
		s.err = err
	}
}

type Checkpoint struct {
	pos ast.Idx
	tok Token
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos: s.src.Offset(),
		tok: s.Token,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.SetPosition(c.pos)
	s.Token = c.tok
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) ConsumeByte() byte {
	return s.src.NextByteUnchecked()
}

func (s *Scanner) PeekRune() (rune, bool) {
	return s.src.PeekRune()
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}
