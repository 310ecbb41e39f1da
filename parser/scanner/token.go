package scanner

import (
	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/token"
)

// Token is one lexical unit. Tokens are values; the scanner never mutates a
// token it has already returned.
type Token struct {
	Kind token.Token

	// Literal is the raw source text of the token.
	Literal string
	// Value is the identifier name, or the decoded contents of a string
	// literal.
	Value string
	// Number is the parsed value of a numeric literal.
	Number float64

	// OnNewLine is set when a line terminator precedes the token.
	OnNewLine bool

	Idx0, Idx1 ast.Idx
}

func (t Token) String() string {
	switch t.Kind {
	case token.Eof:
		return "end of input"
	case token.Identifier, token.String, token.Number:
		return t.Literal
	}
	return t.Kind.String()
}
