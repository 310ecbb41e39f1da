package scanner

import (
	"fmt"

	"github.com/t14raptor/fastscript/ast"
)

// Error is a lexical error: a malformed token at [Start, End).
type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (d *Error) Error() string {
	return d.Message
}

func invalidCharacter(c rune, start, end ast.Idx) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid character `%c`", c),
		Start:   start,
		End:     end,
	}
}

func unterminatedString(start, end ast.Idx) *Error {
	return &Error{
		Message: "Unterminated string",
		Start:   start,
		End:     end,
	}
}

func unterminatedMultiLineComment(start, end ast.Idx) *Error {
	return &Error{
		Message: "Unterminated multiline comment",
		Start:   start,
		End:     end,
	}
}

func invalidEscapeSequence(start, end ast.Idx) *Error {
	return &Error{
		Message: "Invalid escape sequence",
		Start:   start,
		End:     end,
	}
}

func invalidNumberEnd(start, end ast.Idx) *Error {
	return &Error{
		Message: "Invalid characters after number",
		Start:   start,
		End:     end,
	}
}

func invalidNumber(start, end ast.Idx) *Error {
	return &Error{
		Message: "Invalid or unexpected numeric literal",
		Start:   start,
		End:     end,
	}
}
