package parser

import (
	"fmt"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/parser/scanner"
	"github.com/t14raptor/fastscript/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// Error is a syntax error. Lexical errors are reported as an Error whose
// cause is the *scanner.Error.
type Error struct {
	Message string
	// Expected names the token or construct the parser required, if any.
	Expected string
	// Found is the offending token as written in the source.
	Found    string
	Position token.Position

	cause error
}

func (e *Error) Error() string {
	if e.Position.IsValid() {
		return fmt.Sprintf("%s: %s", e.Position, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (p *parser) errorAt(idx ast.Idx, msg string, msgValues ...any) {
	if p.err != nil {
		return
	}
	p.err = &Error{
		Message:  fmt.Sprintf(msg, msgValues...),
		Found:    p.token.String(),
		Position: p.file.Position(int(idx)),
	}
	p.token = scanner.Token{Kind: token.Eof, Idx0: p.token.Idx0, Idx1: p.token.Idx0}
}

func (p *parser) errorf(msg string, msgValues ...any) {
	p.errorAt(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorLex(err *scanner.Error) {
	if p.err != nil || err == nil {
		return
	}
	p.err = &Error{
		Message:  err.Message,
		Found:    p.file.Source()[err.Start:err.End],
		Position: p.file.Position(int(err.Start)),
		cause:    err,
	}
	p.token = scanner.Token{Kind: token.Eof, Idx0: err.Start, Idx1: err.Start}
}

func (p *parser) errorUnexpectedToken() {
	switch p.currentKind() {
	case token.Eof:
		p.errorf(errUnexpectedEndOfInput)
	case token.Identifier:
		p.errorf("Unexpected identifier")
	case token.Number:
		p.errorf("Unexpected number")
	case token.String:
		p.errorf("Unexpected string")
	default:
		if token.IsKeyword(p.currentKind()) {
			p.errorf("Unexpected token %s", p.token.Value)
			return
		}
		p.errorf(errUnexpectedToken, p.currentKind())
	}
}

func (p *parser) errorExpected(want token.Token) {
	p.errorExpecting(want.String())
}

// errorExpecting reports the current token as unexpected where the named
// construct was required.
func (p *parser) errorExpecting(what string) {
	if p.err != nil {
		return
	}
	p.errorUnexpectedToken()
	p.err.Expected = what
}
