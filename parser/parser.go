package parser

import (
	"errors"

	"github.com/t14raptor/fastscript/ast"
	"github.com/t14raptor/fastscript/parser/scanner"
	"github.com/t14raptor/fastscript/resolver"
	"github.com/t14raptor/fastscript/token"
)

type parser struct {
	str  string
	file *token.File

	scanner *scanner.Scanner
	token   scanner.Token

	scope *scope

	// err is the first error. Once it is set the token stream is pinned at
	// Eof so every parse loop unwinds.
	err *Error
}

func newParser(name, src string) *parser {
	return &parser{
		str:     src,
		file:    token.NewFile(name, src),
		scanner: scanner.New(src),
	}
}

// ParseFile parses the source code of a single script and returns the
// corresponding ast.Program node, annotated with its hoisted declarations.
// Parsing stops at the first error; no partial program is returned.
func ParseFile(src string) (*ast.Program, error) {
	return ParseNamed("", src)
}

// ParseNamed is ParseFile with a file name attached to the program, used when
// rendering diagnostics.
func ParseNamed(name, src string) (*ast.Program, error) {
	p := newParser(name, src)
	program := p.parse()
	if p.err != nil {
		return nil, p.err
	}
	if err := resolver.Resolve(program); err != nil {
		var rerr *resolver.Error
		if errors.As(err, &rerr) {
			return nil, &Error{
				Message:  rerr.Message,
				Found:    p.str[rerr.Idx:min(int(rerr.Idx)+1, len(p.str))],
				Position: p.file.Position(int(rerr.Idx)),
				cause:    rerr,
			}
		}
		return nil, err
	}
	return program, nil
}

func (p *parser) parse() *ast.Program {
	p.openScope()
	defer p.closeScope()
	p.next()

	program := &ast.Program{File: p.file}
	for p.currentKind() != token.Eof {
		program.Body = append(program.Body, ast.Statement{Stmt: p.parseStatement()})
	}
	return program
}

func (p *parser) next() {
	if p.err != nil {
		return
	}
	p.token = p.scanner.Next()
	if p.token.Kind == token.Illegal {
		p.errorLex(p.scanner.Err())
	}
}

// peek returns the token after the current one without consuming it.
func (p *parser) peek() scanner.Token {
	if p.err != nil {
		return p.token
	}
	c := p.scanner.Checkpoint()
	tok := p.scanner.Next()
	p.scanner.Rewind(c)
	return tok
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) canInsertSemicolon() bool {
	switch p.currentKind() {
	case token.Semicolon, token.RightBrace, token.Eof:
		return true
	}
	return p.token.OnNewLine
}

// semicolon terminates a statement: an explicit `;`, or a `}`, end of input
// or line break that ends it implicitly.
func (p *parser) semicolon() {
	if p.currentKind() == token.Semicolon {
		p.next()
		return
	}
	if !p.canInsertSemicolon() {
		p.errorExpected(token.Semicolon)
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.currentKind() != value {
		p.errorExpected(value)
		return idx
	}
	p.next()
	return idx
}

// allowIn sets whether `in` parses as a binary operator and returns a func
// restoring the previous setting.
func (p *parser) allowIn(allow bool) func() {
	prev := p.scope.allowIn
	p.scope.allowIn = allow
	return func() {
		p.scope.allowIn = prev
	}
}
