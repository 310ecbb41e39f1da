package scanner_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/t14raptor/fastscript/parser/scanner"
	"github.com/t14raptor/fastscript/token"
)

// kinds scans src to the end and returns the token kinds, without Eof.
func kinds(t *testing.T, src string) []token.Token {
	t.Helper()
	s := scanner.New(src)
	var out []token.Token
	for {
		tok := s.Next()
		if tok.Kind == token.Eof {
			break
		}
		if tok.Kind == token.Illegal {
			t.Fatalf("scan(%q): unexpected error %v", src, s.Err())
		}
		out = append(out, tok.Kind)
	}
	return out
}

func TestPunctuatorsLongestMatch(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Token
	}{
		{">>>=", []token.Token{token.UnsignedShiftRightAssign}},
		{">>>", []token.Token{token.UnsignedShiftRight}},
		{">>=", []token.Token{token.ShiftRightAssign}},
		{">=", []token.Token{token.GreaterOrEqual}},
		{"===", []token.Token{token.StrictEqual}},
		{"!==", []token.Token{token.StrictNotEqual}},
		{"a+++b", []token.Token{token.Identifier, token.Increment, token.Plus, token.Identifier}},
		{"a--", []token.Token{token.Identifier, token.Decrement}},
		{"x&&y||z", []token.Token{token.Identifier, token.LogicalAnd, token.Identifier, token.LogicalOr, token.Identifier}},
		{"a.b", []token.Token{token.Identifier, token.Period, token.Identifier}},
		{"<<= %= ^= |= &=", []token.Token{token.ShiftLeftAssign, token.RemainderAssign, token.ExclusiveOrAssign, token.OrAssign, token.AndAssign}},
		{"a ? b : c;", []token.Token{token.Identifier, token.QuestionMark, token.Identifier, token.Colon, token.Identifier, token.Semicolon}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, kinds(t, tt.src)); diff != "" {
			t.Errorf("scan(%q) mismatch (-want +got):\n%s", tt.src, diff)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	got := kinds(t, "var let const function typeof instanceof true null undefined foo $bar _baz café")
	want := []token.Token{
		token.Var, token.Let, token.Const, token.Function, token.Typeof, token.InstanceOf,
		token.Boolean, token.Null, token.Undefined,
		token.Identifier, token.Identifier, token.Identifier, token.Identifier,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	s := scanner.New("café")
	if tok := s.Next(); tok.Value != "café" {
		t.Errorf("identifier value = %q, want %q", tok.Value, "café")
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"2E-2", 0.02},
		{"0x1F", 31},
		{"0b101", 5},
		{"0o17", 15},
		{"0.1", 0.1},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		s := scanner.New(tt.src)
		tok := s.Next()
		if tok.Kind != token.Number {
			t.Errorf("scan(%q) kind = %v, want Number (err %v)", tt.src, tok.Kind, s.Err())
			continue
		}
		if tok.Number != tt.want {
			t.Errorf("scan(%q) = %v, want %v", tt.src, tok.Number, tt.want)
		}
		if tok.Literal != tt.src {
			t.Errorf("scan(%q) literal = %q", tt.src, tok.Literal)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`'it''s'`, "it"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`'\'"'`, `'"`},
		{`"\x41B\u{43}"`, "ABC"},
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\uD800"`, "\uFFFD"},
		{`"\0"`, "\x00"},
		{"\"line\\\ncontinued\"", "linecontinued"},
		{`"\q"`, "q"},
		{`"日本"`, "日本"},
	}
	for _, tt := range tests {
		s := scanner.New(tt.src)
		tok := s.Next()
		if tok.Kind != token.String {
			t.Errorf("scan(%q) kind = %v, want String (err %v)", tt.src, tok.Kind, s.Err())
			continue
		}
		if tok.Value != tt.want {
			t.Errorf("scan(%q) value = %q, want %q", tt.src, tok.Value, tt.want)
		}
	}
}

func TestComments(t *testing.T) {
	got := kinds(t, "a // line comment\n/* block\ncomment */ b /**/ c")
	want := []token.Token{token.Identifier, token.Identifier, token.Identifier}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOnNewLine(t *testing.T) {
	s := scanner.New("a b\nc /*\n*/ d /* */ e")
	want := []bool{true, false, true, true, false}
	for i, w := range want {
		tok := s.Next()
		if tok.OnNewLine != w {
			t.Errorf("token %d (%s): OnNewLine = %v, want %v", i, tok, tok.OnNewLine, w)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
		start   int
	}{
		{`"abc`, "Unterminated string", 0},
		{"x = 'ab\ncd'", "Unterminated string", 4},
		{"/* open", "Unterminated multiline comment", 0},
		{"a @ b", "Invalid character `@`", 2},
		{"3in", "Invalid characters after number", 1},
		{"0x", "Invalid or unexpected numeric literal", 0},
		{"017", "Invalid or unexpected numeric literal", 0},
		{"1e+", "Invalid or unexpected numeric literal", 0},
		{`"\xZZ"`, "Invalid escape sequence", 1},
		{`"\u{110000}"`, "Invalid escape sequence", 1},
	}
	for _, tt := range tests {
		s := scanner.New(tt.src)
		for {
			tok := s.Next()
			if tok.Kind == token.Eof || tok.Kind == token.Illegal {
				break
			}
		}
		err := s.Err()
		if err == nil {
			t.Errorf("scan(%q): expected error %q", tt.src, tt.message)
			continue
		}
		if err.Message != tt.message || int(err.Start) != tt.start {
			t.Errorf("scan(%q) = %q at %d, want %q at %d", tt.src, err.Message, err.Start, tt.message, tt.start)
		}
	}
}

func TestStickyError(t *testing.T) {
	s := scanner.New("@ a b")
	if tok := s.Next(); tok.Kind != token.Illegal {
		t.Fatalf("kind = %v, want Illegal", tok.Kind)
	}
	if tok := s.Next(); tok.Kind != token.Illegal {
		t.Errorf("scanner continued after error: %v", tok.Kind)
	}
}

func TestCheckpointRewind(t *testing.T) {
	s := scanner.New("a b c")
	s.Next()
	cp := s.Checkpoint()
	first := s.Next()
	s.Next()
	s.Rewind(cp)
	if again := s.Next(); again.Value != first.Value {
		t.Errorf("after rewind got %q, want %q", again.Value, first.Value)
	}
}
