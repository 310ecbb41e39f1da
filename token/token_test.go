package token

import "testing"

func TestLiteralKeyword(t *testing.T) {
	tests := []struct {
		literal string
		want    Token
		ok      bool
	}{
		{"var", Var, true},
		{"instanceof", InstanceOf, true},
		{"undefined", Undefined, true},
		{"true", Boolean, true},
		{"class", 0, false},
		{"foo", 0, false},
	}
	for _, tt := range tests {
		got, ok := LiteralKeyword(tt.literal)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LiteralKeyword(%q) = %v, %v; want %v, %v", tt.literal, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCompoundAssign(t *testing.T) {
	if !UnsignedShiftRightAssign.IsAssign() || !Assign.IsAssign() || Equal.IsAssign() {
		t.Fatal("IsAssign misclassifies operators")
	}
	if got := UnsignedShiftRightAssign.BinaryOf(); got != UnsignedShiftRight {
		t.Errorf("BinaryOf(>>>=) = %v", got)
	}
	if got := Assign.BinaryOf(); got != 0 {
		t.Errorf("BinaryOf(=) = %v", got)
	}
}

func TestFilePosition(t *testing.T) {
	f := NewFile("test.js", "ab\ncd\r\nef")
	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Offset: 0, Line: 1, Column: 1}},
		{1, Position{Offset: 1, Line: 1, Column: 2}},
		{3, Position{Offset: 3, Line: 2, Column: 1}},
		{7, Position{Offset: 7, Line: 3, Column: 1}},
		{100, Position{Offset: 9, Line: 3, Column: 3}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.offset); got != tt.want {
			t.Errorf("Position(%d) = %+v; want %+v", tt.offset, got, tt.want)
		}
	}
	if s := f.Position(4).String(); s != "2:2" {
		t.Errorf("String() = %q", s)
	}
}
