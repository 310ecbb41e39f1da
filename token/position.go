package token

import (
	"fmt"
	"sort"
)

// Position describes a location in a source buffer. Line and Column are
// 1-based; Column counts bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the position carries line information.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File maps byte offsets of a source buffer to line/column positions.
type File struct {
	name  string
	src   string
	lines []int // offset of the first byte of each line
}

// NewFile indexes the line starts of src.
func NewFile(name, src string) *File {
	f := &File{name: name, src: src, lines: []int{0}}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			f.lines = append(f.lines, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Name returns the name the file was created with.
func (f *File) Name() string {
	return f.name
}

// Source returns the indexed source text.
func (f *File) Source() string {
	return f.src
}

// Position resolves a byte offset. Offsets outside the buffer are clamped.
func (f *File) Position(offset int) Position {
	if f == nil {
		return Position{}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.src) {
		offset = len(f.src)
	}
	line := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: offset - f.lines[line] + 1,
	}
}
