package engine_test

import (
	"errors"
	"testing"

	"github.com/t14raptor/fastscript/engine"
	"github.com/t14raptor/fastscript/evaluator"
	"github.com/t14raptor/fastscript/parser"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		file string
		want string
	}{
		{
			name: "runtime error with context above",
			src:  "var a = 1;\n  undeclaredName",
			file: "script.js",
			want: "script.js:2:3: ReferenceError: undeclaredName is not defined\n\n" +
				"   1 | var a = 1;\n" +
				"   2 |   undeclaredName\n" +
				"     |   ^\n",
		},
		{
			name: "parse error with context below",
			src:  "a = ;\nb = 2",
			want: "1:5: Unexpected token ;\n\n" +
				"   1 | a = ;\n" +
				"     |     ^\n" +
				"   2 | b = 2\n",
		},
		{
			name: "tabs kept in caret line",
			src:  "\tnull.x",
			want: "1:2: TypeError: Cannot read properties of null (reading 'x')\n\n" +
				"   1 | \tnull.x\n" +
				"     | \t^\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := evaluate(t, tt.src)
			if got := engine.FormatError(err, tt.file, tt.src); got != tt.want {
				t.Errorf("FormatError() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestFormatErrorWithoutPosition(t *testing.T) {
	err := errors.New("plain")
	if got := engine.FormatError(err, "x.js", "src"); got != "x.js:plain" {
		t.Errorf("got %q", got)
	}
}

func evaluate(t *testing.T, src string) error {
	t.Helper()
	p, err := parser.ParseFile(src)
	if err != nil {
		return err
	}
	_, err = evaluator.New().Run(p)
	if err == nil {
		t.Fatalf("%q: expected an error", src)
	}
	return err
}
