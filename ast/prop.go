package ast

type (
	Properties []Property

	// Property is one `key: value` entry of an object literal. Identifier,
	// string and number keys are stored as literals; `[expr]` keys set
	// Computed. Shorthand `{x}` is desugared to `{x: x}` by the parser.
	Property struct {
		Key      *Expression
		Value    *Expression
		Computed bool
	}
)
