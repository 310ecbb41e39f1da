package ast

type (
	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	UndefinedLiteral struct {
		Idx Idx
	}

	NumberLiteral struct {
		Idx     Idx
		Literal string
		Value   float64
	}

	StringLiteral struct {
		Idx Idx
		// Literal is the raw source text, quotes included. Member names
		// synthesized from `o.name` carry the bare name.
		Literal string
		Value   string
	}
)

// Literal returns the source spelling of the boolean.
func (n *BooleanLiteral) Literal() string {
	if n.Value {
		return "true"
	}
	return "false"
}

func (*BooleanLiteral) _expr()   {}
func (*NullLiteral) _expr()      {}
func (*UndefinedLiteral) _expr() {}
func (*NumberLiteral) _expr()    {}
func (*StringLiteral) _expr()    {}
