package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier
		ParameterList ParameterList
		Body          *BlockStatement

		// Source is the text of the function, used by Function.prototype.toString.
		Source string

		// Declarations is filled in by the resolver.
		Declarations *Declarations
	}

	ParameterList struct {
		Opening Idx
		List    []*Identifier
		Closing Idx
	}
)

func (*FunctionLiteral) _expr() {}
