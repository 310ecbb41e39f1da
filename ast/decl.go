package ast

import "github.com/t14raptor/fastscript/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	// VariableDeclaration is a var, let or const statement; Token tells
	// which.
	VariableDeclaration struct {
		Idx   Idx
		Token token.Token
		List  VariableDeclarators
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *Identifier
		Initializer *Expression
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*VariableDeclaration) _stmt() {}
